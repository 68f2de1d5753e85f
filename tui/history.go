// Package tui provides a Bubble Tea terminal UI for the RoomForge planning console.
package tui

// History keeps recently entered console commands for up/down recall.
// Navigation is cursor-based: the cursor sits outside the buffer until the
// operator starts stepping back through older commands.
type History struct {
	entries []string
	limit   int
	cursor  int // -1 = fresh input, otherwise an index into entries
}

// NewHistory returns an empty buffer that retains at most limit commands.
func NewHistory(limit int) *History {
	return &History{
		entries: make([]string, 0, limit),
		limit:   limit,
		cursor:  -1,
	}
}

// Push records a submitted command. Re-entering the most recent command is
// not stored twice. The oldest entry is evicted once the limit is reached.
func (h *History) Push(cmd string) {
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
}

// Prev steps toward older commands, entering navigation at the newest entry
// and stopping at the oldest. Returns ("", false) when the buffer is empty.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == -1 {
		h.cursor = len(h.entries) - 1
	} else if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps toward newer commands. Stepping past the newest entry leaves
// navigation and returns ("", false) so the input line can go back to
// fresh text.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

// ResetCursor leaves navigation so the next Prev starts from the newest
// command again.
func (h *History) ResetCursor() {
	h.cursor = -1
}
