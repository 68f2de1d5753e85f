// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the RoomForge planning console.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mkarlsen/roomforge/planfile"
	"github.com/mkarlsen/roomforge/planner"
	"github.com/mkarlsen/roomforge/render"
	"github.com/mkarlsen/roomforge/types"
	"github.com/mkarlsen/roomforge/world"
)

// CLI handles terminal interaction with the operator.
type CLI struct {
	Planner   *planner.Planner
	Defs      *world.Defs
	Grid      *world.Grid
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat

	plan  *types.RoomPlan // current working plan, nil until "plan"
	hints []types.Tile    // pending entrance hints for irregular plans
}

// New creates a CLI wired to the given planner.
func New(p *planner.Planner, defs *world.Defs, grid *world.Grid) *CLI {
	return &CLI{
		Planner: p,
		Defs:    defs,
		Grid:    grid,
		In:      os.Stdin,
		Out:     os.Stdout,
	}
}

// Run starts the console loop: prompt → input → dispatch → output.
func (c *CLI) Run() {
	c.printLine(fmt.Sprintf("%d room types loaded. Type /help for commands.", len(c.Defs.RoomTypes)))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		for _, line := range c.Dispatch(input) {
			c.printLine(line)
		}
	}
}

// Dispatch executes one console command and returns its output lines.
// The TUI shares this entry point.
func (c *CLI) Dispatch(input string) []string {
	args := strings.Fields(input)
	if len(args) == 0 {
		return []string{"Type /help for available commands."}
	}
	switch args[0] {
	case "plan":
		if len(args) > 1 && args[1] == "irregular" {
			return c.cmdIrregular(args[2:])
		}
		return c.cmdPlan(args[1:])
	case "irregular":
		return c.cmdIrregular(args[1:])
	case "hint":
		return c.cmdHint(args[1:])
	case "show":
		return c.cmdShow()
	case "commit":
		return c.cmdCommit()
	case "rooms":
		return c.cmdRooms()
	case "materials":
		return c.cmdMaterials()
	case "map":
		return c.cmdMap(args[1:])
	case "block", "clear":
		return c.cmdTerrain(args[0], args[1:])
	case "records":
		return c.cmdRecords()
	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", args[0])}
	}
}

// cmdPlan plans a rectangular room:
// plan <type> <x> <y> <w> <h> [side] [material]
func (c *CLI) cmdPlan(args []string) []string {
	if len(args) < 5 {
		return []string{"Usage: plan <type> <x> <y> <w> <h> [side] [material]"}
	}
	nums, err := parseInts(args[1:5])
	if err != nil {
		return []string{err.Error()}
	}
	req := planner.PlanRequest{
		RoomType: args[0],
		Area:     types.Area{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]},
	}
	if len(args) > 5 {
		req.PreferredSide = types.Side(args[5])
	}
	if len(args) > 6 {
		req.Material = types.Material(args[6])
	}
	return c.runPlan(req)
}

// cmdIrregular plans a room over an explicit tile set:
// irregular <type> <x,y> <x,y> ... — pending hints are attached.
func (c *CLI) cmdIrregular(args []string) []string {
	if len(args) < 2 {
		return []string{"Usage: plan irregular <type> <x,y> <x,y> ..."}
	}
	var tiles []types.Tile
	for _, arg := range args[1:] {
		t, err := parseTile(arg)
		if err != nil {
			return []string{err.Error()}
		}
		tiles = append(tiles, t)
	}
	req := planner.PlanRequest{
		RoomType:      args[0],
		Area:          types.Area{Tiles: tiles},
		EntranceHints: c.hints,
	}
	return c.runPlan(req)
}

// runPlan executes a plan request and stores the result as the working plan.
func (c *CLI) runPlan(req planner.PlanRequest) []string {
	plan, err := c.Planner.PlanRoom(req)
	if err != nil {
		return []string{fmt.Sprintf("Planning failed: %v", err)}
	}
	c.plan = plan

	out := c.describePlan(plan)
	if c.Trace {
		out = append(out, c.tracePlan(plan)...)
	}
	return out
}

func (c *CLI) cmdHint(args []string) []string {
	if len(args) == 1 && args[0] == "clear" {
		c.hints = nil
		return []string{"Entrance hints cleared."}
	}
	if len(args) != 2 {
		return []string{"Usage: hint <x> <y>  |  hint clear"}
	}
	nums, err := parseInts(args)
	if err != nil {
		return []string{err.Error()}
	}
	c.hints = append(c.hints, types.Tile{X: nums[0], Y: nums[1]})
	return []string{fmt.Sprintf("Entrance hint added at (%d,%d). %d pending.", nums[0], nums[1], len(c.hints))}
}

func (c *CLI) cmdShow() []string {
	if c.plan == nil {
		return []string{"No plan yet. Use: plan <type> <x> <y> <w> <h>"}
	}
	out := render.PlanLines(c.plan)
	out = append(out, render.Legend())
	out = append(out, c.describePlan(c.plan)...)
	return out
}

func (c *CLI) cmdCommit() []string {
	if c.plan == nil {
		return []string{"No plan to commit."}
	}
	result, err := c.Planner.CommitRoom(c.plan)
	if err != nil {
		return []string{fmt.Sprintf("Commit failed: %v", err)}
	}
	c.plan = nil
	c.hints = nil

	out := []string{fmt.Sprintf("Committed construction #%d.", result.ConstructionID)}
	out = append(out, fmt.Sprintf("Furniture: %d placed, %d skipped. Walls: %d built, %d skipped.",
		result.PlacedFurniture, result.SkippedFurniture, result.BuiltWalls, result.SkippedWalls))
	switch {
	case result.Doorless:
		out = append(out, "The room was committed with no door.")
	case !result.OpeningBuilt:
		out = append(out, "The door opening was rejected; the gap has neither wall nor opening.")
	}
	return out
}

func (c *CLI) cmdRooms() []string {
	var out []string
	for _, id := range c.Defs.RoomTypeIDs() {
		rt := c.Defs.RoomTypes[id]
		line := fmt.Sprintf("  %-12s %s — %d variant(s), door prefers %s",
			rt.ID, rt.Name, len(c.Defs.VariantsFor(id)), rt.PreferredSide)
		if rt.FixedShape {
			line += fmt.Sprintf(", fixed %dx%d", rt.FixedWidth, rt.FixedHeight)
		}
		out = append(out, line)
	}
	return out
}

func (c *CLI) cmdMaterials() []string {
	var out []string
	for _, id := range c.Defs.MaterialIDs() {
		m := c.Defs.Materials[id]
		out = append(out, fmt.Sprintf("  %-12s %s", m.ID, m.Name))
	}
	return out
}

func (c *CLI) cmdMap(args []string) []string {
	x, y := 0, 0
	w, h := c.Grid.Width, c.Grid.Height
	if w > 60 {
		w = 60
	}
	if h > 24 {
		h = 24
	}
	if len(args) == 4 {
		nums, err := parseInts(args)
		if err != nil {
			return []string{err.Error()}
		}
		x, y, w, h = nums[0], nums[1], nums[2], nums[3]
	} else if len(args) != 0 {
		return []string{"Usage: map [x y w h]"}
	}
	out := render.WorldLines(c.Grid, x, y, w, h)
	out = append(out, render.Legend())
	return out
}

func (c *CLI) cmdTerrain(verb string, args []string) []string {
	if len(args) != 4 {
		return []string{fmt.Sprintf("Usage: %s <x> <y> <w> <h>", verb)}
	}
	nums, err := parseInts(args)
	if err != nil {
		return []string{err.Error()}
	}
	if verb == "block" {
		c.Grid.Block(nums[0], nums[1], nums[2], nums[3])
		return []string{fmt.Sprintf("Blocked %dx%d tiles at (%d,%d).", nums[2], nums[3], nums[0], nums[1])}
	}
	c.Grid.Clear(nums[0], nums[1], nums[2], nums[3])
	return []string{fmt.Sprintf("Cleared %dx%d tiles at (%d,%d).", nums[2], nums[3], nums[0], nums[1])}
}

func (c *CLI) cmdRecords() []string {
	records := c.Grid.Records()
	if len(records) == 0 {
		return []string{"No constructions committed yet."}
	}
	var out []string
	for _, r := range records {
		out = append(out, fmt.Sprintf("  #%d %s at (%d,%d) level %d",
			r.ID, r.Material, r.Area.X, r.Area.Y, r.UpgradeLevel))
	}
	return out
}

// Plan returns the working plan, or nil when none is staged.
func (c *CLI) Plan() *types.RoomPlan { return c.plan }

// SetPlan replaces the working plan.
func (c *CLI) SetPlan(p *types.RoomPlan) { c.plan = p }

// describePlan summarizes the working plan.
func (c *CLI) describePlan(plan *types.RoomPlan) []string {
	out := []string{fmt.Sprintf("Planned %s: %d furniture placement(s), %d wall tile(s), material %s.",
		plan.RoomType, len(plan.Placements), len(plan.WallTiles), plan.Material)}
	if plan.DoorTile != nil {
		out = append(out, fmt.Sprintf("Door at (%d,%d).", plan.DoorTile.X, plan.DoorTile.Y))
	} else {
		out = append(out, "Warning: no door location found — committing will fully enclose the room.")
	}
	return out
}

func (c *CLI) tracePlan(plan *types.RoomPlan) []string {
	out := []string{
		fmt.Sprintf("[trace] variant: index %d, %dx%d", plan.Item.SizeIndex, plan.Item.Width, plan.Item.Height),
		fmt.Sprintf("[trace] occupied tiles: %d", len(plan.Occupied)),
	}
	for _, p := range plan.Placements {
		out = append(out, fmt.Sprintf("[trace]   placement at (%d,%d)", p.Origin.X, p.Origin.Y))
	}
	return out
}

// handleMeta dispatches meta-commands. Returns true if the console should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/export":
		c.cmdExport(arg)

	case "/import":
		c.cmdImport(arg)

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdExport(path string) {
	if c.plan == nil {
		c.printSystem("No plan to export.")
		return
	}
	if path == "" {
		path = "plan.json"
	}

	data, err := planfile.Save(c.plan)
	if err != nil {
		c.printSystem(fmt.Sprintf("Export failed: %v", err))
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.printSystem(fmt.Sprintf("Export failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Plan exported to %s.", path))
}

func (c *CLI) cmdImport(path string) {
	if path == "" {
		path = "plan.json"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Import failed: %v", err))
		return
	}
	plan, err := planfile.Load(data)
	if err != nil {
		c.printSystem(fmt.Sprintf("Import failed: %v", err))
		return
	}
	c.plan = plan
	c.printSystem(fmt.Sprintf("Plan imported from %s (%s).", path, plan.RoomType))
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /export [file]  — Export the working plan as JSON (default: plan.json)",
		"  /import [file]  — Import a plan JSON (default: plan.json)",
		"  /quit           — Exit the console",
		"  /help           — Show this help",
		"  /state          — Debug: dump world and plan state",
		"  /trace          — Toggle debug trace output",
		"",
		"Planning commands:",
		"  plan <type> <x> <y> <w> <h> [side] [material]",
		"                        — Plan a rectangular room",
		"  plan irregular <type> <x,y> <x,y> ...",
		"                        — Plan over an explicit tile set",
		"  hint <x> <y>          — Add an entrance hint for irregular plans",
		"  hint clear            — Drop pending entrance hints",
		"  show                  — Render the working plan",
		"  commit                — Commit the working plan to the world",
		"  rooms                 — List room types",
		"  materials             — List build materials",
		"  map [x y w h]         — Render a window of the world",
		"  block/clear <x> <y> <w> <h> — Edit terrain for experiments",
		"  records               — List committed constructions",
		"  again (g)             — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	c.printSystem(fmt.Sprintf("World: %dx%d, %d construction(s), %d live reservation(s)",
		c.Grid.Width, c.Grid.Height, len(c.Grid.Records()), c.Grid.Reservations()))
	if c.plan == nil {
		c.printSystem("Plan: none")
		return
	}
	c.printSystem(fmt.Sprintf("Plan: %s, %d placement(s), %d wall tile(s)",
		c.plan.RoomType, len(c.plan.Placements), len(c.plan.WallTiles)))
	if len(c.hints) > 0 {
		c.printSystem(fmt.Sprintf("Pending hints: %d", len(c.hints)))
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

// parseInts parses each argument as an integer.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("not a number: %s", a)
		}
		out[i] = n
	}
	return out, nil
}

// parseTile parses "x,y" into a tile.
func parseTile(arg string) (types.Tile, error) {
	parts := strings.SplitN(arg, ",", 2)
	if len(parts) != 2 {
		return types.Tile{}, fmt.Errorf("not a tile (want x,y): %s", arg)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return types.Tile{}, fmt.Errorf("not a tile (want x,y): %s", arg)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return types.Tile{}, fmt.Errorf("not a tile (want x,y): %s", arg)
	}
	return types.Tile{X: x, Y: y}, nil
}
