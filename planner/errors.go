package planner

import "fmt"

// PreconditionError is raised synchronously, before any mutation is
// scheduled: the room type is unknown, the material is not permitted, or a
// fixed-shape type was given the wrong size.
type PreconditionError struct {
	RoomType string
	Reason   string
}

func (e *PreconditionError) Error() string {
	if e.RoomType == "" {
		return fmt.Sprintf("precondition failed: %s", e.Reason)
	}
	return fmt.Sprintf("precondition failed for room type %q: %s", e.RoomType, e.Reason)
}

// PartialCommitError is the only error that escapes mid-pipeline: a commit
// batch failed after mutations may already have been applied. There is no
// rollback — furniture placed and walls built before the failure stay in
// the world, and the scratch reservation may still be held.
type PartialCommitError struct {
	Stage string // "reserve", "commit"
	Err   error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("room commit failed during %s (world state left as-is): %v", e.Stage, e.Err)
}

func (e *PartialCommitError) Unwrap() error { return e.Err }
