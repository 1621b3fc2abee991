// Package coro provides a stackless resumption primitive for
// frame-synchronous sequences.
//
// A resumable routine persists exactly one Point between invocations: the
// label of the suspension it last reached. The routine body is a switch over
// that Point, with one named case per suspension. Because no call stack or
// heap frame survives a suspension, no local variable may carry state across
// one; anything a routine needs after resuming must live in externally owned
// data (the character's state record).
//
// Points are declared per routine as a const block starting at Start + 1, so
// every label is unique within that routine and inserting a new suspension
// never shifts an unrelated label. That also makes stale tokens auditable:
// after a hot swap, a loaded Point that the current routine does not define
// fails Valid and the caller falls back to a full reset.
package coro

// Point identifies where a resumable routine continues on its next
// invocation. The zero value means the routine has not run since its last
// reset; Done means it finished.
type Point int32

const (
	// Start is the fresh state: no statement has executed since the last reset.
	Start Point = 0
	// Done marks a routine that ran to completion.
	Done Point = -1
)

// IsStart reports whether the routine has not started since its last reset.
func (p Point) IsStart() bool {
	return p == Start
}

// IsDone reports whether the routine ran to completion.
func (p Point) IsDone() bool {
	return p == Done
}

// Valid reports whether p names a point defined by a routine whose highest
// declared label is last. Start and Done are always valid. Use this to audit
// a Point restored from a save or carried across a code swap before resuming
// through it.
func (p Point) Valid(last Point) bool {
	if p == Start || p == Done {
		return true
	}
	return p > Start && p <= last
}

// Reset rewinds the routine to its fresh state.
func (p *Point) Reset() {
	*p = Start
}

// Finish marks the routine complete.
func (p *Point) Finish() {
	*p = Done
}

// String returns a debug name for the point.
func (p Point) String() string {
	switch p {
	case Start:
		return "start"
	case Done:
		return "done"
	default:
		return "resume"
	}
}
