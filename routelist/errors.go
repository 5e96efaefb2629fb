package routelist

import "errors"

// Sentinel errors for Arena splice operations. Callers match these with
// errors.Is, never by string comparison.
var (
	// ErrAttached is returned when InsertAfter/InsertSegmentAfter is asked
	// to insert a Step (or segment endpoint) that is already spliced into
	// some RouteList.
	ErrAttached = errors.New("routelist: step already attached")

	// ErrDetached is returned when Remove/RemoveSegment is asked to remove
	// a Step (or segment endpoint) that is not currently spliced in.
	ErrDetached = errors.New("routelist: step not attached")

	// ErrSentinel is returned when Remove/RemoveSegment is asked to remove
	// a begin or end sentinel Step.
	ErrSentinel = errors.New("routelist: cannot remove a sentinel step")

	// ErrNoSuccessor is returned when InsertAfter/InsertSegmentAfter is
	// given an anchor with no successor, i.e. the anchor is a RouteList's
	// end sentinel.
	ErrNoSuccessor = errors.New("routelist: anchor has no successor")
)
