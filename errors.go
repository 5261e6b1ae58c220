package appendmerkle

import "fmt"

// TreeFullError is returned from [*Tree.Insert] and [*Tree.InsertBatch]
// when there are not enough free leaf slots for the request.
// The tree is left unchanged.
type TreeFullError struct {
	// Total leaf capacity of the tree.
	Capacity int

	// Free leaf slots at the time of the request.
	Remaining int

	// Number of leaves the caller attempted to insert.
	Requested int
}

func (e TreeFullError) Error() string {
	return fmt.Sprintf(
		"tree full: requested %d leaves but only %d of %d remain",
		e.Requested, e.Remaining, e.Capacity,
	)
}

// InvalidHeightError is returned when constructing a tree
// whose height cannot be represented.
type InvalidHeightError struct {
	Height uint8
	Reason string
}

func (e InvalidHeightError) Error() string {
	return fmt.Sprintf("invalid tree height %d: %s", e.Height, e.Reason)
}

// OutOfRangeError is returned from the query methods on [*Tree]
// when the requested level or index lies outside the tree.
type OutOfRangeError struct {
	Level uint8
	Index int

	// Height of the tree that was queried.
	Height uint8

	// Number of nodes at Level, or zero if Level is above the root.
	LevelLength int
}

func (e OutOfRangeError) Error() string {
	if e.Level > e.Height {
		return fmt.Sprintf(
			"level %d out of range for tree of height %d",
			e.Level, e.Height,
		)
	}
	return fmt.Sprintf(
		"index %d out of range [0, %d) at level %d",
		e.Index, e.LevelLength, e.Level,
	)
}
