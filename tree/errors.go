package tree

import "errors"

// The error taxonomy observable at the tree store's boundary (spec §6).
// Each is a package-level sentinel, wrapped with fmt.Errorf("%w") at the
// point a compound operation aborts — never a panic for a caller-triggered
// condition (spec §7).
var (
	// ErrInvalidNodeId is returned when an operation is given a handle
	// that was never issued, or was issued and later Remove'd.
	ErrInvalidNodeId = errors.New("tree: invalid node id")

	// ErrInvalidChild is returned by NewWithChildren/AddChild/SetChildren
	// when one of the supplied child handles is invalid; per spec §4.1
	// NewWithChildren is atomic and creates nothing on this error.
	ErrInvalidChild = errors.New("tree: invalid child node id")

	// ErrChildrenExistOnMeasureNode is returned by SetMeasure when the
	// target node already has children.
	ErrChildrenExistOnMeasureNode = errors.New("tree: cannot attach a measure function to a node with children")

	// ErrMeasureNodeHasChildren is returned by AddChild/SetChildren when
	// the target node already has a measure function attached.
	ErrMeasureNodeHasChildren = errors.New("tree: cannot add children to a node with a measure function")

	// ErrOutOfMemory names the out-of-memory case. No Tree operation
	// returns it: node storage is a Go slice, and a failed slice growth is
	// a runtime panic, not an error value.
	ErrOutOfMemory = errors.New("tree: out of memory")
)
