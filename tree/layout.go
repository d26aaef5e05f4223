package tree

import (
	"math"

	"github.com/rowanstack/flexlayout/geom"
)

// HiddenOrder is the render-order sentinel assigned to every descendant of
// a `display: none` subtree (spec §3 computed-layout invariant, §4.2
// dispatch for Display.None).
const HiddenOrder uint32 = math.MaxUint32

// ComputedLayout is the per-node layout result written by compute_layout
// (spec §3 "Computed layout"): render order, resolved size, position
// relative to the parent's content origin, and the scrollable-overflow
// content size.
type ComputedLayout struct {
	Order         uint32
	Size          geom.Size[float64]
	Location      geom.Point[float64]
	ContentSize   geom.Size[float64]
	FirstBaseline *float64
}

// zeroLayout is returned by Layout() for a node that has never been
// computed (spec §4.1 state machine: "a query of layout() on a Dirty node
// returns the last computed layout or the zero layout if never computed").
var zeroLayout = ComputedLayout{}
