// Package layoutalgo is the recursive dispatcher and the four layout
// algorithms it routes to (spec §4.2–§4.6): Leaf, Block, Flexbox and Grid.
// It depends on package tree for node storage and package cache for
// memoization, but tree does not depend on it — the public entry point is
// re-exported from the module root (see the root package's flexlayout.go),
// the same facade pattern the teacher uses for its own subpackages.
package layoutalgo

import (
	"github.com/rowanstack/flexlayout/cache"
	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/tree"
)

// RunMode, SizingMode and Output are cache's types, re-exported here since
// every algorithm signature in this package is expressed in terms of them.
type (
	RunMode    = cache.RunMode
	SizingMode = cache.SizingMode
	Output     = cache.Output
)

const (
	PerformLayout = cache.PerformLayout
	ComputeSize   = cache.ComputeSize
	InherentSize  = cache.InherentSize
	ContentSize   = cache.ContentSize
)

// Input is the full input tuple to compute_node_layout (spec §4.2).
type Input struct {
	KnownDimensions    geom.OptionSize
	ParentSize         geom.OptionSize
	AvailableSpace     geom.AvailableSpaceSize
	RunMode            RunMode
	SizingMode         SizingMode
	// VerticalMarginsAreCollapsible marks whether this node's top/bottom
	// margins may collapse with an adjacent block sibling/parent. This
	// core does not implement collapsing (see DESIGN.md); the field is
	// threaded through for API parity with spec §4.2, but no algorithm
	// reads it, so margins never collapse.
	VerticalMarginsAreCollapsible bool
	// Order is this child's position within its parent's full child list
	// (spec §4.7), stamped into its ComputedLayout by writeComputed when
	// RunMode is PerformLayout. Meaningless for probe calls (ComputeSize),
	// which never reach writeComputed.
	Order uint32
}

// withOrder returns a copy of in with Order replaced.
func (in Input) withOrder(order uint32) Input {
	in.Order = order
	return in
}

// indexedChild pairs a child handle with its position in the parent's full
// child list (including hidden and absolutely-positioned siblings), the
// definition of render order spec §4.7 uses.
type indexedChild struct {
	id    tree.NodeId
	order uint32
}

// withKnown returns a copy of in with KnownDimensions replaced.
func (in Input) withKnown(k geom.OptionSize) Input {
	in.KnownDimensions = k
	return in
}

// withAvailable returns a copy of in with AvailableSpace replaced.
func (in Input) withAvailable(a geom.AvailableSpaceSize) Input {
	in.AvailableSpace = a
	return in
}

// withRunMode returns a copy of in with RunMode replaced.
func (in Input) withRunMode(r RunMode) Input {
	in.RunMode = r
	return in
}

// withSizingMode returns a copy of in with SizingMode replaced.
func (in Input) withSizingMode(s SizingMode) Input {
	in.SizingMode = s
	return in
}
