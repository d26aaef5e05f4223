// Package flexlayout is the public facade: everything a caller needs to
// build a tree, attach styles, and compute layout lives behind this one
// import, mirroring the teacher's own root-package aliasing of its
// subpackage types so callers never need to import internal/* directly.
package flexlayout

import (
	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/layoutalgo"
	"github.com/rowanstack/flexlayout/style"
	"github.com/rowanstack/flexlayout/tree"
)

type (
	// Tree owns the node store (spec §4.1).
	Tree = tree.Tree
	// NodeId is a stable, reusable handle into a Tree.
	NodeId = tree.NodeId
	// Style is the full per-node declarative input (spec §3).
	Style = style.Style
	// MeasureFunc computes a leaf's intrinsic content size on demand.
	MeasureFunc = tree.MeasureFunc
	// ComputedLayout is the per-node result written by ComputeLayout.
	ComputedLayout = tree.ComputedLayout
	// AvailableSpace is the per-axis sizing constraint (definite,
	// min-content, or max-content).
	AvailableSpace = geom.AvailableSpace
	// AvailableSpaceSize pairs an AvailableSpace per axis.
	AvailableSpaceSize = geom.AvailableSpaceSize
	// Size is the concrete (width, height) pair this package's API is
	// expressed in. Callers needing the generic form for other element
	// types can still import package geom directly.
	Size = geom.Size[float64]
)

// NewTree returns an empty Tree.
func NewTree() *Tree { return tree.NewTree() }

// DefaultStyle returns the zero-configuration Style (Display Block,
// Position Relative, every size Auto).
func DefaultStyle() Style { return style.Default() }

// Definite builds a Definite(v) AvailableSpace.
func Definite(v float64) AvailableSpace { return geom.Definite(v) }

// MinContent and MaxContent are the two non-definite AvailableSpace
// singletons.
var (
	MinContent = geom.MinContent
	MaxContent = geom.MaxContent
)

// ComputeLayout resolves the whole tree reachable from root against
// availableSpace, writing every node's ComputedLayout (spec §4.2).
func ComputeLayout(t *Tree, root NodeId, availableSpace AvailableSpaceSize) error {
	return layoutalgo.ComputeLayout(t, root, availableSpace)
}
