package layoutalgo

import (
	"fmt"

	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/style"
	"github.com/rowanstack/flexlayout/tree"
)

// ComputeLayout is the public entry point (spec §4.2): it resolves the
// whole tree reachable from root, writes every node's ComputedLayout, and
// finishes with the integer-rounding pass.
func ComputeLayout(t *tree.Tree, root tree.NodeId, availableSpace geom.AvailableSpaceSize) error {
	in := Input{
		KnownDimensions: geom.OptionSize{},
		ParentSize:      geom.OptionSize{},
		AvailableSpace:  availableSpace,
		RunMode:         PerformLayout,
		SizingMode:      InherentSize,
		Order:           0,
	}
	out, err := computeNodeLayout(t, root, in)
	if err != nil {
		return err
	}
	if err := t.SetComputedLayout(root, tree.ComputedLayout{
		Order:         0,
		Size:          out.Size,
		Location:      geom.Point[float64]{},
		ContentSize:   out.ContentSize,
		FirstBaseline: out.FirstBaseline,
	}); err != nil {
		return err
	}
	return roundLayout(t, root)
}

// computeNodeLayout is compute_node_layout (spec §4.2): cache lookup,
// dispatch by display, write-through to cache and (for PerformLayout) the
// node's ComputedLayout.
func computeNodeLayout(t *tree.Tree, id tree.NodeId, in Input) (Output, error) {
	nodeStyle, err := t.Style(id)
	if err != nil {
		return Output{}, fmt.Errorf("layoutalgo: %w", err)
	}

	if nodeStyle.Display == style.DisplayNone {
		if in.RunMode == PerformLayout {
			if err := hideSubtree(t, id); err != nil {
				return Output{}, err
			}
		}
		return Output{}, nil
	}

	c, err := t.Cache(id)
	if err != nil {
		return Output{}, fmt.Errorf("layoutalgo: %w", err)
	}
	if cached, ok := c.Get(in.KnownDimensions, in.AvailableSpace, in.RunMode); ok {
		if in.RunMode == PerformLayout {
			// A cache hit still needs this node's own ComputedLayout
			// refreshed (children were written the first time this shape
			// was requested with PerformLayout; cheaper than recomputing).
			if err := writeComputed(t, id, cached, in.Order); err != nil {
				return Output{}, err
			}
		}
		return cached, nil
	}

	children, err := t.Children(id)
	if err != nil {
		return Output{}, fmt.Errorf("layoutalgo: %w", err)
	}
	measure, err := t.Measure(id)
	if err != nil {
		return Output{}, fmt.Errorf("layoutalgo: %w", err)
	}

	var out Output
	switch {
	case len(children) == 0:
		out, err = computeLeafLayout(t, id, nodeStyle, measure, in)
	case nodeStyle.Display == style.DisplayGrid:
		out, err = computeGridLayout(t, id, nodeStyle, children, in)
	case nodeStyle.Display == style.DisplayFlex:
		out, err = computeFlexLayout(t, id, nodeStyle, children, in)
	default:
		out, err = computeBlockLayout(t, id, nodeStyle, children, in)
	}
	if err != nil {
		return Output{}, err
	}

	c.Store(in.KnownDimensions, in.AvailableSpace, in.RunMode, out)
	if in.RunMode == PerformLayout {
		if err := writeComputed(t, id, out, in.Order); err != nil {
			return Output{}, err
		}
	}
	return out, nil
}

// writeComputed stamps order and writes a node's own ComputedLayout. Its
// Location is left at whatever the parent algorithm has already placed it
// at via a prior SetComputedLayout call (block/flex/grid set Location
// directly); this only refreshes Size/ContentSize/Order/baseline so a
// child-first write (children write before their parent returns) is never
// clobbered. order is the child's index within its parent's full child
// list (spec §4.7), not a traversal-order counter: original_source
// resolves it the same way (`compute/block.rs`'s
// `tree.children(node_id).position(|n| n == item.node_id)`,
// `compute/grid/alignment.rs`'s equivalent), so siblings never collide and
// a parent's own stamp (its index in its own parent's child list, or 0 set
// by ComputeLayout for the root) never depends on how many children it
// has.
func writeComputed(t *tree.Tree, id tree.NodeId, out Output, order uint32) error {
	existing, err := t.Layout(id)
	if err != nil {
		return fmt.Errorf("layoutalgo: %w", err)
	}
	existing.Order = order
	existing.Size = out.Size
	existing.ContentSize = out.ContentSize
	existing.FirstBaseline = out.FirstBaseline
	return t.SetComputedLayout(id, existing)
}

// hideSubtree marks id and every descendant per the Display.None contract
// (spec §4.2, §8 invariant 4): hidden order sentinel, zero size/location.
func hideSubtree(t *tree.Tree, id tree.NodeId) error {
	if err := t.SetComputedLayout(id, tree.ComputedLayout{Order: tree.HiddenOrder}); err != nil {
		return err
	}
	children, err := t.Children(id)
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := hideSubtree(t, c); err != nil {
			return err
		}
	}
	return nil
}
