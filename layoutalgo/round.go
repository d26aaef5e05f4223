package layoutalgo

import (
	"fmt"

	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/tree"
)

// roundLayout implements the final integer-rounding pass (spec §8
// invariant 2, "rounding closure"): round every node's absolute corner
// independently rather than rounding width/height directly, so that two
// boxes sharing an edge before rounding still share it after. Ported from
// the fixed-point rounding the teacher library already depends on for
// glyph outlines (geom.RoundCoord), applied here to cumulative absolute
// position instead.
func roundLayout(t *tree.Tree, root tree.NodeId) error {
	return roundSubtree(t, root, 0, 0, 0, 0)
}

func roundSubtree(t *tree.Tree, id tree.NodeId, parentAbsX, parentAbsY, parentRoundedX, parentRoundedY float64) error {
	layout, err := t.Layout(id)
	if err != nil {
		return fmt.Errorf("layoutalgo: %w", err)
	}
	if layout.Order == tree.HiddenOrder {
		return nil
	}

	absX := parentAbsX + layout.Location.X
	absY := parentAbsY + layout.Location.Y
	roundedX := geom.RoundCoord(absX)
	roundedY := geom.RoundCoord(absY)
	roundedRight := geom.RoundCoord(absX + layout.Size.Width)
	roundedBottom := geom.RoundCoord(absY + layout.Size.Height)

	layout.Location = geom.Point[float64]{X: roundedX - parentRoundedX, Y: roundedY - parentRoundedY}
	layout.Size = geom.Size[float64]{Width: roundedRight - roundedX, Height: roundedBottom - roundedY}
	if err := t.SetComputedLayout(id, layout); err != nil {
		return fmt.Errorf("layoutalgo: %w", err)
	}

	children, err := t.Children(id)
	if err != nil {
		return fmt.Errorf("layoutalgo: %w", err)
	}
	for _, c := range children {
		if err := roundSubtree(t, c, absX, absY, roundedX, roundedY); err != nil {
			return err
		}
	}
	return nil
}
