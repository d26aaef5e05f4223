package layoutalgo

import (
	"fmt"

	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/tree"
)

// setChildLocation updates only the Location of an already-computed
// child, preserving the Order/Size/ContentSize/baseline writeComputed
// already wrote for it.
func setChildLocation(t *tree.Tree, id tree.NodeId, loc geom.Point[float64]) error {
	existing, err := t.Layout(id)
	if err != nil {
		return fmt.Errorf("layoutalgo: %w", err)
	}
	existing.Location = loc
	return t.SetComputedLayout(id, existing)
}
