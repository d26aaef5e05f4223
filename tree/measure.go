package tree

import (
	"math"

	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/style"
)

// MeasureFunc is the caller-supplied leaf-measurement hook (spec §4.7): a
// pure function from the engine's already-resolved per-axis constraints
// to a content-box size. The engine adds padding/border and clamps by
// min/max on the caller's behalf.
type MeasureFunc func(knownDimensions geom.OptionSize, availableSpace geom.AvailableSpaceSize, nodeStyle style.Style) geom.Size[float64]

// sanitizeMeasured clamps a measure hook's return value per spec §4.2:
// "Measurement hooks that return non-finite or negative values are
// clamped to zero; the engine never propagates NaN into the layout."
func sanitizeMeasured(s geom.Size[float64]) geom.Size[float64] {
	return geom.Size[float64]{Width: sanitizeDim(s.Width), Height: sanitizeDim(s.Height)}
}

func sanitizeDim(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
