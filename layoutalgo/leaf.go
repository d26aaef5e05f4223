package layoutalgo

import (
	"math"

	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/style"
	"github.com/rowanstack/flexlayout/tree"
)

// computeLeafLayout sizes a childless node (spec §4.3): resolve inherent
// size and min/max against the parent, apply aspect ratio; if both axes
// are then definite, return the clamped definite size. Otherwise, ask the
// measure hook (if any) for the content contribution, add padding+border,
// and clamp.
func computeLeafLayout(t *tree.Tree, id tree.NodeId, s style.Style, measure tree.MeasureFunc, in Input) (Output, error) {
	padding := resolvePadding(s, in.ParentSize)
	border := resolveBorder(s, in.ParentSize)
	pbSum := paddingBorderSum(padding, border)

	min, max := resolvedMinMax(s, in.ParentSize)
	min = applyAspectRatio(min, s.AspectRatio)
	max = applyAspectRatio(max, s.AspectRatio)

	inherent := resolveSizeStyle(s.Size, in.ParentSize)
	inherent = applyAspectRatio(inherent, s.AspectRatio)

	// known_dimensions (already resolved by the parent's algorithm) take
	// priority over the node's own style.
	known := geom.OptionSize{
		Width:  firstNonNil(in.KnownDimensions.Width, inherent.Width),
		Height: firstNonNil(in.KnownDimensions.Height, inherent.Height),
	}
	known = applyAspectRatio(known, s.AspectRatio)
	known = clampOptionSize(known, min, max)

	if known.Width != nil && known.Height != nil {
		size := geom.Size[float64]{Width: *known.Width, Height: *known.Height}
		return Output{Size: size, ContentSize: size}, nil
	}

	var content geom.Size[float64]
	if measure != nil {
		// The hook receives known_dimensions post-clamp and
		// post-padding-subtraction, and available space with the same
		// padding+border inset subtracted (Definite axes only).
		hookKnown := geom.OptionSize{
			Width:  geom.MaybeSub(known.Width, geom.Maybe(pbSum.Width)),
			Height: geom.MaybeSub(known.Height, geom.Maybe(pbSum.Height)),
		}
		content = measure(hookKnown, contentAvailableSpace(in.AvailableSpace, pbSum), s)
		content = sanitizeContent(content)
	}

	borderBox := geom.Size[float64]{
		Width:  content.Width + pbSum.Width,
		Height: content.Height + pbSum.Height,
	}
	if known.Width != nil {
		borderBox.Width = *known.Width
	}
	if known.Height != nil {
		borderBox.Height = *known.Height
	}

	clamped := clampOptionSize(geom.FromSize(borderBox), min, max).Unwrap()
	return Output{Size: clamped, ContentSize: clamped}, nil
}

// firstNonNil returns a if non-nil, else b.
func firstNonNil(a, b *float64) *float64 {
	if a != nil {
		return a
	}
	return b
}

// contentAvailableSpace subtracts a content-box inset from a Definite
// available space, passing Min/MaxContent through unchanged.
func contentAvailableSpace(in geom.AvailableSpaceSize, inset geom.Size[float64]) geom.AvailableSpaceSize {
	return geom.AvailableSpaceSize{
		Width:  in.Width.Sub(inset.Width),
		Height: in.Height.Sub(inset.Height),
	}
}

// sanitizeContent clamps a measure hook's result per spec §4.2/§4.7:
// non-finite or negative values become zero.
func sanitizeContent(s geom.Size[float64]) geom.Size[float64] {
	clamp := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0
		}
		return v
	}
	return geom.Size[float64]{Width: clamp(s.Width), Height: clamp(s.Height)}
}
