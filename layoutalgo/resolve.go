package layoutalgo

import (
	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/style"
)

// resolvePadding resolves a Style's padding edges against the parent's
// size (percentages only resolve against a known basis; spec §3 padding
// is always non-negative).
func resolvePadding(s style.Style, parentSize geom.OptionSize) geom.Rect[float64] {
	return geom.Rect[float64]{
		Top:    s.Padding.Top.ResolveOrZero(parentSize.Height),
		Right:  s.Padding.Right.ResolveOrZero(parentSize.Width),
		Bottom: s.Padding.Bottom.ResolveOrZero(parentSize.Height),
		Left:   s.Padding.Left.ResolveOrZero(parentSize.Width),
	}
}

// resolveBorder resolves a Style's border edges against the parent's size.
func resolveBorder(s style.Style, parentSize geom.OptionSize) geom.Rect[float64] {
	return geom.Rect[float64]{
		Top:    s.Border.Top.ResolveOrZero(parentSize.Height),
		Right:  s.Border.Right.ResolveOrZero(parentSize.Width),
		Bottom: s.Border.Bottom.ResolveOrZero(parentSize.Height),
		Left:   s.Border.Left.ResolveOrZero(parentSize.Width),
	}
}

// resolveMargin resolves a Style's margin edges against the parent's size;
// Auto resolves to 0 here (auto-margin redistribution is handled
// separately by each algorithm that supports it).
func resolveMargin(s style.Style, parentSize geom.OptionSize) geom.Rect[float64] {
	return geom.Rect[float64]{
		Top:    s.Margin.Top.ResolveOrZero(parentSize.Height),
		Right:  s.Margin.Right.ResolveOrZero(parentSize.Width),
		Bottom: s.Margin.Bottom.ResolveOrZero(parentSize.Height),
		Left:   s.Margin.Left.ResolveOrZero(parentSize.Width),
	}
}

// paddingBorderSum returns the combined padding+border edge sums as a Size
// (horizontal, vertical) — the content-box inset every algorithm
// subtracts from a border-box size to get a content-box size.
func paddingBorderSum(padding, border geom.Rect[float64]) geom.Size[float64] {
	return geom.Size[float64]{
		Width:  geom.RectHorizontalSum(padding) + geom.RectHorizontalSum(border),
		Height: geom.RectVerticalSum(padding) + geom.RectVerticalSum(border),
	}
}

// scrollbarGutter returns the (width, height) scrollbar gutter reserved on
// the appropriate edge given each axis's overflow mode (spec §4.4 step 1,
// §3 "a scrollbar gutter equal to scrollbar_width is reserved... when
// overflow on the perpendicular axis is Scroll"). A vertical scrollbar
// (reserved from inline/width space) appears when the Y axis scrolls; a
// horizontal scrollbar (reserved from block/height space) appears when
// the X axis scrolls.
func scrollbarGutter(s style.Style) geom.Size[float64] {
	var out geom.Size[float64]
	if s.OverflowY == style.OverflowScroll {
		out.Width = s.ScrollbarWidth
	}
	if s.OverflowX == style.OverflowScroll {
		out.Height = s.ScrollbarWidth
	}
	return out
}

// resolveSizeStyle resolves a Size[Dimension] style against the parent
// size, returning per-axis optional definite values (nil if Auto or an
// indefinite percentage).
func resolveSizeStyle(dim geom.Size[style.Dimension], parentSize geom.OptionSize) geom.OptionSize {
	return geom.OptionSize{
		Width:  dim.Width.Resolve(parentSize.Width),
		Height: dim.Height.Resolve(parentSize.Height),
	}
}

// applyAspectRatio derives a missing axis from a known one and the
// style's aspect ratio (width/height), leaving both axes untouched when
// either both or neither are known, or no ratio is set.
func applyAspectRatio(size geom.OptionSize, ratio *float64) geom.OptionSize {
	if ratio == nil || *ratio <= 0 {
		return size
	}
	switch {
	case size.Width != nil && size.Height == nil:
		h := *size.Width / *ratio
		size.Height = &h
	case size.Height != nil && size.Width == nil:
		w := *size.Height * *ratio
		size.Width = &w
	}
	return size
}

// clampOptionSize clamps each known axis of size between the
// corresponding axes of min/max (spec §8 invariant 6: min wins when
// min > max).
func clampOptionSize(size, min, max geom.OptionSize) geom.OptionSize {
	return geom.OptionSize{
		Width:  geom.MaybeClamp(size.Width, min.Width, max.Width),
		Height: geom.MaybeClamp(size.Height, min.Height, max.Height),
	}
}

// resolvedMinMax bundles a node's min/max size resolved against the
// parent. Aspect ratio is not applied here; callers that need it pass the
// result through applyAspectRatio.
func resolvedMinMax(s style.Style, parentSize geom.OptionSize) (min, max geom.OptionSize) {
	min = resolveSizeStyle(s.MinSize, parentSize)
	max = resolveSizeStyle(s.MaxSize, parentSize)
	return min, max
}

// contentAlignOffsets returns (startOffset, betweenGapExtra) for
// distributing `remaining` free space across `count` items/lines per an
// AlignValue (spec §4.5 step 8, §4.6 step 4e). count must be >= 1 for the
// space-distribution keywords to be meaningful; callers guard count==0.
func contentAlignOffsets(align style.AlignValue, remaining float64, count int) (start, between float64) {
	if remaining < 0 {
		remaining = 0
	}
	switch align {
	case style.AlignCenter:
		start = remaining / 2
	case style.AlignEnd, style.AlignFlexEnd:
		start = remaining
	case style.AlignSpaceBetween:
		if count > 1 {
			between = remaining / float64(count-1)
		}
	case style.AlignSpaceAround:
		if count > 0 {
			between = remaining / float64(count)
			start = between / 2
		}
	case style.AlignSpaceEvenly:
		if count > 0 {
			between = remaining / float64(count+1)
			start = between
		}
	}
	return start, between
}
