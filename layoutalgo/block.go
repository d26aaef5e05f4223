package layoutalgo

import (
	"fmt"
	"math"

	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/style"
	"github.com/rowanstack/flexlayout/tree"
)

// computeBlockLayout implements single-column stacking (spec §4.4): width
// determination (known, or a MinContent intrinsic probe), sequential
// in-flow stacking with literal (non-collapsing) margins, then
// absolutely-positioned children against the content box.
func computeBlockLayout(t *tree.Tree, id tree.NodeId, s style.Style, children []tree.NodeId, in Input) (Output, error) {
	padding := resolvePadding(s, in.ParentSize)
	border := resolveBorder(s, in.ParentSize)
	gutter := scrollbarGutter(s)
	pbSum := paddingBorderSum(padding, border)
	pbSum.Width += gutter.Width
	pbSum.Height += gutter.Height
	origin := geom.Point[float64]{X: padding.Left + border.Left, Y: padding.Top + border.Top}

	min, max := resolvedMinMax(s, in.ParentSize)
	inherent := resolveSizeStyle(s.Size, in.ParentSize)
	known := geom.OptionSize{
		Width:  firstNonNil(in.KnownDimensions.Width, inherent.Width),
		Height: firstNonNil(in.KnownDimensions.Height, inherent.Height),
	}
	known = clampOptionSize(known, min, max)

	var inFlow, absolute []indexedChild
	for i, c := range children {
		childStyle, err := t.Style(c)
		if err != nil {
			return Output{}, fmt.Errorf("layoutalgo: %w", err)
		}
		if childStyle.Display == style.DisplayNone {
			if in.RunMode == PerformLayout {
				if _, err := computeNodeLayout(t, c, in.withKnown(geom.OptionSize{}).withOrder(uint32(i))); err != nil {
					return Output{}, err
				}
			}
			continue
		}
		if childStyle.Position == style.PositionAbsolute {
			absolute = append(absolute, indexedChild{id: c, order: uint32(i)})
			continue
		}
		inFlow = append(inFlow, indexedChild{id: c, order: uint32(i)})
	}

	// Width determination (step 3).
	if known.Width == nil {
		maxOuter := 0.0
		if len(inFlow) > 0 {
			probeIn := Input{
				AvailableSpace: geom.AvailableSpaceSize{Width: geom.MinContent, Height: in.AvailableSpace.Height},
				RunMode:        ComputeSize,
				SizingMode:     ContentSize,
				ParentSize:     geom.OptionSize{Height: known.Height},
			}
			for _, ic := range inFlow {
				childStyle, err := t.Style(ic.id)
				if err != nil {
					return Output{}, fmt.Errorf("layoutalgo: %w", err)
				}
				margin := resolveMargin(childStyle, probeIn.ParentSize)
				out, err := computeNodeLayout(t, ic.id, probeIn)
				if err != nil {
					return Output{}, err
				}
				outer := out.Size.Width + geom.RectHorizontalSum(margin)
				if outer > maxOuter {
					maxOuter = outer
				}
			}
		}
		borderBoxWidth := maxOuter + pbSum.Width
		w := geom.Clamp(borderBoxWidth, geom.OrZero(min.Width), maxOrInf(max.Width))
		known.Width = geom.Maybe(w)
	}
	innerWidth := *known.Width - pbSum.Width
	if innerWidth < 0 {
		innerWidth = 0
	}

	// Height determination (step 4): sequential stacking.
	cursor := 0.0
	maxChildRight := 0.0
	for _, ic := range inFlow {
		c := ic.id
		childStyle, err := t.Style(c)
		if err != nil {
			return Output{}, fmt.Errorf("layoutalgo: %w", err)
		}
		childParentSize := geom.OptionSize{Width: known.Width, Height: known.Height}
		margin := resolveMargin(childStyle, childParentSize)
		childKnownWidth := innerWidth - geom.RectHorizontalSum(margin)
		if childKnownWidth < 0 {
			childKnownWidth = 0
		}
		childIn := Input{
			KnownDimensions: geom.OptionSize{Width: geom.Maybe(childKnownWidth)},
			ParentSize:      childParentSize,
			AvailableSpace: geom.AvailableSpaceSize{
				Width:  geom.Definite(childKnownWidth),
				Height: geom.MinContent,
			},
			RunMode:    PerformLayout,
			SizingMode: InherentSize,
			Order:      ic.order,
		}
		out, err := computeNodeLayout(t, c, childIn)
		if err != nil {
			return Output{}, err
		}

		relOffset := relativeOffset(childStyle.Inset, geom.Size[*float64]{Width: geom.Maybe(innerWidth), Height: known.Height})
		loc := geom.Point[float64]{
			X: origin.X + margin.Left + relOffset.X,
			Y: origin.Y + cursor + margin.Top + relOffset.Y,
		}
		if err := setChildLocation(t, c, loc); err != nil {
			return Output{}, err
		}

		outerRight := loc.X - origin.X + out.Size.Width + margin.Right
		if outerRight > maxChildRight {
			maxChildRight = outerRight
		}
		cursor += margin.Top + out.Size.Height + margin.Bottom
	}

	if known.Height == nil {
		h := cursor + pbSum.Height
		h = geom.Clamp(h, geom.OrZero(min.Height), maxOrInf(max.Height))
		known.Height = geom.Maybe(h)
	}
	innerHeight := *known.Height - pbSum.Height
	if innerHeight < 0 {
		innerHeight = 0
	}

	if err := layoutAbsoluteChildren(t, absolute, origin, geom.Size[float64]{Width: innerWidth, Height: innerHeight}, in); err != nil {
		return Output{}, err
	}

	size := geom.Size[float64]{Width: *known.Width, Height: *known.Height}
	contentSize := geom.Size[float64]{
		Width:  geom.MaxT(innerWidth, maxChildRight) + pbSum.Width,
		Height: geom.MaxT(innerHeight, cursor) + pbSum.Height,
	}
	return Output{Size: size, ContentSize: contentSize}, nil
}

// maxOrInf returns *v, or +Inf when v is nil ("no upper bound").
func maxOrInf(v *float64) float64 {
	if v == nil {
		return math.Inf(1)
	}
	return *v
}

// relativeOffset resolves a node's inset edges into the visual offset
// applied on top of its flow position (spec §4.4 step 4: "relative
// positioning"). Auto resolves to 0 on an edge whose opposite edge is set;
// both-Auto is no offset.
func relativeOffset(inset geom.Rect[style.LengthPercentageAuto], basis geom.Size[*float64]) geom.Point[float64] {
	return geom.Point[float64]{
		X: insetAxisOffset(inset.Left, inset.Right, basis.Width),
		Y: insetAxisOffset(inset.Top, inset.Bottom, basis.Height),
	}
}

func insetAxisOffset(start, end style.LengthPercentageAuto, basis *float64) float64 {
	if !start.IsAuto() {
		return start.ResolveOrZero(basis)
	}
	if !end.IsAuto() {
		return -end.ResolveOrZero(basis)
	}
	return 0
}

// layoutAbsoluteChildren sizes and positions a block container's
// absolutely-positioned children (spec §4.4 step 5): an axis with both
// inset edges set resolves to a definite size against the content box;
// otherwise the child's own size style applies through the normal
// recursive dispatch. Position follows inset-start, falling back to
// inset-end, falling back to the content-box origin (the node's static
// position, since this core does not track in-flow static positions for
// out-of-flow children).
func layoutAbsoluteChildren(t *tree.Tree, absolute []indexedChild, origin geom.Point[float64], contentSize geom.Size[float64], in Input) error {
	parentSize := geom.OptionSize{Width: geom.Maybe(contentSize.Width), Height: geom.Maybe(contentSize.Height)}
	for _, ic := range absolute {
		c := ic.id
		childStyle, err := t.Style(c)
		if err != nil {
			return fmt.Errorf("layoutalgo: %w", err)
		}
		margin := resolveMargin(childStyle, parentSize)

		leftVal, leftSet := resolveInsetEdge(childStyle.Inset.Left, parentSize.Width)
		rightVal, rightSet := resolveInsetEdge(childStyle.Inset.Right, parentSize.Width)
		topVal, topSet := resolveInsetEdge(childStyle.Inset.Top, parentSize.Height)
		bottomVal, bottomSet := resolveInsetEdge(childStyle.Inset.Bottom, parentSize.Height)

		known := geom.OptionSize{}
		if leftSet && rightSet {
			w := contentSize.Width - leftVal - rightVal - geom.RectHorizontalSum(margin)
			if w < 0 {
				w = 0
			}
			known.Width = geom.Maybe(w)
		}
		if topSet && bottomSet {
			h := contentSize.Height - topVal - bottomVal - geom.RectVerticalSum(margin)
			if h < 0 {
				h = 0
			}
			known.Height = geom.Maybe(h)
		}

		childIn := Input{
			KnownDimensions: known,
			ParentSize:      parentSize,
			AvailableSpace: geom.AvailableSpaceSize{
				Width:  geom.Definite(contentSize.Width),
				Height: geom.Definite(contentSize.Height),
			},
			RunMode:    in.RunMode,
			SizingMode: InherentSize,
			Order:      ic.order,
		}
		out, err := computeNodeLayout(t, c, childIn)
		if err != nil {
			return err
		}

		x := origin.X
		switch {
		case leftSet:
			x = origin.X + leftVal + margin.Left
		case rightSet:
			x = origin.X + contentSize.Width - rightVal - margin.Right - out.Size.Width
		}
		y := origin.Y
		switch {
		case topSet:
			y = origin.Y + topVal + margin.Top
		case bottomSet:
			y = origin.Y + contentSize.Height - bottomVal - margin.Bottom - out.Size.Height
		}

		if err := setChildLocation(t, c, geom.Point[float64]{X: x, Y: y}); err != nil {
			return err
		}
	}
	return nil
}

// resolveInsetEdge resolves one inset edge, reporting whether it was a
// non-Auto (and, for a percentage, resolvable) value.
func resolveInsetEdge(v style.LengthPercentageAuto, basis *float64) (float64, bool) {
	if v.IsAuto() {
		return 0, false
	}
	r := v.Resolve(basis)
	if r == nil {
		return 0, false
	}
	return *r, true
}
