package layoutalgo

import (
	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/style"
	"github.com/rowanstack/flexlayout/tree"
)

// computeFlexLayout implements the nine-step CSS Flexbox algorithm (spec
// §4.5), dispatched to here once the container has at least one child
// (children that are all Display: None included).
func computeFlexLayout(t *tree.Tree, id tree.NodeId, s style.Style, children []tree.NodeId, in Input) (Output, error) {
	isRow := s.FlexDirection.IsRow()
	wrap := s.FlexWrap != style.NoWrap
	wrapReverse := s.FlexWrap == style.WrapReverse
	reverse := s.FlexDirection.IsReverse()

	// Step 1: constants.
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
	innerKnown := geom.OptionSize{Width: insetAxis(known.Width, pbSum.Width), Height: insetAxis(known.Height, pbSum.Height)}
	availInner := geom.OptionSize{
		Width:  availableInset(in.AvailableSpace.Width, pbSum.Width),
		Height: availableInset(in.AvailableSpace.Height, pbSum.Height),
	}

	mainBound := firstNonNil(innerKnown.Get(isRow), availInner.Get(isRow))
	crossBasis := firstNonNil(innerKnown.Get(!isRow), availInner.Get(!isRow))
	mainGap := s.MainGap(isRow, mainBound)
	crossGap := s.CrossGap(isRow, crossBasis)

	// Step 2: item list.
	items, absolute, err := buildFlexItems(t, children, s, innerKnown, in)
	if err != nil {
		return Output{}, err
	}

	if len(items) == 0 {
		return finishEmptyFlex(t, absolute, origin, known, pbSum, min, max, in)
	}

	// Step 3: hypothetical main sizes.
	if err := resolveHypotheticalMainSizes(t, items, isRow, innerKnown, in); err != nil {
		return Output{}, err
	}

	// Step 4: line formation.
	lines := formLines(items, isRow, wrap, mainGap, mainBound)

	// Step 5: resolve flexible lengths per line. The used main size is the
	// known size if definite, else the content size (the widest line's
	// hypothetical main sum) clamped by min/max-size — a min-size on an
	// indefinite main axis must still promote into the free-space basis,
	// not just the reported container size (step 8).
	minMain, maxMain := min.Get(isRow), max.Get(isRow)
	containerMainKnown := innerKnown.Get(isRow)
	if containerMainKnown == nil {
		content := 0.0
		for _, line := range lines {
			if c := sumMain(line.items, isRow, mainGap, true); c > content {
				content = c
			}
		}
		// min/max-size are border-box bounds (the same ones `known` was
		// clamped against above): clamp the outer box, then subtract
		// padding/border back out to land in the same content-box terms
		// as innerKnown.
		outer := geom.Clamp(content+pbSum.Get(isRow), geom.OrZero(minMain), maxOrInf(maxMain))
		containerMainKnown = insetAxis(geom.Maybe(outer), pbSum.Get(isRow))
	}
	for _, line := range lines {
		hypSum := sumMain(line.items, isRow, mainGap, true)
		freeSpace := *containerMainKnown - hypSum
		resolveFlexibleLengths(line, isRow, freeSpace)
		consumed := sumMain(line.items, isRow, mainGap, false)
		distributeMainAutoMargins(line, isRow, *containerMainKnown-consumed)
	}

	// Step 6: cross size per item.
	for _, line := range lines {
		for _, it := range line.items {
			if err := resolveItemCrossSize(t, it, isRow, innerKnown); err != nil {
				return Output{}, err
			}
		}
	}

	// Line cross sizes: max outer cross size of items, except a single
	// line in a definite-cross container fills the container.
	for _, line := range lines {
		m := 0.0
		for _, it := range line.items {
			outer := it.crossSize + geom.RectCrossAxisSum(it.margin, isRow)
			if outer > m {
				m = outer
			}
		}
		line.crossSize = m
	}
	if len(lines) == 1 && innerKnown.Get(!isRow) != nil {
		lines[0].crossSize = *innerKnown.Get(!isRow)
	}

	// Step 7: cross alignment (stretch, position within line, baseline
	// groups, auto cross-margins).
	for _, line := range lines {
		line.baseline = 0
		for _, it := range line.items {
			if it.alignSelf == style.AlignBaseline && it.baseline != nil && *it.baseline > line.baseline {
				line.baseline = *it.baseline
			}
		}
		for _, it := range line.items {
			applyCrossAlignment(it, isRow, line)
		}
	}

	// Step 8: main alignment (justify-content, item order reversal). The
	// used main size computed for step 5 is definite by construction and
	// doubles as the container's final main size.
	containerMainFinal := *containerMainKnown
	justify := style.AlignStart
	if s.JustifyContent != nil {
		justify = *s.JustifyContent
	}
	for _, line := range lines {
		applyMainAlignment(line, isRow, reverse, mainGap, justify, containerMainFinal)
	}

	// Step 9: container size, including cross-axis align-content. Lines
	// are positioned in WrapReverse's visual order so each line's
	// crossStart already reflects the flip; the final placement pass
	// below then just reads it off each item's own line.
	containerCrossKnown := innerKnown.Get(!isRow)
	var containerCrossFinal float64
	totalLineCross := sumCross(lines, crossGap)
	orderedLines := lines
	if wrapReverse {
		orderedLines = reverseLines(lines)
	}
	if containerCrossKnown != nil {
		containerCrossFinal = *containerCrossKnown
		applyAlignContent(orderedLines, s, *containerCrossKnown, totalLineCross, crossGap)
	} else {
		containerCrossFinal = totalLineCross
		positionLinesSequentially(orderedLines, crossGap)
	}

	var sizeW, sizeH float64
	if isRow {
		sizeW, sizeH = containerMainFinal+pbSum.Width, containerCrossFinal+pbSum.Height
	} else {
		sizeW, sizeH = containerCrossFinal+pbSum.Width, containerMainFinal+pbSum.Height
	}
	sizeW = geom.Clamp(sizeW, geom.OrZero(min.Width), maxOrInf(max.Width))
	sizeH = geom.Clamp(sizeH, geom.OrZero(min.Height), maxOrInf(max.Height))

	// Final per-item layout pass + placement. Iteration order doesn't
	// matter here: each line already carries its final crossStart.
	maxChildRight, maxChildBottom := 0.0, 0.0
	for _, line := range lines {
		for _, it := range line.items {
			out, err := finalizeFlexItem(t, it, isRow, innerKnown)
			if err != nil {
				return Output{}, err
			}
			mainPos := it.mainOffset
			crossPos := line.crossStart + it.crossOffset
			var loc geom.Point[float64]
			if isRow {
				loc = geom.Point[float64]{X: origin.X + mainPos, Y: origin.Y + crossPos}
			} else {
				loc = geom.Point[float64]{X: origin.X + crossPos, Y: origin.Y + mainPos}
			}
			if err := setChildLocation(t, it.id, loc); err != nil {
				return Output{}, err
			}
			right := loc.X - origin.X + out.Size.Width
			bottom := loc.Y - origin.Y + out.Size.Height
			if right > maxChildRight {
				maxChildRight = right
			}
			if bottom > maxChildBottom {
				maxChildBottom = bottom
			}
		}
	}

	contentInnerW := sizeW - pbSum.Width
	contentInnerH := sizeH - pbSum.Height
	if err := layoutAbsoluteChildren(t, absolute, origin, geom.Size[float64]{Width: contentInnerW, Height: contentInnerH}, in); err != nil {
		return Output{}, err
	}

	return Output{
		Size:        geom.Size[float64]{Width: sizeW, Height: sizeH},
		ContentSize: geom.Size[float64]{Width: geom.MaxT(contentInnerW, maxChildRight) + pbSum.Width, Height: geom.MaxT(contentInnerH, maxChildBottom) + pbSum.Height},
	}, nil
}

// finishEmptyFlex handles a flex container with only absolute/hidden
// children: it behaves like an empty box sized from style alone.
func finishEmptyFlex(t *tree.Tree, absolute []indexedChild, origin geom.Point[float64], known geom.OptionSize, pbSum geom.Size[float64], min, max geom.OptionSize, in Input) (Output, error) {
	w := geom.OrZero(known.Width)
	if known.Width == nil {
		w = pbSum.Width
	}
	h := geom.OrZero(known.Height)
	if known.Height == nil {
		h = pbSum.Height
	}
	w = geom.Clamp(w, geom.OrZero(min.Width), maxOrInf(max.Width))
	h = geom.Clamp(h, geom.OrZero(min.Height), maxOrInf(max.Height))
	if err := layoutAbsoluteChildren(t, absolute, origin, geom.Size[float64]{Width: w - pbSum.Width, Height: h - pbSum.Height}, in); err != nil {
		return Output{}, err
	}
	size := geom.Size[float64]{Width: w, Height: h}
	return Output{Size: size, ContentSize: size}, nil
}

// insetAxis subtracts inset from v, clamped to zero; nil propagates.
func insetAxis(v *float64, inset float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v - inset
	if out < 0 {
		out = 0
	}
	return geom.Maybe(out)
}

// availableInset projects a Definite available space down by inset,
// returning nil for Min/MaxContent (no definite bound to carry forward).
func availableInset(a geom.AvailableSpace, inset float64) *float64 {
	if !a.IsDefinite() {
		return nil
	}
	return a.Sub(inset).IntoOption()
}

// sumMain totals a line's outer main sizes plus inter-item gaps; useHyp
// selects hypothetical (pre-flex-resolution) vs target (post-resolution)
// sizes.
func sumMain(items []*flexItem, isRow bool, gap float64, useHyp bool) float64 {
	total := 0.0
	for i, it := range items {
		if i > 0 {
			total += gap
		}
		if useHyp {
			total += it.outerHypotheticalMainSize(isRow)
		} else {
			total += it.outerMainSize(isRow)
		}
	}
	return total
}

// sumCross totals every line's cross size plus inter-line gaps.
func sumCross(lines []*flexLine, gap float64) float64 {
	total := 0.0
	for i, l := range lines {
		if i > 0 {
			total += gap
		}
		total += l.crossSize
	}
	return total
}

// resolveItemCrossSize implements step 6 for one item: its hypothetical
// cross size from an explicit style value, aspect ratio, or a content
// probe, plus (when align-self is Baseline) the item's first baseline.
func resolveItemCrossSize(t *tree.Tree, it *flexItem, isRow bool, parentSize geom.OptionSize) error {
	explicitCross := it.size.Get(!isRow)
	var crossHyp float64
	haveCross := false
	if explicitCross != nil {
		crossHyp = *explicitCross
		haveCross = true
	} else if it.aspectRatio != nil {
		if isRow {
			crossHyp = it.target / *it.aspectRatio
		} else {
			crossHyp = it.target * *it.aspectRatio
		}
		haveCross = true
	}

	needProbe := !haveCross || it.alignSelf == style.AlignBaseline
	if needProbe {
		childKnown := geom.OptionSize{}
		childKnown = childKnown.Set(isRow, geom.Maybe(it.target))
		if haveCross {
			childKnown = childKnown.Set(!isRow, geom.Maybe(crossHyp))
		}
		avail := geom.AvailableSpaceSize{}
		avail = avail.Set(isRow, geom.Definite(it.target))
		avail = avail.Set(!isRow, geom.MaxContent)
		probeIn := Input{ParentSize: parentSize, KnownDimensions: childKnown, AvailableSpace: avail, RunMode: ComputeSize, SizingMode: InherentSize}
		out, err := computeNodeLayout(t, it.id, probeIn)
		if err != nil {
			return err
		}
		if !haveCross {
			crossHyp = out.Size.Get(!isRow)
		}
		it.baseline = out.FirstBaseline
	}

	minCross, maxCross := it.min.Get(!isRow), it.max.Get(!isRow)
	it.crossSize = geom.Clamp(crossHyp, geom.OrZero(minCross), maxOrInf(maxCross))
	return nil
}

// applyCrossAlignment implements step 7's per-item positioning: stretch
// (when no explicit cross size and no auto cross-margins claim the
// space), Center/End/Baseline/Start positioning, and auto cross-margin
// absorption.
func applyCrossAlignment(it *flexItem, isRow bool, line *flexLine) {
	autoStart, autoEnd := crossAutoMargins(it, isRow)
	marginStart := crossMarginStart(it, isRow)
	available := line.crossSize - geom.RectCrossAxisSum(it.margin, isRow) - it.crossSize
	if available < 0 {
		available = 0
	}

	if autoStart || autoEnd {
		switch {
		case autoStart && autoEnd:
			half := available / 2
			setCrossMarginStart(it, isRow, marginStart+half)
			it.crossOffset = marginStart + half
		case autoStart:
			setCrossMarginStart(it, isRow, marginStart+available)
			it.crossOffset = marginStart + available
		default:
			it.crossOffset = marginStart
		}
		return
	}

	if it.alignSelf == style.AlignStretch && it.size.Get(!isRow) == nil && it.aspectRatio == nil {
		it.crossSize = geom.Clamp(it.crossSize+available, geom.OrZero(it.min.Get(!isRow)), maxOrInf(it.max.Get(!isRow)))
		it.crossOffset = marginStart
		return
	}

	switch it.alignSelf {
	case style.AlignCenter:
		it.crossOffset = marginStart + available/2
	case style.AlignEnd, style.AlignFlexEnd:
		it.crossOffset = marginStart + available
	case style.AlignBaseline:
		ownBaseline := it.crossSize
		if it.baseline != nil {
			ownBaseline = *it.baseline
		}
		it.crossOffset = marginStart + (line.baseline - ownBaseline)
	default:
		it.crossOffset = marginStart
	}
}

func crossAutoMargins(it *flexItem, isRow bool) (start, end bool) {
	if isRow {
		return it.autoMargin.Top, it.autoMargin.Bottom
	}
	return it.autoMargin.Left, it.autoMargin.Right
}

func crossMarginStart(it *flexItem, isRow bool) float64 {
	if isRow {
		return it.margin.Top
	}
	return it.margin.Left
}

func setCrossMarginStart(it *flexItem, isRow bool, v float64) {
	if isRow {
		it.margin.Top = v
	} else {
		it.margin.Left = v
	}
}

// applyMainAlignment implements step 8: justify-content spacing, with
// item order reversed (for *-reverse directions) so coordinates still
// increase start-to-end.
func applyMainAlignment(line *flexLine, isRow, reverse bool, mainGap float64, justify style.AlignValue, containerMain float64) {
	consumed := sumMain(line.items, isRow, mainGap, false)
	free := containerMain - consumed
	start, between := contentAlignOffsets(justify, free, len(line.items))

	ordered := line.items
	if reverse {
		ordered = make([]*flexItem, len(line.items))
		for i, it := range line.items {
			ordered[len(line.items)-1-i] = it
		}
	}

	cursor := start
	for _, it := range ordered {
		marginStart, marginEnd := mainMargins(it, isRow)
		it.mainOffset = cursor + marginStart
		cursor += marginStart + it.target + marginEnd + mainGap + between
	}
}

func mainMargins(it *flexItem, isRow bool) (start, end float64) {
	if isRow {
		return it.margin.Left, it.margin.Right
	}
	return it.margin.Top, it.margin.Bottom
}

// applyAlignContent implements the align-content portion of step 9,
// positioning lines against a definite container cross size.
func applyAlignContent(lines []*flexLine, s style.Style, containerCross, totalLineCross, gap float64) {
	free := containerCross - totalLineCross
	if free < 0 {
		free = 0
	}
	alignContent := style.AlignStretch
	if s.AlignContent != nil {
		alignContent = *s.AlignContent
	}
	if alignContent == style.AlignStretch && free > 0 {
		extra := free / float64(len(lines))
		cursor := 0.0
		for _, l := range lines {
			l.crossSize += extra
			l.crossStart = cursor
			cursor += l.crossSize + gap
		}
		return
	}
	start, between := contentAlignOffsets(alignContent, free, len(lines))
	cursor := start
	for _, l := range lines {
		l.crossStart = cursor
		cursor += l.crossSize + gap + between
	}
}

// positionLinesSequentially lays out lines back to back with no extra
// free space to distribute (container cross size is itself content-based).
func positionLinesSequentially(lines []*flexLine, gap float64) {
	cursor := 0.0
	for _, l := range lines {
		l.crossStart = cursor
		cursor += l.crossSize + gap
	}
}

// reverseLines returns a new slice with line order reversed (WrapReverse);
// each line's own items are untouched.
func reverseLines(lines []*flexLine) []*flexLine {
	out := make([]*flexLine, len(lines))
	for i, l := range lines {
		out[len(lines)-1-i] = l
	}
	return out
}

// finalizeFlexItem runs the child's real PerformLayout pass at its
// resolved main/cross size (step 9's implicit final sizing pass).
func finalizeFlexItem(t *tree.Tree, it *flexItem, isRow bool, parentSize geom.OptionSize) (Output, error) {
	known := geom.OptionSize{}
	known = known.Set(isRow, geom.Maybe(it.target))
	known = known.Set(!isRow, geom.Maybe(it.crossSize))
	avail := geom.AvailableSpaceSize{}
	avail = avail.Set(isRow, geom.Definite(it.target))
	avail = avail.Set(!isRow, geom.Definite(it.crossSize))
	childIn := Input{KnownDimensions: known, ParentSize: parentSize, AvailableSpace: avail, RunMode: PerformLayout, SizingMode: InherentSize, Order: it.order}
	out, err := computeNodeLayout(t, it.id, childIn)
	if err != nil {
		return Output{}, err
	}
	it.out = out
	return out, nil
}
