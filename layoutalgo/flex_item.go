package layoutalgo

import (
	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/style"
	"github.com/rowanstack/flexlayout/tree"
)

// flexItem is FlexItem (spec §4.5 step 2): one in-flow child's resolved
// style inputs plus the mutable state the later steps (basis resolution,
// flexible-length resolution, alignment) accumulate on it.
type flexItem struct {
	id tree.NodeId
	// order is this item's position in its parent's full child list
	// (spec §4.7), stamped into its ComputedLayout once finalized.
	order  uint32
	style  style.Style
	margin geom.Rect[float64]
	// autoMargin marks which margin edges were `auto` in the style — the
	// edges eligible to absorb leftover free space (step 5, step 7).
	autoMargin geom.Rect[bool]
	padding    geom.Rect[float64]
	border     geom.Rect[float64]

	size geom.OptionSize
	min  geom.OptionSize
	max  geom.OptionSize

	alignSelf   style.AlignValue
	aspectRatio *float64

	flexGrow   float64
	flexShrink float64

	// hypotheticalMainSize is the item's clamped main-axis basis (step 3).
	hypotheticalMainSize float64
	// resolvedMinMain/resolvedMaxMain are the main-axis min/max actually
	// used to clamp the hypothetical and flexed size — resolvedMinMain
	// already folds in the automatic-minimum-size rule.
	resolvedMinMain float64
	resolvedMaxMain float64

	// target is the item's main size after flexible-length resolution
	// (step 5); frozen once it stops participating in redistribution.
	target    float64
	frozen    bool
	violation float64

	// crossSize/baseline are filled in by step 6/7.
	crossSize float64
	baseline  *float64

	// mainOffset/crossOffset are this item's content-box-relative origin,
	// filled in by step 7/8.
	mainOffset, crossOffset float64

	out Output
}

// outerMainSize returns the item's current target main size plus its
// main-axis margins (auto margins count as 0 until redistributed).
func (it *flexItem) outerMainSize(isRow bool) float64 {
	return it.target + geom.RectMainAxisSum(it.margin, isRow)
}

// outerHypotheticalMainSize is the pre-flex outer main size used for line
// formation and the free-space computation (step 4, step 5).
func (it *flexItem) outerHypotheticalMainSize(isRow bool) float64 {
	return it.hypotheticalMainSize + geom.RectMainAxisSum(it.margin, isRow)
}

// flexLine is FlexLine (spec §4.5 step 4): one wrapped row/column of items.
type flexLine struct {
	items     []*flexItem
	crossSize float64
	// baseline is the line's shared ascent for Baseline-aligned items
	// (step 7): the max baseline among the line's baseline-aligned items.
	baseline float64
	// crossStart is this line's cross-start edge, content-box relative,
	// assigned once lines are positioned against each other (step 9).
	crossStart float64
}

// buildFlexItems resolves every non-absolute, non-hidden child into a
// flexItem (step 2), hiding Display::None children and returning absolute
// children separately for step-10 handling. known is the container's
// resolved (possibly still partly indefinite) size, used as the
// percentage basis for the child's own box properties.
func buildFlexItems(t *tree.Tree, children []tree.NodeId, s style.Style, known geom.OptionSize, in Input) (items []*flexItem, absolute []indexedChild, err error) {
	for i, c := range children {
		childStyle, e := t.Style(c)
		if e != nil {
			return nil, nil, e
		}
		if childStyle.Display == style.DisplayNone {
			if in.RunMode == PerformLayout {
				if _, e := computeNodeLayout(t, c, in.withKnown(geom.OptionSize{}).withOrder(uint32(i))); e != nil {
					return nil, nil, e
				}
			}
			continue
		}
		if childStyle.Position == style.PositionAbsolute {
			absolute = append(absolute, indexedChild{id: c, order: uint32(i)})
			continue
		}

		margin := resolveMargin(childStyle, known)
		autoMargin := geom.Rect[bool]{
			Top:    childStyle.Margin.Top.IsAuto(),
			Right:  childStyle.Margin.Right.IsAuto(),
			Bottom: childStyle.Margin.Bottom.IsAuto(),
			Left:   childStyle.Margin.Left.IsAuto(),
		}
		padding := resolvePadding(childStyle, known)
		border := resolveBorder(childStyle, known)
		min, max := resolvedMinMax(childStyle, known)
		size := resolveSizeStyle(childStyle.Size, known)
		min = applyAspectRatio(min, childStyle.AspectRatio)
		max = applyAspectRatio(max, childStyle.AspectRatio)
		size = applyAspectRatio(size, childStyle.AspectRatio)

		items = append(items, &flexItem{
			id:          c,
			order:       uint32(i),
			style:       childStyle,
			margin:      margin,
			autoMargin:  autoMargin,
			padding:     padding,
			border:      border,
			size:        size,
			min:         min,
			max:         max,
			alignSelf:   style.AlignSelfOrItems(childStyle.AlignSelf, s),
			aspectRatio: childStyle.AspectRatio,
			flexGrow:    childStyle.FlexGrow,
			flexShrink:  childStyle.FlexShrink,
		})
	}
	return items, absolute, nil
}

// resolveHypotheticalMainSizes implements step 3 for every item: resolve
// flex-basis (falling back to the main-axis size style, then to a
// MaxContent content-size probe), then clamp by main-axis min/max with the
// automatic minimum size rule (spec §4.5 step 3, §4.5 edge cases).
func resolveHypotheticalMainSizes(t *tree.Tree, items []*flexItem, isRow bool, known geom.OptionSize, in Input) error {
	mainBasis := known.Get(isRow)
	for _, it := range items {
		basis := it.style.FlexBasis.Resolve(mainBasis)
		if basis == nil {
			basis = it.size.Get(isRow)
		}
		if basis == nil {
			probed, err := probeContentSize(t, it, isRow, true, known, in)
			if err != nil {
				return err
			}
			v := probed.Get(isRow)
			basis = &v
		}

		minMain := it.min.Get(isRow)
		if minMain == nil {
			overflow := it.style.OverflowX
			if !isRow {
				overflow = it.style.OverflowY
			}
			if overflow == style.OverflowVisible {
				probed, err := probeContentSize(t, it, isRow, false, known, in)
				if err != nil {
					return err
				}
				v := probed.Get(isRow)
				minMain = &v
			} else {
				z := 0.0
				minMain = &z
			}
		}
		maxMain := it.max.Get(isRow)

		it.resolvedMinMain = *minMain
		it.resolvedMaxMain = maxOrInf(maxMain)
		it.hypotheticalMainSize = geom.Clamp(*basis, it.resolvedMinMain, it.resolvedMaxMain)
		it.target = it.hypotheticalMainSize
	}
	return nil
}

// probeContentSize asks the child for its content-box contribution under
// MaxContent (maxContent=true, for flex-basis:content) or MinContent
// (maxContent=false, for the automatic minimum size) available space along
// the main axis; the cross axis is passed through from the container's own
// available space so aspect-ratio/wrapping children see a realistic bound.
func probeContentSize(t *tree.Tree, it *flexItem, isRow, maxContent bool, known geom.OptionSize, in Input) (geom.Size[float64], error) {
	probeSpace := geom.MinContent
	if maxContent {
		probeSpace = geom.MaxContent
	}
	avail := in.AvailableSpace
	if isRow {
		avail.Width = probeSpace
	} else {
		avail.Height = probeSpace
	}
	probeIn := Input{
		ParentSize:     known,
		AvailableSpace: avail,
		RunMode:        ComputeSize,
		SizingMode:     ContentSize,
	}
	out, err := computeNodeLayout(t, it.id, probeIn)
	if err != nil {
		return geom.Size[float64]{}, err
	}
	return out.Size, nil
}
