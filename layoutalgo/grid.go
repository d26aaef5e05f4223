package layoutalgo

import (
	"fmt"

	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/style"
	"github.com/rowanstack/flexlayout/tree"
)

// gridChild bundles one in-flow child with its resolved style and track
// placement, threaded through sizing and final layout together.
type gridChild struct {
	id tree.NodeId
	// order is this item's position in its parent's full child list
	// (spec §4.7), stamped into its ComputedLayout once finalized.
	order uint32
	style style.Style
	place placedItem
}

// computeGridLayout implements CSS Grid Level 2 (spec §4.6): explicit
// track resolution, 2D placement over a sparse occupancy matrix, implicit
// track sizing, the track sizing algorithm (intrinsic content, then fr
// expansion), and per-item layout with justify-self/align-self.
func computeGridLayout(t *tree.Tree, id tree.NodeId, s style.Style, children []tree.NodeId, in Input) (Output, error) {
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
	innerWidth := insetAxis(known.Width, pbSum.Width)
	innerHeight := insetAxis(known.Height, pbSum.Height)

	rowGapBasis := firstNonNil(innerHeight, availableInset(in.AvailableSpace.Height, pbSum.Height))
	colGapBasis := firstNonNil(innerWidth, availableInset(in.AvailableSpace.Width, pbSum.Width))
	rowGap := s.RowGap(rowGapBasis)
	colGap := s.ColumnGap(colGapBasis)

	// Step 1: explicit track resolution.
	explicitCols := flattenTemplate(s.GridTemplateColumns, colGapBasis, colGap)
	explicitRows := flattenTemplate(s.GridTemplateRows, rowGapBasis, rowGap)

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

	// Step 2: placement.
	rowPlacements := make([]axisPlacement, len(inFlow))
	colPlacements := make([]axisPlacement, len(inFlow))
	childStyles := make([]style.Style, len(inFlow))
	for i, ic := range inFlow {
		cs, err := t.Style(ic.id)
		if err != nil {
			return Output{}, fmt.Errorf("layoutalgo: %w", err)
		}
		childStyles[i] = cs
		rowPlacements[i] = resolveAxisPlacement(cs.GridRow, len(explicitRows))
		colPlacements[i] = resolveAxisPlacement(cs.GridColumn, len(explicitCols))
	}
	placed := placeItems(rowPlacements, colPlacements, s.GridAutoFlow, len(explicitCols))

	rowCount := gridExtent(placed, true, len(explicitRows))
	colCount := gridExtent(placed, false, len(explicitCols))

	gridChildren := make([]gridChild, len(inFlow))
	for i, ic := range inFlow {
		gridChildren[i] = gridChild{id: ic.id, order: ic.order, style: childStyles[i], place: placed[i]}
	}

	// Step 3: implicit tracks + step 4: track sizing.
	rows := buildTracks(explicitRows, s.GridAutoRows, rowCount)
	cols := buildTracks(explicitCols, s.GridAutoColumns, colCount)

	resolveTrackSizes(cols, innerWidth, colGap, trackContentSize(t, gridChildren, true, known))
	resolveTrackSizes(rows, innerHeight, rowGap, trackContentSize(t, gridChildren, false, known))

	// Step 6/7: container size from track sums (step 7, computed before
	// item layout since stretch/alignment need the final area sizes).
	contentW := tracksSpan(cols, 0, len(cols), colGap)
	contentH := tracksSpan(rows, 0, len(rows), rowGap)
	finalW := contentW
	if innerWidth != nil {
		finalW = *innerWidth
	}
	finalH := contentH
	if innerHeight != nil {
		finalH = *innerHeight
	}
	sizeW := geom.Clamp(finalW+pbSum.Width, geom.OrZero(min.Width), maxOrInf(max.Width))
	sizeH := geom.Clamp(finalH+pbSum.Height, geom.OrZero(min.Height), maxOrInf(max.Height))

	// Step 6: item layout.
	maxRight, maxBottom := 0.0, 0.0
	for _, gc := range gridChildren {
		areaX := trackOffset(cols, gc.place.colStart, colGap)
		areaY := trackOffset(rows, gc.place.rowStart, rowGap)
		areaW := tracksSpan(cols, gc.place.colStart, gc.place.colEnd, colGap)
		areaH := tracksSpan(rows, gc.place.rowStart, gc.place.rowEnd, rowGap)

		loc, out, err := layoutGridItem(t, gc, geom.Size[float64]{Width: areaW, Height: areaH}, geom.Point[float64]{X: origin.X + areaX, Y: origin.Y + areaY}, s, known)
		if err != nil {
			return Output{}, err
		}
		if err := setChildLocation(t, gc.id, loc); err != nil {
			return Output{}, err
		}
		if right := loc.X - origin.X + out.Size.Width; right > maxRight {
			maxRight = right
		}
		if bottom := loc.Y - origin.Y + out.Size.Height; bottom > maxBottom {
			maxBottom = bottom
		}
	}

	if err := layoutAbsoluteChildren(t, absolute, origin, geom.Size[float64]{Width: sizeW - pbSum.Width, Height: sizeH - pbSum.Height}, in); err != nil {
		return Output{}, err
	}

	return Output{
		Size:        geom.Size[float64]{Width: sizeW, Height: sizeH},
		ContentSize: geom.Size[float64]{Width: geom.MaxT(contentW, maxRight) + pbSum.Width, Height: geom.MaxT(contentH, maxBottom) + pbSum.Height},
	}, nil
}

// trackContentSize returns a per-track content-contribution callback for
// resolveTrackSizes: the max min-content main-axis size of any span-1
// item occupying that track (rows axis when forRows, columns otherwise).
func trackContentSize(t *tree.Tree, items []gridChild, forRows bool, parentSize geom.OptionSize) func(int) float64 {
	cache := map[int]float64{}
	return func(track int) float64 {
		if v, ok := cache[track]; ok {
			return v
		}
		best := 0.0
		for _, gc := range items {
			start, end := gc.place.colStart, gc.place.colEnd
			if forRows {
				start, end = gc.place.rowStart, gc.place.rowEnd
			}
			if end-start != 1 || start != track {
				continue
			}
			avail := geom.AvailableSpaceSize{Width: geom.MinContent, Height: geom.MinContent}
			probeIn := Input{ParentSize: parentSize, AvailableSpace: avail, RunMode: ComputeSize, SizingMode: ContentSize}
			out, err := computeNodeLayout(t, gc.id, probeIn)
			if err != nil {
				continue
			}
			v := out.Size.Width
			if forRows {
				v = out.Size.Height
			}
			if v > best {
				best = v
			}
		}
		cache[track] = best
		return best
	}
}

// layoutGridItem implements spec §4.6 step 6: resolve the item's own size
// against its area, apply aspect ratio, then justify-self/align-self
// (Stretch expands to the area, Start/Center/End position within it),
// with auto margins absorbing leftover area space before alignment runs.
func layoutGridItem(t *tree.Tree, gc gridChild, area geom.Size[float64], areaOrigin geom.Point[float64], container style.Style, containerKnown geom.OptionSize) (geom.Point[float64], Output, error) {
	margin := resolveMargin(gc.style, geom.OptionSize{Width: geom.Maybe(area.Width), Height: geom.Maybe(area.Height)})
	autoW := gc.style.Margin.Left.IsAuto() || gc.style.Margin.Right.IsAuto()
	autoH := gc.style.Margin.Top.IsAuto() || gc.style.Margin.Bottom.IsAuto()

	innerArea := geom.Size[float64]{
		Width:  geom.MaxT(area.Width-geom.RectHorizontalSum(margin), 0),
		Height: geom.MaxT(area.Height-geom.RectVerticalSum(margin), 0),
	}

	justifySelf := style.JustifySelfOrItems(gc.style.JustifySelf, container)
	alignSelf := style.AlignSelfOrItems(gc.style.AlignSelf, container)

	size := resolveSizeStyle(gc.style.Size, geom.OptionSize{Width: geom.Maybe(area.Width), Height: geom.Maybe(area.Height)})
	size = applyAspectRatio(size, gc.style.AspectRatio)
	known := geom.OptionSize{}
	if size.Width != nil {
		known.Width = size.Width
	} else if justifySelf == style.AlignStretch && !autoW {
		known.Width = geom.Maybe(innerArea.Width)
	}
	if size.Height != nil {
		known.Height = size.Height
	} else if alignSelf == style.AlignStretch && !autoH {
		known.Height = geom.Maybe(innerArea.Height)
	}

	avail := geom.AvailableSpaceSize{Width: geom.Definite(innerArea.Width), Height: geom.Definite(innerArea.Height)}
	childIn := Input{KnownDimensions: known, ParentSize: geom.OptionSize{Width: geom.Maybe(area.Width), Height: geom.Maybe(area.Height)}, AvailableSpace: avail, RunMode: PerformLayout, SizingMode: InherentSize, Order: gc.order}
	out, err := computeNodeLayout(t, gc.id, childIn)
	if err != nil {
		return geom.Point[float64]{}, Output{}, err
	}

	freeW := geom.MaxT(innerArea.Width-out.Size.Width, 0)
	freeH := geom.MaxT(innerArea.Height-out.Size.Height, 0)
	var x, y float64
	if autoW {
		x = margin.Left + freeW/2
	} else {
		switch justifySelf {
		case style.AlignCenter:
			x = margin.Left + freeW/2
		case style.AlignEnd, style.AlignFlexEnd:
			x = margin.Left + freeW
		default:
			x = margin.Left
		}
	}
	if autoH {
		y = margin.Top + freeH/2
	} else {
		switch alignSelf {
		case style.AlignCenter:
			y = margin.Top + freeH/2
		case style.AlignEnd, style.AlignFlexEnd:
			y = margin.Top + freeH
		default:
			y = margin.Top
		}
	}

	return geom.Point[float64]{X: areaOrigin.X + x, Y: areaOrigin.Y + y}, out, nil
}
