package layoutalgo

import (
	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/style"
)

// axisPlacement is one child's resolved placement along one grid axis
// (spec §4.6 step 2a): either both ends already pinned to an origin-zero
// track index, or only a span size known, awaiting auto-placement.
type axisPlacement struct {
	definite   bool
	start, end int
	span       int
}

// resolveAxisPlacement converts a child's Line<Placement> into origin-zero
// coordinates (spec §4.6 step 2a). explicitCount is the number of tracks
// in the explicit grid along this axis, used to map a negative Track index
// from the end (Track(-1) is the explicit-end line). A Track paired with a
// Span resolves immediately (the Track endpoint fixes the other via the
// span) — full CSS Grid semantics, a refinement of the spec's shorthand
// "two Line(n) values are definite" description.
func resolveAxisPlacement(line geom.Line[style.GridPlacement], explicitCount int) axisPlacement {
	toIdx := func(p style.GridPlacement) int {
		n := int(p.Track)
		if n > 0 {
			return n - 1
		}
		idx := explicitCount + 1 + n
		if idx < 0 {
			idx = 0
		}
		return idx
	}
	spanOf := func(p style.GridPlacement) int {
		n := int(p.SpanSize)
		if n < 1 {
			n = 1
		}
		return n
	}

	switch {
	case line.Start.IsDefinite() && line.End.IsDefinite():
		si, ei := toIdx(line.Start), toIdx(line.End)
		if ei <= si {
			ei = si + 1
		}
		return axisPlacement{definite: true, start: si, end: ei, span: ei - si}
	case line.Start.IsDefinite() && line.End.Kind == style.PlacementSpan:
		si := toIdx(line.Start)
		span := spanOf(line.End)
		return axisPlacement{definite: true, start: si, end: si + span, span: span}
	case line.End.IsDefinite() && line.Start.Kind == style.PlacementSpan:
		ei := toIdx(line.End)
		span := spanOf(line.Start)
		si := ei - span
		if si < 0 {
			si = 0
			ei = si + span
		}
		return axisPlacement{definite: true, start: si, end: ei, span: span}
	case line.Start.IsDefinite():
		si := toIdx(line.Start)
		return axisPlacement{definite: true, start: si, end: si + 1, span: 1}
	case line.End.IsDefinite():
		ei := toIdx(line.End)
		si := ei - 1
		if si < 0 {
			si, ei = 0, 1
		}
		return axisPlacement{definite: true, start: si, end: ei, span: 1}
	default:
		span := 1
		if line.Start.Kind == style.PlacementSpan {
			span = spanOf(line.Start)
		} else if line.End.Kind == style.PlacementSpan {
			span = spanOf(line.End)
		}
		return axisPlacement{span: span}
	}
}

// placedItem is one child's final (primary, secondary) track span after
// auto-placement, independent of row/column labeling.
type placedItem struct {
	rowStart, rowEnd int
	colStart, colEnd int
}

// occupancy tracks which (row, col) cells are filled during auto-placement
// (spec §4.6 step 2b-d): a sparse set keyed by cell, since the grid can
// grow in any direction as items place.
type occupancy map[[2]int]bool

func (o occupancy) fits(rowStart, rowEnd, colStart, colEnd int) bool {
	for r := rowStart; r < rowEnd; r++ {
		for c := colStart; c < colEnd; c++ {
			if o[[2]int{r, c}] {
				return false
			}
		}
	}
	return true
}

func (o occupancy) fill(rowStart, rowEnd, colStart, colEnd int) {
	for r := rowStart; r < rowEnd; r++ {
		for c := colStart; c < colEnd; c++ {
			o[[2]int{r, c}] = true
		}
	}
}

// placeItems implements spec §4.6 step 2: place every fully- or
// partially-definite item first, then auto-place the rest by sweeping the
// primary axis (row-major for GridFlowRow(Dense), column-major for
// GridFlowColumn(Dense)), packing into the first free span — restarting
// the sweep from the origin every item when dense packing is requested.
func placeItems(rowPlacements, colPlacements []axisPlacement, flow style.GridAutoFlow, explicitCols int) []placedItem {
	n := len(rowPlacements)
	items := make([]placedItem, n)
	occ := occupancy{}

	rowMajor := flow.IsRow()
	dense := flow.IsDense()

	// Pass 1: both axes definite. The rest are queued with items locked
	// on the primary axis ahead of fully auto-placed ones.
	pending := make([]int, 0, n)
	var rest []int
	for i := 0; i < n; i++ {
		rp, cp := rowPlacements[i], colPlacements[i]
		if rp.definite && cp.definite {
			items[i] = placedItem{rowStart: rp.start, rowEnd: rp.end, colStart: cp.start, colEnd: cp.end}
			occ.fill(rp.start, rp.end, cp.start, cp.end)
		} else if (rowMajor && rp.definite) || (!rowMajor && cp.definite) {
			pending = append(pending, i)
		} else {
			rest = append(rest, i)
		}
	}
	pending = append(pending, rest...)

	cursorPrimary, cursorSecondary := 0, 0
	secondaryBound := explicitCols
	if !rowMajor {
		secondaryBound = 0 // resolved below against row count as the grid grows; column-major bounds by explicit row count instead
	}

	for _, i := range pending {
		rp, cp := rowPlacements[i], colPlacements[i]

		var primaryDefinite bool
		var primaryStart, primaryEnd, secondarySpan int
		if rowMajor {
			primaryDefinite, primaryStart, primaryEnd = rp.definite, rp.start, rp.end
			secondarySpan = cp.span
		} else {
			primaryDefinite, primaryStart, primaryEnd = cp.definite, cp.start, cp.end
			secondarySpan = rp.span
		}

		if dense {
			cursorPrimary, cursorSecondary = 0, 0
		}

		if primaryDefinite {
			secondary := findFreeSecondary(occ, rowMajor, primaryStart, primaryEnd, secondarySpan, 0, secondaryBound)
			items[i] = assemble(rowMajor, primaryStart, primaryEnd, secondary, secondary+secondarySpan)
			occ.fill(items[i].rowStart, items[i].rowEnd, items[i].colStart, items[i].colEnd)
			continue
		}

		primarySpan := rp.span
		if !rowMajor {
			primarySpan = cp.span
		}
		p, s := cursorPrimary, cursorSecondary
		for {
			secStart := findFreeSecondary(occ, rowMajor, p, p+primarySpan, secondarySpan, s, secondaryBound)
			if secondaryBound <= 0 || secStart+secondarySpan <= secondaryBoundOrMax(secondaryBound) {
				items[i] = assemble(rowMajor, p, p+primarySpan, secStart, secStart+secondarySpan)
				occ.fill(items[i].rowStart, items[i].rowEnd, items[i].colStart, items[i].colEnd)
				cursorPrimary, cursorSecondary = p, secStart+secondarySpan
				break
			}
			p++
			s = 0
		}
	}

	return items
}

// secondaryBoundOrMax returns bound, or a very large sentinel when bound is
// non-positive (no explicit bound to wrap against).
func secondaryBoundOrMax(bound int) int {
	if bound <= 0 {
		return 1 << 30
	}
	return bound
}

// findFreeSecondary finds the smallest secondary-axis index >= from at
// which span cells starting at primaryStart..primaryEnd are all free,
// wrapping to a new primary line (handled by the caller) once bound is
// exceeded.
func findFreeSecondary(occ occupancy, rowMajor bool, primaryStart, primaryEnd, span, from, bound int) int {
	limit := secondaryBoundOrMax(bound)
	for s := from; s+span <= limit; s++ {
		var free bool
		if rowMajor {
			free = occ.fits(primaryStart, primaryEnd, s, s+span)
		} else {
			free = occ.fits(s, s+span, primaryStart, primaryEnd)
		}
		if free {
			return s
		}
	}
	return from
}

func assemble(rowMajor bool, primaryStart, primaryEnd, secondaryStart, secondaryEnd int) placedItem {
	if rowMajor {
		return placedItem{rowStart: primaryStart, rowEnd: primaryEnd, colStart: secondaryStart, colEnd: secondaryEnd}
	}
	return placedItem{rowStart: secondaryStart, rowEnd: secondaryEnd, colStart: primaryStart, colEnd: primaryEnd}
}

// gridExtent returns the number of tracks needed along an axis so every
// placed item's span is covered. The grid never grows before line 1 (see
// resolveAxisPlacement's negative-index clamping), so no implicit-before
// count is needed.
func gridExtent(items []placedItem, rowAxis bool, explicitCount int) int {
	max := explicitCount
	for _, it := range items {
		end := it.colEnd
		if rowAxis {
			end = it.rowEnd
		}
		if end > max {
			max = end
		}
	}
	return max
}
