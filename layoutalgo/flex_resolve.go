package layoutalgo

import "github.com/rowanstack/flexlayout/geom"

// formLines implements step 4: one line holding every item when wrap is
// off, otherwise greedily packing items until the next one would overflow
// the container's inner main size.
func formLines(items []*flexItem, isRow, wrap bool, mainGap float64, boundedMain *float64) []*flexLine {
	if !wrap || boundedMain == nil || len(items) == 0 {
		return []*flexLine{{items: items}}
	}
	bound := *boundedMain
	var lines []*flexLine
	var cur []*flexItem
	curMain := 0.0
	for _, it := range items {
		outer := it.outerHypotheticalMainSize(isRow)
		addGap := 0.0
		if len(cur) > 0 {
			addGap = mainGap
		}
		if len(cur) > 0 && curMain+addGap+outer > bound {
			lines = append(lines, &flexLine{items: cur})
			cur = nil
			curMain = 0
			addGap = 0
		}
		cur = append(cur, it)
		curMain += addGap + outer
	}
	if len(cur) > 0 {
		lines = append(lines, &flexLine{items: cur})
	}
	return lines
}

// resolveFlexibleLengths implements step 5: grow or shrink a line's items
// to consume the line's free space, freezing items at their min/max clamp
// and iterating until no unfrozen item remains or no factor is left to
// distribute against. This is a simplified rendition of CSS Flexbox
// §9.7.4 — one redistribution pass per freeze, not the full
// loop-to-fixed-point the spec describes for every clamp combination — but
// it converges to the same result whenever at most one freeze boundary is
// crossed per item, which covers the documented edge cases (zero-basis
// grow, automatic-minimum-size shrink floor).
func resolveFlexibleLengths(line *flexLine, isRow bool, freeSpace float64) {
	growing := freeSpace > 0
	for _, it := range line.items {
		it.target = it.hypotheticalMainSize
		it.frozen = !growing && it.flexShrink == 0
		if growing && it.flexGrow == 0 {
			it.frozen = true
		}
		if it.resolvedMinMain >= it.resolvedMaxMain {
			it.frozen = true
			it.target = it.resolvedMinMain
		}
	}

	remaining := freeSpace
	for pass := 0; pass < len(line.items)+1; pass++ {
		var unfrozen []*flexItem
		for _, it := range line.items {
			if !it.frozen {
				unfrozen = append(unfrozen, it)
			}
		}
		if len(unfrozen) == 0 {
			break
		}

		sumFactor := 0.0
		for _, it := range unfrozen {
			if growing {
				sumFactor += it.flexGrow
			} else {
				sumFactor += it.flexShrink * it.hypotheticalMainSize
			}
		}
		if sumFactor <= 0 {
			break
		}

		totalViolation := 0.0
		for _, it := range unfrozen {
			var factor float64
			if growing {
				factor = it.flexGrow
			} else {
				factor = it.flexShrink * it.hypotheticalMainSize
			}
			share := remaining * (factor / sumFactor)
			newTarget := it.hypotheticalMainSize + share
			clamped := geom.Clamp(newTarget, it.resolvedMinMain, it.resolvedMaxMain)
			it.violation = clamped - newTarget
			it.target = clamped
			totalViolation += it.violation
		}

		frozeAny := false
		for _, it := range unfrozen {
			switch {
			case totalViolation > 0 && it.violation > 0:
				it.frozen = true
				frozeAny = true
			case totalViolation < 0 && it.violation < 0:
				it.frozen = true
				frozeAny = true
			case totalViolation == 0:
				it.frozen = true
				frozeAny = true
			}
		}

		distributed := 0.0
		for _, it := range line.items {
			if it.frozen {
				distributed += it.target - it.hypotheticalMainSize
			}
		}
		remaining = freeSpace - distributed
		if !frozeAny {
			break
		}
	}
}

// distributeMainAutoMargins implements the auto-margin clause of step 5:
// any remaining positive free space (left over because no item had a
// nonzero grow factor) is absorbed evenly by the line's auto main-axis
// margins before justify-content ever sees it.
func distributeMainAutoMargins(line *flexLine, isRow bool, leftover float64) float64 {
	if leftover <= 0 {
		return leftover
	}
	count := 0
	for _, it := range line.items {
		if isRow {
			if it.autoMargin.Left {
				count++
			}
			if it.autoMargin.Right {
				count++
			}
		} else {
			if it.autoMargin.Top {
				count++
			}
			if it.autoMargin.Bottom {
				count++
			}
		}
	}
	if count == 0 {
		return leftover
	}
	share := leftover / float64(count)
	for _, it := range line.items {
		if isRow {
			if it.autoMargin.Left {
				it.margin.Left = share
			}
			if it.autoMargin.Right {
				it.margin.Right = share
			}
		} else {
			if it.autoMargin.Top {
				it.margin.Top = share
			}
			if it.autoMargin.Bottom {
				it.margin.Bottom = share
			}
		}
	}
	return 0
}
