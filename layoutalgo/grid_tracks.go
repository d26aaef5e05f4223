package layoutalgo

import (
	"math"

	"github.com/rowanstack/flexlayout/style"
)

// gridTrack is one row or column's resolved sizing function plus the
// accumulating state of the track sizing algorithm (spec §4.6 step 4):
// base size and growth limit.
type gridTrack struct {
	sizing       style.TrackSizingFunction
	base         float64
	growthLimit  float64
	isImplicit   bool
}

// flattenTemplate implements spec §4.6 step 1: replicate repeat(n, ...)
// literally, and expand repeat(auto-fill | auto-fit, ...) to as many
// repetitions as fit axisAvailable (falling back to one repetition when
// the axis is indefinite, since there is then nothing to fit against).
func flattenTemplate(repeats []style.TrackRepeat, axisAvailable *float64, gap float64) []style.TrackSizingFunction {
	var out []style.TrackSizingFunction
	for _, r := range repeats {
		switch {
		case !r.IsAutoRepeat():
			n := int(r.Count)
			if n < 1 {
				n = 1
			}
			for i := 0; i < n; i++ {
				out = append(out, r.Tracks...)
			}
		default:
			reps := autoRepeatCount(r.Tracks, axisAvailable, gap)
			for i := 0; i < reps; i++ {
				out = append(out, r.Tracks...)
			}
		}
	}
	return out
}

// autoRepeatCount estimates how many repetitions of an auto-fill/auto-fit
// group fit the available axis space, using each track's fixed/percentage
// size where resolvable and treating intrinsic tracks as zero-width for
// this estimate (a standard simplification: intrinsic-sized auto-repeat
// tracks cannot know their size before content is known).
func autoRepeatCount(tracks []style.TrackSizingFunction, axisAvailable *float64, gap float64) int {
	if axisAvailable == nil {
		return 1
	}
	groupSize := 0.0
	for _, t := range tracks {
		groupSize += gap
		if t.Max.Kind == style.MaxTrackFixed {
			if v := t.Max.Fixed.Resolve(axisAvailable); v != nil {
				groupSize += *v
				continue
			}
		}
	}
	groupSize -= gap // no trailing gap within one group
	if groupSize <= 0 {
		return 1
	}
	reps := int(math.Floor((*axisAvailable + gap) / (groupSize + gap)))
	if reps < 1 {
		reps = 1
	}
	return reps
}

// buildTracks pads an explicit track list with cycled grid_auto_*
// tracks up to count tracks total (spec §4.6 step 3).
func buildTracks(explicit []style.TrackSizingFunction, auto []style.TrackSizingFunction, count int) []gridTrack {
	if len(auto) == 0 {
		auto = []style.TrackSizingFunction{style.AutoTrack()}
	}
	tracks := make([]gridTrack, count)
	for i := 0; i < count; i++ {
		if i < len(explicit) {
			tracks[i] = gridTrack{sizing: explicit[i]}
		} else {
			tracks[i] = gridTrack{sizing: auto[(i-len(explicit))%len(auto)], isImplicit: true}
		}
	}
	return tracks
}

// resolveTrackSizes implements the track sizing algorithm of spec §4.6
// step 4: initialize base/growth-limit from fixed or content-derived
// sizes, then expand `fr` tracks into the remaining free space.
// contentSize(trackIndex) returns the max min-content contribution of any
// span-1 item placed in that track — the simplified intrinsic-sizing input
// this engine uses instead of the full per-span-count resolution pass CSS
// Grid §11.5 describes.
func resolveTrackSizes(tracks []gridTrack, axisKnown *float64, gap float64, contentSize func(int) float64) {
	for i := range tracks {
		t := &tracks[i]
		t.base = trackBase(t.sizing.Min, axisKnown, func() float64 { return contentSize(i) })
		t.growthLimit = trackGrowthLimit(t.sizing.Max, axisKnown, func() float64 { return contentSize(i) })
		if t.growthLimit < t.base {
			t.growthLimit = t.base
		}
	}

	if axisKnown == nil {
		return
	}
	used := gap * float64(maxInt(len(tracks)-1, 0))
	for _, t := range tracks {
		used += t.base
	}
	free := *axisKnown - used
	if free <= 0 {
		return
	}

	totalFr := 0.0
	for _, t := range tracks {
		if t.sizing.Max.IsFlexible() {
			totalFr += t.sizing.Max.Fr
		}
	}
	if totalFr <= 0 {
		return
	}
	share := free / totalFr
	for i := range tracks {
		t := &tracks[i]
		if !t.sizing.Max.IsFlexible() {
			continue
		}
		grown := t.sizing.Max.Fr * share
		if grown > t.base {
			t.base = grown
		}
	}
}

func trackBase(min style.MinTrackSizingFunction, axisKnown *float64, content func() float64) float64 {
	switch min.Kind {
	case style.MinTrackFixed:
		return min.Fixed.ResolveOrZero(axisKnown)
	case style.MinTrackMinContent, style.MinTrackMaxContent, style.MinTrackAuto:
		return content()
	}
	return 0
}

func trackGrowthLimit(max style.MaxTrackSizingFunction, axisKnown *float64, content func() float64) float64 {
	switch max.Kind {
	case style.MaxTrackFixed:
		return max.Fixed.ResolveOrZero(axisKnown)
	case style.MaxTrackFitContent:
		limit := max.Fixed.ResolveOrZero(axisKnown)
		c := content()
		if c < limit {
			return c
		}
		return limit
	case style.MaxTrackMinContent, style.MaxTrackMaxContent, style.MaxTrackAuto:
		return content()
	case style.MaxTrackFr:
		return math.Inf(1)
	}
	return math.Inf(1)
}

// tracksSpan returns the sum of tracks[start:end]'s base sizes plus the
// gaps between them — the size of a (possibly multi-track) grid area
// along one axis.
func tracksSpan(tracks []gridTrack, start, end int, gap float64) float64 {
	if start < 0 {
		start = 0
	}
	if end > len(tracks) {
		end = len(tracks)
	}
	total := 0.0
	for i := start; i < end; i++ {
		if i > start {
			total += gap
		}
		total += tracks[i].base
	}
	return total
}

// trackOffset returns the content-box-relative start coordinate of
// tracks[idx] (the sum of every prior track's base size plus gaps).
func trackOffset(tracks []gridTrack, idx int, gap float64) float64 {
	total := 0.0
	for i := 0; i < idx && i < len(tracks); i++ {
		total += tracks[i].base + gap
	}
	return total
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
