package style

// MinTrackSizingKind discriminates a track's minimum sizing function.
type MinTrackSizingKind int

const (
	MinTrackFixed MinTrackSizingKind = iota
	MinTrackAuto
	MinTrackMinContent
	MinTrackMaxContent
)

// MinTrackSizingFunction is the `min` half of a `minmax(min, max)` track
// sizing function (spec §3). Fixed carries a LengthPercentage.
type MinTrackSizingFunction struct {
	Kind  MinTrackSizingKind
	Fixed LengthPercentage
}

// MaxTrackSizingKind discriminates a track's maximum sizing function.
type MaxTrackSizingKind int

const (
	MaxTrackFixed MaxTrackSizingKind = iota
	MaxTrackAuto
	MaxTrackMinContent
	MaxTrackMaxContent
	MaxTrackFitContent
	MaxTrackFr
)

// MaxTrackSizingFunction is the `max` half of a `minmax(min, max)` track
// sizing function. Fixed/FitContent carry a LengthPercentage; Fr carries
// the flex factor.
type MaxTrackSizingFunction struct {
	Kind  MaxTrackSizingKind
	Fixed LengthPercentage // Kind == MaxTrackFixed or MaxTrackFitContent
	Fr    float64          // Kind == MaxTrackFr; non-negative
}

// IsFlexible reports whether this is an `fr` track.
func (m MaxTrackSizingFunction) IsFlexible() bool { return m.Kind == MaxTrackFr }

// HasIntrinsicMax reports whether the growth limit is intrinsic (i.e.
// content-dependent rather than a fixed length or infinite fr).
func (m MaxTrackSizingFunction) HasIntrinsicMax() bool {
	return m.Kind == MaxTrackAuto || m.Kind == MaxTrackMinContent || m.Kind == MaxTrackMaxContent || m.Kind == MaxTrackFitContent
}

// TrackSizingFunction pairs a track's min and max sizing functions — a
// full `minmax(min, max)` (or the shorthand a single keyword/length
// expands to: e.g. `1fr` is min=Auto, max=Fr(1)).
type TrackSizingFunction struct {
	Min MinTrackSizingFunction
	Max MaxTrackSizingFunction
}

// FixedTrack builds a track pinned to an exact length.
func FixedTrack(px float64) TrackSizingFunction {
	lp := Length(px)
	return TrackSizingFunction{
		Min: MinTrackSizingFunction{Kind: MinTrackFixed, Fixed: lp},
		Max: MaxTrackSizingFunction{Kind: MaxTrackFixed, Fixed: lp},
	}
}

// PercentTrack builds a track pinned to a percentage of the container.
func PercentTrack(frac float64) TrackSizingFunction {
	lp := Percent(frac)
	return TrackSizingFunction{
		Min: MinTrackSizingFunction{Kind: MinTrackFixed, Fixed: lp},
		Max: MaxTrackSizingFunction{Kind: MaxTrackFixed, Fixed: lp},
	}
}

// FrTrack builds a flexible `fr` track: min=auto, max=fr(factor).
func FrTrack(factor float64) TrackSizingFunction {
	return TrackSizingFunction{
		Min: MinTrackSizingFunction{Kind: MinTrackAuto},
		Max: MaxTrackSizingFunction{Kind: MaxTrackFr, Fr: factor},
	}
}

// AutoTrack builds an `auto` track: min=auto, max=auto.
func AutoTrack() TrackSizingFunction {
	return TrackSizingFunction{
		Min: MinTrackSizingFunction{Kind: MinTrackAuto},
		Max: MaxTrackSizingFunction{Kind: MaxTrackAuto},
	}
}

// MinContentTrack builds a `min-content` track.
func MinContentTrack() TrackSizingFunction {
	return TrackSizingFunction{
		Min: MinTrackSizingFunction{Kind: MinTrackMinContent},
		Max: MaxTrackSizingFunction{Kind: MaxTrackMinContent},
	}
}

// MaxContentTrack builds a `max-content` track.
func MaxContentTrack() TrackSizingFunction {
	return TrackSizingFunction{
		Min: MinTrackSizingFunction{Kind: MinTrackMaxContent},
		Max: MaxTrackSizingFunction{Kind: MaxTrackMaxContent},
	}
}

// MinMaxTrack builds an explicit minmax(min, max) track.
func MinMaxTrack(min MinTrackSizingFunction, max MaxTrackSizingFunction) TrackSizingFunction {
	return TrackSizingFunction{Min: min, Max: max}
}

// FitContentTrack builds a `fit-content(limit)` track: min=auto,
// max=fit-content(limit).
func FitContentTrack(limit LengthPercentage) TrackSizingFunction {
	return TrackSizingFunction{
		Min: MinTrackSizingFunction{Kind: MinTrackAuto},
		Max: MaxTrackSizingFunction{Kind: MaxTrackFitContent, Fixed: limit},
	}
}

// RepeatKind discriminates a repeat() wrapper's count.
type RepeatKind int

const (
	// RepeatCount repeats the track list a fixed, literal number of times.
	RepeatCount RepeatKind = iota
	// RepeatAutoFill fills as many tracks as fit the container's
	// available space (spec §4.6 step 1).
	RepeatAutoFill
	// RepeatAutoFit is expanded exactly like AutoFill; empty tracks are
	// not collapsed after placement.
	RepeatAutoFit
)

// TrackRepeat is a (possibly repeat()-wrapped) run of track sizing
// functions, the unit grid_template_rows/grid_template_columns are built
// from.
type TrackRepeat struct {
	Kind   RepeatKind
	Count  uint16 // meaningful only for RepeatKind == RepeatCount
	Tracks []TrackSizingFunction
}

// Single wraps a single non-repeated track as a one-element TrackRepeat —
// the common case a bare track keyword in a template list expands to.
func Single(t TrackSizingFunction) TrackRepeat {
	return TrackRepeat{Kind: RepeatCount, Count: 1, Tracks: []TrackSizingFunction{t}}
}

// Repeat builds a literal repeat(n, tracks...) wrapper.
func Repeat(n uint16, tracks ...TrackSizingFunction) TrackRepeat {
	return TrackRepeat{Kind: RepeatCount, Count: n, Tracks: tracks}
}

// RepeatAutoFillTracks builds a repeat(auto-fill, tracks...) wrapper.
func RepeatAutoFillTracks(tracks ...TrackSizingFunction) TrackRepeat {
	return TrackRepeat{Kind: RepeatAutoFill, Tracks: tracks}
}

// RepeatAutoFitTracks builds a repeat(auto-fit, tracks...) wrapper.
func RepeatAutoFitTracks(tracks ...TrackSizingFunction) TrackRepeat {
	return TrackRepeat{Kind: RepeatAutoFit, Tracks: tracks}
}

// IsAutoRepeat reports whether this wrapper's repetition count is computed
// from the available space when the template is flattened, before
// placement (auto-fill/auto-fit), as opposed to a literal count.
func (t TrackRepeat) IsAutoRepeat() bool {
	return t.Kind == RepeatAutoFill || t.Kind == RepeatAutoFit
}
