package style

// GridPlacementKind discriminates a single grid-line placement.
type GridPlacementKind int

const (
	// PlacementAuto lets the placement algorithm choose (spec §4.6 step 2).
	PlacementAuto GridPlacementKind = iota
	// PlacementTrack pins to an explicit, origin-one, signed line index;
	// zero is forbidden by the CSS grid line-numbering rule.
	PlacementTrack
	// PlacementSpan requests a span of N tracks (N >= 1) from whichever
	// end of the pair is definite.
	PlacementSpan
)

// GridPlacement is one endpoint of grid_row/grid_column (spec §3: "per-child
// grid_row, grid_column each a Line<Placement> where Placement ∈ {Auto,
// Track(i16 with zero forbidden), Span(u16 ≥ 1)}").
type GridPlacement struct {
	Kind     GridPlacementKind
	Track    int16  // meaningful only for PlacementTrack; never zero
	SpanSize uint16 // meaningful only for PlacementSpan; always >= 1
}

// AutoPlacement is the GridPlacement{Auto} value.
var AutoPlacement = GridPlacement{Kind: PlacementAuto}

// TrackPlacement places at the given 1-based (or negative, from-the-end)
// explicit line index. Track must not be zero.
func TrackPlacement(line int16) GridPlacement {
	if line == 0 {
		panic("style: grid line index must not be zero")
	}
	return GridPlacement{Kind: PlacementTrack, Track: line}
}

// SpanPlacement requests a span of n tracks. n must be >= 1.
func SpanPlacement(n uint16) GridPlacement {
	if n < 1 {
		n = 1
	}
	return GridPlacement{Kind: PlacementSpan, SpanSize: n}
}

// IsDefinite reports whether this single endpoint pins to an explicit
// track (as opposed to Auto or Span, which need the paired endpoint or
// the placement algorithm to resolve).
func (p GridPlacement) IsDefinite() bool { return p.Kind == PlacementTrack }
