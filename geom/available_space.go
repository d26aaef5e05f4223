package geom

// AvailableSpaceKind discriminates the AvailableSpace variant (spec §3).
type AvailableSpaceKind int

const (
	// AvailableSpaceDefinite carries a non-negative real (bytes follow in
	// AvailableSpace.Value).
	AvailableSpaceDefinite AvailableSpaceKind = iota
	// AvailableSpaceMinContent requests shrink-to-fit intrinsic sizing.
	AvailableSpaceMinContent
	// AvailableSpaceMaxContent requests stretch-to-fit intrinsic sizing.
	AvailableSpaceMaxContent
)

// AvailableSpace is the per-axis constraint variant that drives intrinsic
// sizing: a definite magnitude, or a request for min-content/max-content
// sizing.
type AvailableSpace struct {
	Kind  AvailableSpaceKind
	Value float64 // meaningful only when Kind == AvailableSpaceDefinite
}

// Definite builds a Definite(v) available space.
func Definite(v float64) AvailableSpace {
	return AvailableSpace{Kind: AvailableSpaceDefinite, Value: v}
}

// MinContent is the MinContent available space singleton value.
var MinContent = AvailableSpace{Kind: AvailableSpaceMinContent}

// MaxContent is the MaxContent available space singleton value.
var MaxContent = AvailableSpace{Kind: AvailableSpaceMaxContent}

// IsDefinite reports whether this is a Definite(v) variant.
func (a AvailableSpace) IsDefinite() bool { return a.Kind == AvailableSpaceDefinite }

// IntoOption returns a pointer to the value for Definite, nil otherwise —
// the "maybe" projection used when an algorithm only cares about a
// definite magnitude and treats Min/MaxContent as indefinite.
func (a AvailableSpace) IntoOption() *float64 {
	if a.Kind == AvailableSpaceDefinite {
		return Maybe(a.Value)
	}
	return nil
}

// MaybeSet returns a Definite(v) available space when known is non-nil,
// otherwise a unchanged. Used to tighten available space to a known
// dimension before recursing into an algorithm.
func (a AvailableSpace) MaybeSet(known *float64) AvailableSpace {
	if known != nil {
		return Definite(*known)
	}
	return a
}

// ApproxEqual reports whether a and b are the same variant, with Definite
// values compared within Epsilon — the equality the measurement cache uses
// to decide whether two available-space inputs are "the same shape".
func (a AvailableSpace) ApproxEqual(b AvailableSpace) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == AvailableSpaceDefinite {
		return ApproxEqual(a.Value, b.Value)
	}
	return true
}

// Sub returns Definite(max(0, a.Value-v)) for a Definite space, and passes
// MinContent/MaxContent through unchanged — subtracting padding/border/gap
// from the space available to content.
func (a AvailableSpace) Sub(v float64) AvailableSpace {
	if a.Kind != AvailableSpaceDefinite {
		return a
	}
	out := a.Value - v
	if out < 0 {
		out = 0
	}
	return Definite(out)
}

// AvailableSpaceSize is the per-axis AvailableSpace pair threaded through
// the dispatcher (spec §4.2 `available_space` input). It is a plain
// (non-generic) Size-shaped struct because AvailableSpace is not itself a
// Number: it is a tagged variant, not a scalar.
type AvailableSpaceSize struct {
	Width  AvailableSpace
	Height AvailableSpace
}

// Get returns Width when isRow is true, Height otherwise.
func (a AvailableSpaceSize) Get(isRow bool) AvailableSpace {
	if isRow {
		return a.Width
	}
	return a.Height
}

// Set returns a copy of a with the axis-selected component replaced.
func (a AvailableSpaceSize) Set(isRow bool, v AvailableSpace) AvailableSpaceSize {
	if isRow {
		a.Width = v
	} else {
		a.Height = v
	}
	return a
}

// ApproxEqual compares both axes with AvailableSpace.ApproxEqual.
func (a AvailableSpaceSize) ApproxEqual(b AvailableSpaceSize) bool {
	return a.Width.ApproxEqual(b.Width) && a.Height.ApproxEqual(b.Height)
}
