package style

// lengthKind discriminates the LengthPercentage/LengthPercentageAuto union.
type lengthKind int

const (
	kindLength lengthKind = iota
	kindPercent
	kindAuto // only valid on LengthPercentageAuto
)

// LengthPercentage is a `length | percent` value: padding, border, and gap
// edges (spec §3) are always non-negative instances of this type.
type LengthPercentage struct {
	kind  lengthKind
	value float64
}

// Length builds a fixed-pixel LengthPercentage.
func Length(px float64) LengthPercentage { return LengthPercentage{kind: kindLength, value: px} }

// Percent builds a percentage LengthPercentage; frac is a fraction (0.5 = 50%).
func Percent(frac float64) LengthPercentage { return LengthPercentage{kind: kindPercent, value: frac} }

// Resolve returns the concrete value given the percentage basis. A nil
// basis with a Percent value is indefinite (spec §7): resolution returns
// nil rather than guessing zero.
func (l LengthPercentage) Resolve(basis *float64) *float64 {
	switch l.kind {
	case kindLength:
		v := l.value
		return &v
	case kindPercent:
		if basis == nil {
			return nil
		}
		v := l.value * (*basis)
		return &v
	}
	return nil
}

// ResolveOrZero resolves against basis, treating indefinite as zero.
func (l LengthPercentage) ResolveOrZero(basis *float64) float64 {
	if v := l.Resolve(basis); v != nil {
		return *v
	}
	return 0
}

// LengthPercentageAuto additionally allows Auto: size, min/max-size,
// margin, and inset edges are all instances of this type.
type LengthPercentageAuto struct {
	kind  lengthKind
	value float64
}

// LengthAuto builds a fixed-pixel LengthPercentageAuto.
func LengthAuto(px float64) LengthPercentageAuto {
	return LengthPercentageAuto{kind: kindLength, value: px}
}

// PercentAuto builds a percentage LengthPercentageAuto.
func PercentAuto(frac float64) LengthPercentageAuto {
	return LengthPercentageAuto{kind: kindPercent, value: frac}
}

// Auto is the `auto` LengthPercentageAuto value.
var Auto = LengthPercentageAuto{kind: kindAuto}

// IsAuto reports whether this value is the `auto` keyword.
func (l LengthPercentageAuto) IsAuto() bool { return l.kind == kindAuto }

// Resolve returns the concrete value given the percentage basis, or nil
// for Auto or indefinite-percentage.
func (l LengthPercentageAuto) Resolve(basis *float64) *float64 {
	switch l.kind {
	case kindLength:
		v := l.value
		return &v
	case kindPercent:
		if basis == nil {
			return nil
		}
		v := l.value * (*basis)
		return &v
	}
	return nil
}

// ResolveOrZero resolves against basis, treating Auto/indefinite as zero
// (the policy used for margins when summing outer sizes before an auto
// margin redistribution pass runs).
func (l LengthPercentageAuto) ResolveOrZero(basis *float64) float64 {
	if v := l.Resolve(basis); v != nil {
		return *v
	}
	return 0
}

// AsLengthPercentage drops the Auto case, mapping it to LengthPercentage's
// zero value — used where an API layer (e.g. padding/border) never allows
// Auto in the first place.
func (l LengthPercentageAuto) AsLengthPercentage() LengthPercentage {
	if l.kind == kindAuto {
		return LengthPercentage{}
	}
	return LengthPercentage{kind: l.kind, value: l.value}
}

// FromLengthPercentage lifts a LengthPercentage into LengthPercentageAuto.
func FromLengthPercentage(lp LengthPercentage) LengthPercentageAuto {
	return LengthPercentageAuto{kind: lp.kind, value: lp.value}
}

// Dimension is the `length | percent | auto` type used for size/min-size/
// max-size. It is an alias of LengthPercentageAuto: the two CSS value
// domains are identical, only the property semantics differ.
type Dimension = LengthPercentageAuto
