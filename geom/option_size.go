package geom

// OptionSize is a per-axis optional real (spec §4.2 `known_dimensions` and
// `parent_size`). Modeled as a plain struct of *float64 rather than
// Size[*float64] because *float64 is not a Number.
type OptionSize struct {
	Width  *float64
	Height *float64
}

// Get returns Width when isRow is true, Height otherwise.
func (o OptionSize) Get(isRow bool) *float64 {
	if isRow {
		return o.Width
	}
	return o.Height
}

// Set returns a copy of o with the axis-selected component replaced.
func (o OptionSize) Set(isRow bool, v *float64) OptionSize {
	if isRow {
		o.Width = v
	} else {
		o.Height = v
	}
	return o
}

// Unwrap converts a fully-known OptionSize into a concrete Size[float64],
// substituting 0 for any still-nil axis.
func (o OptionSize) Unwrap() Size[float64] {
	return Size[float64]{Width: OrZero(o.Width), Height: OrZero(o.Height)}
}

// FromSize lifts a concrete Size[float64] into a fully-known OptionSize.
func FromSize(s Size[float64]) OptionSize {
	return OptionSize{Width: Maybe(s.Width), Height: Maybe(s.Height)}
}

// ApproxEqual compares both axes with ApproxEqualOpt.
func (o OptionSize) ApproxEqual(other OptionSize) bool {
	return ApproxEqualOpt(o.Width, other.Width) && ApproxEqualOpt(o.Height, other.Height)
}
