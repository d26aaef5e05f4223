package geom

// Point is a 2D coordinate pair. It doubles as a generic axis-indexed
// value whenever a caller needs "the X-ish thing" without branching on
// row/column by hand — see Get/Set.
type Point[T Number] struct {
	X T
	Y T
}

// NewPoint builds a Point from its two components.
func NewPoint[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Get returns X when isRow is true (main axis of a row container),
// Y otherwise. Mirrors the main/cross axis symmetry the flex and grid
// algorithms rely on throughout.
func (p Point[T]) Get(isRow bool) T {
	if isRow {
		return p.X
	}
	return p.Y
}

// Set returns a copy of p with the axis-selected component replaced.
func (p Point[T]) Set(isRow bool, v T) Point[T] {
	if isRow {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}

// Map applies f to both components.
func (p Point[T]) Map(f func(T) T) Point[T] {
	return Point[T]{X: f(p.X), Y: f(p.Y)}
}

// Add returns the component-wise sum of p and o.
func (p Point[T]) Add(o Point[T]) Point[T] {
	return Point[T]{X: p.X + o.X, Y: p.Y + o.Y}
}
