package geom

// Rect holds a value per edge of a box: top, right, bottom, left. It is the
// generic shape behind margin, padding, border and inset — never an x/y
// origin rectangle (see the dispatcher's Location/Size for that). Rect is
// generic over any, not Number: style.Style stores Rect[LengthPercentage]
// and Rect[LengthPercentageAuto], neither of which is itself numeric.
// Operations that need edge addition (HorizontalSum and friends) are free
// functions constrained to Number instead of methods, since a method can't
// narrow its receiver's type parameter.
type Rect[T any] struct {
	Top    T
	Right  T
	Bottom T
	Left   T
}

// UniformRect builds a Rect with the same value on all four edges.
func UniformRect[T any](v T) Rect[T] {
	return Rect[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// RectHorizontalSum returns Left + Right.
func RectHorizontalSum[T Number](r Rect[T]) T { return r.Left + r.Right }

// RectVerticalSum returns Top + Bottom.
func RectVerticalSum[T Number](r Rect[T]) T { return r.Top + r.Bottom }

// RectMainAxisSum returns the edge sum along the main axis: horizontal for a
// row container, vertical for a column container.
func RectMainAxisSum[T Number](r Rect[T], isRow bool) T {
	if isRow {
		return RectHorizontalSum(r)
	}
	return RectVerticalSum(r)
}

// RectCrossAxisSum returns the edge sum along the cross axis.
func RectCrossAxisSum[T Number](r Rect[T], isRow bool) T {
	if isRow {
		return RectVerticalSum(r)
	}
	return RectHorizontalSum(r)
}

// RectSumAxes returns (horizontal, vertical) edge sums as a Size.
func RectSumAxes[T Number](r Rect[T]) Size[T] {
	return Size[T]{Width: RectHorizontalSum(r), Height: RectVerticalSum(r)}
}

// Map applies f to all four edges.
func (r Rect[T]) Map(f func(T) T) Rect[T] {
	return Rect[T]{Top: f(r.Top), Right: f(r.Right), Bottom: f(r.Bottom), Left: f(r.Left)}
}

// Line returns the (start, end) pair for the given axis: (left, right) for
// row, (top, bottom) for column — the edges a Line[T] of inset or margin
// maps onto once an axis is chosen.
func (r Rect[T]) Line(isRow bool) Line[T] {
	if isRow {
		return Line[T]{Start: r.Left, End: r.Right}
	}
	return Line[T]{Start: r.Top, End: r.Bottom}
}
