// Package geom provides the generic geometry primitives the layout engine
// is built on: points, sizes, rectangles-of-edges, and line pairs, plus the
// saturating/optional arithmetic used to resolve percentages against a
// not-yet-known container.
package geom

import "golang.org/x/exp/constraints"

// Number is the numeric bound shared by every generic geometry primitive.
// Layout math is done in float64 (lengths, percentages), including the
// rounding pass; the signed-integer bound allows integer instances such
// as grid track indices.
type Number interface {
	constraints.Signed | constraints.Float
}
