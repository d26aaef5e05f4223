package geom

import "golang.org/x/image/math/fixed"

// RoundCoord snaps a coordinate to the nearest integer pixel via 1/64px
// fixed-point space, the same Fix/round/Unfix path the teacher library
// uses to stabilize vector output and eliminate subpixel jitter — applied
// here to layout boxes instead of glyph outlines.
func RoundCoord(v float64) float64 {
	f := fixed.Int26_6(v * 64)
	// Round to nearest whole pixel: add half a pixel's worth of 1/64 units
	// before truncating the fractional part.
	if f >= 0 {
		f += 32
	} else {
		f -= 32
	}
	whole := f / 64
	return float64(whole)
}
