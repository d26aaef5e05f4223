package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name     string
		v, lo, hi float64
		want     float64
	}{
		{"within range", 5, 0, 10, 5},
		{"below lo", -5, 0, 10, 0},
		{"above hi", 15, 0, 10, 10},
		{"lo greater than hi returns lo", 5, 10, 0, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Clamp(tc.v, tc.lo, tc.hi))
		})
	}
}

func TestMaybeArithmetic(t *testing.T) {
	require.Nil(t, MaybeAdd(nil, Maybe(1)))
	require.Equal(t, 3.0, *MaybeAdd(Maybe(1), Maybe(2)))
	require.Nil(t, MaybeSub(Maybe(1), nil))
	require.Equal(t, 5.0, *MaybeMax(Maybe(5), Maybe(2)))
	require.Equal(t, 2.0, *MaybeMin(Maybe(5), Maybe(2)))
	require.Equal(t, 0.0, OrZero(nil))
}

func TestMaybeClampMinWinsOverMax(t *testing.T) {
	// Invariant: when min > max, min wins.
	got := MaybeClamp(Maybe(5), Maybe(10), Maybe(2))
	require.Equal(t, 10.0, *got)
}

func TestApproxEqual(t *testing.T) {
	require.True(t, ApproxEqual(1.0, 1.0+Epsilon/2))
	require.False(t, ApproxEqual(1.0, 1.1))
	require.True(t, ApproxEqualOpt(nil, nil))
	require.False(t, ApproxEqualOpt(nil, Maybe(1)))
}

func TestRectSums(t *testing.T) {
	r := Rect[float64]{Top: 1, Right: 2, Bottom: 3, Left: 4}
	require.Equal(t, 6.0, RectHorizontalSum(r))
	require.Equal(t, 4.0, RectVerticalSum(r))
	require.Equal(t, 6.0, RectMainAxisSum(r, true))
	require.Equal(t, 4.0, RectMainAxisSum(r, false))

	line := r.Line(true)
	require.Equal(t, Line[float64]{Start: 4, End: 2}, line)
}

func TestLineSpan(t *testing.T) {
	l := NewLine(2, 7)
	require.Equal(t, 5, LineSpan(l))
}

func TestSizeGetSet(t *testing.T) {
	s := Size[float64]{Width: 10, Height: 20}
	require.Equal(t, 10.0, s.Get(true))
	require.Equal(t, 20.0, s.Get(false))
	s2 := s.Set(true, 99)
	require.Equal(t, 99.0, s2.Width)
	require.Equal(t, 10.0, s.Width, "Set must not mutate the receiver")
}

func TestOptionSizeUnwrapAndFromSize(t *testing.T) {
	o := FromSize(Size[float64]{Width: 3, Height: 4})
	require.Equal(t, 3.0, *o.Width)
	unwrapped := OptionSize{Width: Maybe(1)}.Unwrap()
	require.Equal(t, Size[float64]{Width: 1, Height: 0}, unwrapped)
}

func TestAvailableSpaceSub(t *testing.T) {
	a := Definite(100)
	require.Equal(t, Definite(90), a.Sub(10))
	require.Equal(t, Definite(0), a.Sub(1000), "Sub must not go negative")
	require.Equal(t, MinContent, MinContent.Sub(10), "non-definite passes through unchanged")
}

func TestAvailableSpaceApproxEqual(t *testing.T) {
	require.True(t, Definite(5).ApproxEqual(Definite(5+Epsilon/2)))
	require.False(t, Definite(5).ApproxEqual(MaxContent))
	require.True(t, MinContent.ApproxEqual(MinContent))
}

func TestRoundCoord(t *testing.T) {
	require.Equal(t, 3.0, RoundCoord(2.5))
	require.Equal(t, 2.0, RoundCoord(2.4))
	require.Equal(t, -2.0, RoundCoord(-2.4))
}
