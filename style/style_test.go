package style

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanstack/flexlayout/geom"
)

func TestDefaultStyle(t *testing.T) {
	s := Default()
	require.Equal(t, DisplayBlock, s.Display)
	require.Equal(t, PositionRelative, s.Position)
	require.True(t, s.Size.Width.IsAuto())
	require.Equal(t, 1.0, s.FlexShrink, "CSS defaults flex-shrink to 1, not the float64 zero value")
	require.Equal(t, 0.0, s.FlexGrow)
}

func TestValidateRejectsOutOfDomainValues(t *testing.T) {
	s := Default()
	s.FlexGrow = -1
	require.ErrorIs(t, s.Validate(), ErrInvalidStyle)

	s = Default()
	s.FlexShrink = -1
	require.ErrorIs(t, s.Validate(), ErrInvalidStyle)

	s = Default()
	ratio := -1.0
	s.AspectRatio = &ratio
	require.ErrorIs(t, s.Validate(), ErrInvalidStyle)

	s = Default()
	s.ScrollbarWidth = -1
	require.ErrorIs(t, s.Validate(), ErrInvalidStyle)

	require.NoError(t, Default().Validate())
}

func TestLengthPercentageResolve(t *testing.T) {
	require.Equal(t, 10.0, *Length(10).Resolve(nil))
	require.Nil(t, Percent(0.5).Resolve(nil), "a percentage against an indefinite basis is indefinite")
	require.Equal(t, 50.0, *Percent(0.5).Resolve(geom.Maybe(100)))
	require.Equal(t, 0.0, Percent(0.5).ResolveOrZero(nil))
}

func TestLengthPercentageAutoResolve(t *testing.T) {
	require.True(t, Auto.IsAuto())
	require.Nil(t, Auto.Resolve(geom.Maybe(100)))
	require.Equal(t, 0.0, Auto.ResolveOrZero(geom.Maybe(100)))
	require.Equal(t, 25.0, *PercentAuto(0.25).Resolve(geom.Maybe(100)))
}

func TestAlignSelfAndJustifySelfFallback(t *testing.T) {
	parent := Default()
	parent.AlignItems = Ptr(AlignCenter)
	require.Equal(t, AlignCenter, AlignSelfOrItems(nil, parent))
	require.Equal(t, AlignEnd, AlignSelfOrItems(Ptr(AlignEnd), parent))

	require.Equal(t, AlignStretch, JustifySelfOrItems(nil, Default()), "justify-items defaults to Stretch when unset")
}

func TestGapAxisSelection(t *testing.T) {
	s := Default()
	s.Gap = geom.Size[LengthPercentage]{Width: Length(10), Height: Length(20)}
	require.Equal(t, 10.0, s.ColumnGap(nil))
	require.Equal(t, 20.0, s.RowGap(nil))
	require.Equal(t, 10.0, s.MainGap(true, nil), "a row container's main gap is the column gap")
	require.Equal(t, 20.0, s.CrossGap(true, nil), "a row container's cross gap is the row gap")
}

func TestFlexDirectionHelpers(t *testing.T) {
	require.True(t, Row.IsRow())
	require.True(t, RowReverse.IsRow())
	require.False(t, Column.IsRow())
	require.True(t, RowReverse.IsReverse())
	require.True(t, ColumnReverse.IsReverse())
	require.False(t, Row.IsReverse())
}

func TestGridAutoFlowHelpers(t *testing.T) {
	require.True(t, GridFlowRow.IsRow())
	require.True(t, GridFlowRowDense.IsRow())
	require.False(t, GridFlowColumn.IsRow())
	require.True(t, GridFlowRowDense.IsDense())
	require.True(t, GridFlowColumnDense.IsDense())
	require.False(t, GridFlowRow.IsDense())
}

func TestGridPlacementConstructors(t *testing.T) {
	require.True(t, TrackPlacement(2).IsDefinite())
	require.False(t, SpanPlacement(3).IsDefinite())
	require.False(t, AutoPlacement.IsDefinite())
	require.Panics(t, func() { TrackPlacement(0) }, "grid line index zero is forbidden")
}

func TestTrackSizingConstructors(t *testing.T) {
	fr := FrTrack(2)
	require.True(t, fr.Max.IsFlexible())
	require.Equal(t, 2.0, fr.Max.Fr)

	auto := AutoTrack()
	require.True(t, auto.Max.HasIntrinsicMax())

	fixed := FixedTrack(50)
	require.False(t, fixed.Max.IsFlexible())
	require.False(t, fixed.Max.HasIntrinsicMax())
}

func TestTrackRepeatHelpers(t *testing.T) {
	require.False(t, Single(AutoTrack()).IsAutoRepeat())
	require.False(t, Repeat(3, AutoTrack()).IsAutoRepeat())
	require.True(t, RepeatAutoFillTracks(AutoTrack()).IsAutoRepeat())
	require.True(t, RepeatAutoFitTracks(AutoTrack()).IsAutoRepeat())
}
