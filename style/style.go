package style

import (
	"errors"
	"fmt"
	"math"

	"github.com/rowanstack/flexlayout/geom"
)

// Style is the full declarative input for one tree node (spec §3). The
// same record carries both "container" properties (consumed when this
// node is the parent being laid out) and "item" properties (consumed when
// this node is a child of a flex/grid container) — a node that is both a
// child and a parent uses both sides, mirroring the teacher's
// ContainerStyle/ItemStyle split folded into one record.
type Style struct {
	Display  Display
	Position Position
	Inset    geom.Rect[LengthPercentageAuto]

	Size    geom.Size[Dimension]
	MinSize geom.Size[Dimension]
	MaxSize geom.Size[Dimension]

	AspectRatio *float64 // optional positive real (width/height)

	Margin  geom.Rect[LengthPercentageAuto]
	Padding geom.Rect[LengthPercentage]
	Border  geom.Rect[LengthPercentage]

	OverflowX      Overflow
	OverflowY      Overflow
	ScrollbarWidth float64 // non-negative

	AlignItems    *AlignValue
	AlignSelf     *AlignValue
	AlignContent  *AlignValue
	JustifyItems  *AlignValue
	JustifySelf   *AlignValue
	JustifyContent *AlignValue

	Gap geom.Size[LengthPercentage] // Width = column gap, Height = row gap

	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexGrow      float64 // >= 0
	FlexShrink    float64 // >= 0
	FlexBasis     Dimension

	GridTemplateRows    []TrackRepeat
	GridTemplateColumns []TrackRepeat
	GridAutoRows        []TrackSizingFunction
	GridAutoColumns     []TrackSizingFunction
	GridAutoFlow        GridAutoFlow
	GridRow             geom.Line[GridPlacement]
	GridColumn          geom.Line[GridPlacement]
}

// Default returns the zero-configuration Style: Display Block, Position
// Relative, all sizes Auto, margin/padding/border zero, flex-shrink
// defaulting to 1 as CSS specifies (the zero value of a float64 would
// otherwise read as "does not shrink").
func Default() Style {
	return Style{
		Display:       DisplayBlock,
		Position:      PositionRelative,
		Inset:         geom.UniformRect(Auto),
		Size:          geom.Size[Dimension]{Width: Auto, Height: Auto},
		MinSize:       geom.Size[Dimension]{Width: Auto, Height: Auto},
		MaxSize:       geom.Size[Dimension]{Width: Auto, Height: Auto},
		Margin:        geom.UniformRect(LengthAuto(0)),
		Padding:       geom.UniformRect(Length(0)),
		Border:        geom.UniformRect(Length(0)),
		FlexDirection: Row,
		FlexWrap:      NoWrap,
		FlexGrow:      0,
		FlexShrink:    1,
		FlexBasis:     Auto,
		GridRow:       geom.Line[GridPlacement]{Start: AutoPlacement, End: AutoPlacement},
		GridColumn:    geom.Line[GridPlacement]{Start: AutoPlacement, End: AutoPlacement},
	}
}

// ErrInvalidStyle wraps a style-construction contract violation. Per spec
// §7 ("out-of-domain inputs... should be rejected by a style constructor,
// not by the layout passes"), this is the only place these are checked.
var ErrInvalidStyle = errors.New("style: invalid value")

// Validate checks the documented value domains: non-negative flex-grow and
// flex-shrink, a positive finite aspect ratio if set, and a non-negative
// scrollbar width. The layout passes assume a Style reaching them already
// satisfies this.
func (s Style) Validate() error {
	if s.FlexGrow < 0 {
		return fmt.Errorf("%w: flex-grow must be >= 0, got %v", ErrInvalidStyle, s.FlexGrow)
	}
	if s.FlexShrink < 0 {
		return fmt.Errorf("%w: flex-shrink must be >= 0, got %v", ErrInvalidStyle, s.FlexShrink)
	}
	if s.AspectRatio != nil {
		ar := *s.AspectRatio
		if math.IsNaN(ar) || math.IsInf(ar, 0) || ar <= 0 {
			return fmt.Errorf("%w: aspect-ratio must be a positive finite real, got %v", ErrInvalidStyle, ar)
		}
	}
	if s.ScrollbarWidth < 0 {
		return fmt.Errorf("%w: scrollbar-width must be >= 0, got %v", ErrInvalidStyle, s.ScrollbarWidth)
	}
	return nil
}

// AlignItemsOrDefault resolves align_items, defaulting to Stretch when
// unset (spec §4.5 step 2 / §4.6 step 6).
func (s Style) AlignItemsOrDefault() AlignValue {
	if s.AlignItems != nil {
		return *s.AlignItems
	}
	return AlignStretch
}

// AlignSelfOrItems resolves a child's align-self, falling back to the
// parent's align-items (itself defaulted to Stretch).
func AlignSelfOrItems(self *AlignValue, parent Style) AlignValue {
	if self != nil {
		return *self
	}
	return parent.AlignItemsOrDefault()
}

// JustifyItemsOrDefault resolves justify_items, defaulting to Stretch.
func (s Style) JustifyItemsOrDefault() AlignValue {
	if s.JustifyItems != nil {
		return *s.JustifyItems
	}
	return AlignStretch
}

// JustifySelfOrItems resolves a child's justify-self, falling back to the
// parent's justify-items.
func JustifySelfOrItems(self *AlignValue, parent Style) AlignValue {
	if self != nil {
		return *self
	}
	return parent.JustifyItemsOrDefault()
}

// RowGap returns the resolved row gap (Gap.Height) against basis.
func (s Style) RowGap(basis *float64) float64 {
	return s.Gap.Height.ResolveOrZero(basis)
}

// ColumnGap returns the resolved column gap (Gap.Width) against basis.
func (s Style) ColumnGap(basis *float64) float64 {
	return s.Gap.Width.ResolveOrZero(basis)
}

// MainGap returns the gap along the main axis for a container running in
// the given direction.
func (s Style) MainGap(isRow bool, basis *float64) float64 {
	if isRow {
		return s.ColumnGap(basis)
	}
	return s.RowGap(basis)
}

// CrossGap returns the gap along the cross axis.
func (s Style) CrossGap(isRow bool, basis *float64) float64 {
	if isRow {
		return s.RowGap(basis)
	}
	return s.ColumnGap(basis)
}
