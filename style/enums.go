// Package style is the declarative input the layout engine consumes: one
// Style record per node, grouped the way spec §3 groups it (display,
// position/inset, sizing, spacing, alignment, flex, grid).
package style

// Display selects which layout algorithm a node's children are routed
// through by the dispatcher.
type Display int

const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayGrid
	DisplayNone
)

// Position selects a node's containing block: Relative keeps it in normal
// flow (inset offsets it visually without affecting flow), Absolute
// removes it from flow and positions it against the immediate parent's
// content box (spec §9: no containing-block chain beyond the parent).
type Position int

const (
	PositionRelative Position = iota
	PositionAbsolute
)

// Overflow controls whether an axis clips its content and, for Scroll,
// reserves a scrollbar gutter (Style.ScrollbarWidth).
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowClip
	OverflowHidden
	OverflowScroll
)

// FlexDirection selects the flex container's main axis and its polarity.
type FlexDirection int

const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool { return d == Row || d == RowReverse }

// IsReverse reports whether item order is reversed along the main axis.
func (d FlexDirection) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

// FlexWrap selects whether a flex container wraps overflowing lines, and
// in which order wrapped lines stack along the cross axis.
type FlexWrap int

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// GridAutoFlow selects the grid auto-placement sweep direction and
// whether dense backfilling is enabled (spec §4.6 step 2).
type GridAutoFlow int

const (
	GridFlowRow GridAutoFlow = iota
	GridFlowColumn
	GridFlowRowDense
	GridFlowColumnDense
)

// IsRow reports whether the primary placement axis is row-major.
func (f GridAutoFlow) IsRow() bool { return f == GridFlowRow || f == GridFlowRowDense }

// IsDense reports whether dense packing is requested.
func (f GridAutoFlow) IsDense() bool { return f == GridFlowRowDense || f == GridFlowColumnDense }
