package style

// AlignValue is the shared option set behind align_items, align_self,
// align_content, justify_items, justify_self, and justify_content (spec
// §3: "each optional over {Start, End, FlexStart, FlexEnd, Center,
// Stretch, Baseline, SpaceBetween, SpaceEvenly, SpaceAround}"). Each
// property only exercises the subset that makes sense for it; the engine
// does not reject a nonsensical combination (e.g. SpaceBetween on
// align_self) because the style constructor layer is the documented
// validation boundary, not the layout passes (spec §7).
type AlignValue int

const (
	AlignStart AlignValue = iota
	AlignEnd
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceEvenly
	AlignSpaceAround
)

// IsStartLike reports whether a maps to the axis start edge, folding the
// Start/FlexStart synonyms used across flex and grid.
func (a AlignValue) IsStartLike() bool { return a == AlignStart || a == AlignFlexStart }

// IsEndLike folds the End/FlexEnd synonyms.
func (a AlignValue) IsEndLike() bool { return a == AlignEnd || a == AlignFlexEnd }

// Style's AlignItems, AlignSelf, AlignContent, JustifyItems, JustifySelf
// and JustifyContent fields are all *AlignValue: "optional" in
// spec §3 is modeled as a nil pointer (unset → caller-defined default),
// matching the pointer-for-optional idiom the teacher uses for Top/Right/
// Bottom/Left on ItemStyle.

// Ptr returns a pointer to v, for building literal optional-alignment
// style values inline.
func Ptr(v AlignValue) *AlignValue { return &v }
