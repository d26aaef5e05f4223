package layoutalgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/style"
	"github.com/rowanstack/flexlayout/tree"
)

func computeRoot(t *testing.T, tr *tree.Tree, root tree.NodeId) tree.ComputedLayout {
	t.Helper()
	err := ComputeLayout(tr, root, geom.AvailableSpaceSize{Width: geom.MaxContent, Height: geom.MaxContent})
	require.NoError(t, err)
	l, err := tr.Layout(root)
	require.NoError(t, err)
	return l
}

func TestLeaf_PaddedBorderBoxDoesNotGrowFromContent(t *testing.T) {
	// A leaf with both axes fixed (border-box) is sized from the style
	// alone; padding/border never inflate a known size.
	tr := tree.NewTree()
	s := style.Default()
	s.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(100), Height: style.LengthAuto(50)}
	s.Padding = geom.UniformRect(style.Length(10))
	id, err := tr.NewLeaf(s)
	require.NoError(t, err)

	l := computeRoot(t, tr, id)
	require.Equal(t, 100.0, l.Size.Width)
	require.Equal(t, 50.0, l.Size.Height)
}

func TestLeaf_MeasureHookDrivesContentBoxWhenSizeIsAuto(t *testing.T) {
	// content = 30x20, padding = 5 all sides -> border-box = 40x30.
	tr := tree.NewTree()
	s := style.Default()
	s.Padding = geom.UniformRect(style.Length(5))
	measure := func(known geom.OptionSize, avail geom.AvailableSpaceSize, _ style.Style) geom.Size[float64] {
		return geom.Size[float64]{Width: 30, Height: 20}
	}
	id, err := tr.NewLeafWithMeasure(s, measure)
	require.NoError(t, err)

	l := computeRoot(t, tr, id)
	require.Equal(t, 40.0, l.Size.Width)
	require.Equal(t, 30.0, l.Size.Height)
}

func TestLeaf_MeasureHookClampsNegativeAndNaN(t *testing.T) {
	tr := tree.NewTree()
	measure := func(geom.OptionSize, geom.AvailableSpaceSize, style.Style) geom.Size[float64] {
		return geom.Size[float64]{Width: -5, Height: math.NaN()}
	}
	id, err := tr.NewLeafWithMeasure(style.Default(), measure)
	require.NoError(t, err)

	l := computeRoot(t, tr, id)
	require.Equal(t, 0.0, l.Size.Width, "a negative measured dimension must clamp to zero, not propagate")
	require.Equal(t, 0.0, l.Size.Height, "a NaN measured dimension must clamp to zero, not propagate")
}

func TestBlock_StacksChildrenSequentiallyWithMargins(t *testing.T) {
	// Two fixed-height children (30, 40) with a 10px top margin on the
	// second: cursor after child 1 is 30; child 2's top margin pushes its
	// origin to 40, ending at 80.
	tr := tree.NewTree()
	child1Style := style.Default()
	child1Style.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(50), Height: style.LengthAuto(30)}
	child1, err := tr.NewLeaf(child1Style)
	require.NoError(t, err)

	child2Style := style.Default()
	child2Style.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(50), Height: style.LengthAuto(40)}
	child2Style.Margin.Top = style.LengthAuto(10)
	child2, err := tr.NewLeaf(child2Style)
	require.NoError(t, err)

	rootStyle := style.Default()
	rootStyle.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(100), Height: style.Auto}
	root, err := tr.NewWithChildren(rootStyle, []tree.NodeId{child1, child2})
	require.NoError(t, err)

	l := computeRoot(t, tr, root)
	require.Equal(t, 80.0, l.Size.Height, "30 + (10 margin + 40) == 80")

	c1, _ := tr.Layout(child1)
	c2, _ := tr.Layout(child2)
	require.Equal(t, 0.0, c1.Location.Y)
	require.Equal(t, 40.0, c2.Location.Y, "child2 starts at cursor(30) + its own top margin(10)")
}

func TestBlock_AbsoluteChildPositionsAgainstContentBox(t *testing.T) {
	tr := tree.NewTree()
	absStyle := style.Default()
	absStyle.Position = style.PositionAbsolute
	absStyle.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(20), Height: style.LengthAuto(10)}
	absStyle.Inset.Right = style.LengthAuto(5)
	absStyle.Inset.Bottom = style.LengthAuto(5)
	absChild, err := tr.NewLeaf(absStyle)
	require.NoError(t, err)

	rootStyle := style.Default()
	rootStyle.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(100), Height: style.LengthAuto(50)}
	rootStyle.Padding = geom.UniformRect(style.Length(5))
	root, err := tr.NewWithChildren(rootStyle, []tree.NodeId{absChild})
	require.NoError(t, err)

	computeRoot(t, tr, root)
	l, _ := tr.Layout(absChild)
	// content box: [5, 95] x [5, 45]; right=5,bottom=5 -> x = 95-5-20=70, y = 45-5-10=30
	require.Equal(t, 70.0, l.Location.X)
	require.Equal(t, 30.0, l.Location.Y)
}

func fixedLeaf(t *testing.T, tr *tree.Tree, w, h float64) tree.NodeId {
	t.Helper()
	s := style.Default()
	s.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(w), Height: style.LengthAuto(h)}
	id, err := tr.NewLeaf(s)
	require.NoError(t, err)
	return id
}

func TestFlex_GrowDistributesFreeSpaceProportionally(t *testing.T) {
	// container width 170, two items basis 60 each, gap 10: free = 170-130=40.
	// only item a grows (factor 2) -> a = 100, b stays 60.
	tr := tree.NewTree()
	a := fixedLeaf(t, tr, 60, 20)
	aStyle, _ := tr.Style(a)
	aStyle.FlexGrow = 2
	require.NoError(t, tr.SetStyle(a, aStyle))
	b := fixedLeaf(t, tr, 60, 20)

	rootStyle := style.Default()
	rootStyle.Display = style.DisplayFlex
	rootStyle.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(170), Height: style.Auto}
	rootStyle.Gap = geom.Size[style.LengthPercentage]{Width: style.Length(10)}
	root, err := tr.NewWithChildren(rootStyle, []tree.NodeId{a, b})
	require.NoError(t, err)

	computeRoot(t, tr, root)
	la, _ := tr.Layout(a)
	lb, _ := tr.Layout(b)
	require.Equal(t, 100.0, la.Size.Width)
	require.Equal(t, 60.0, lb.Size.Width)
	require.Equal(t, 0.0, la.Location.X)
	require.Equal(t, 110.0, lb.Location.X, "100 + 10 gap")
}

func TestFlex_ShrinkRespectsMinSize(t *testing.T) {
	// container 100, two items basis 80 each (160 total), free = -60.
	// item b has min-width 70, so it can only shrink to 70; the remaining
	// violation is absorbed by item a.
	tr := tree.NewTree()
	a := fixedLeaf(t, tr, 80, 20)
	b := fixedLeaf(t, tr, 80, 20)
	bStyle, _ := tr.Style(b)
	bStyle.MinSize.Width = style.LengthAuto(70)
	require.NoError(t, tr.SetStyle(b, bStyle))

	rootStyle := style.Default()
	rootStyle.Display = style.DisplayFlex
	rootStyle.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(100), Height: style.Auto}
	root, err := tr.NewWithChildren(rootStyle, []tree.NodeId{a, b})
	require.NoError(t, err)

	computeRoot(t, tr, root)
	lb, _ := tr.Layout(b)
	require.Equal(t, 70.0, lb.Size.Width, "b is clamped at its min-width floor")
}

func TestFlex_WrapsIntoMultipleLines(t *testing.T) {
	// container 125 wide, three items of 60 each: a+b (120) fit on line 1;
	// c (which would make 180) wraps onto line 2.
	tr := tree.NewTree()
	a := fixedLeaf(t, tr, 60, 20)
	b := fixedLeaf(t, tr, 60, 20)
	c := fixedLeaf(t, tr, 60, 20)

	rootStyle := style.Default()
	rootStyle.Display = style.DisplayFlex
	rootStyle.FlexWrap = style.Wrap
	rootStyle.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(125), Height: style.Auto}
	root, err := tr.NewWithChildren(rootStyle, []tree.NodeId{a, b, c})
	require.NoError(t, err)

	l := computeRoot(t, tr, root)
	la, _ := tr.Layout(a)
	lb, _ := tr.Layout(b)
	lc, _ := tr.Layout(c)
	require.Equal(t, la.Location.Y, lb.Location.Y, "a and b share the first line")
	require.NotEqual(t, la.Location.Y, lc.Location.Y, "c wraps onto its own line")
	require.Equal(t, 40.0, l.Size.Height, "two lines of height 20, no gap configured")
}

func TestFlex_MinSizeOnIndefiniteMainAxisPromotesFreeSpace(t *testing.T) {
	// Column direction, height auto but min-height 100. child1 grows
	// (basis 0, no content), child2 is a fixed 50-tall leaf. The min-size
	// must promote into the free-space basis, not just the reported
	// container size: child1 should grow to fill the remaining 50px
	// rather than stay at its zero basis.
	tr := tree.NewTree()
	c1Style := style.Default()
	c1Style.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(50), Height: style.Auto}
	c1Style.FlexGrow = 1
	child1, err := tr.NewLeaf(c1Style)
	require.NoError(t, err)
	child2 := fixedLeaf(t, tr, 50, 50)

	rootStyle := style.Default()
	rootStyle.Display = style.DisplayFlex
	rootStyle.FlexDirection = style.Column
	rootStyle.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(50), Height: style.Auto}
	rootStyle.MinSize = geom.Size[style.Dimension]{Width: style.Auto, Height: style.LengthAuto(100)}
	root, err := tr.NewWithChildren(rootStyle, []tree.NodeId{child1, child2})
	require.NoError(t, err)

	l := computeRoot(t, tr, root)
	l1, _ := tr.Layout(child1)
	l2, _ := tr.Layout(child2)
	require.Equal(t, 100.0, l.Size.Height, "container honors min-height even though height is auto")
	require.Equal(t, 50.0, l1.Size.Height, "child1 grows to absorb the min-size-forced free space")
	require.Equal(t, 0.0, l1.Location.Y)
	require.Equal(t, 50.0, l2.Location.Y)
}

func TestGrid_FixedTracksPlaceholderItemsAtOrigin(t *testing.T) {
	// A 2x1 explicit grid, columns 40px and 60px; item 0 auto-placed into
	// column 0, item 1 into column 1.
	tr := tree.NewTree()
	a := fixedLeaf(t, tr, 10, 10)
	b := fixedLeaf(t, tr, 10, 10)

	rootStyle := style.Default()
	rootStyle.Display = style.DisplayGrid
	rootStyle.GridTemplateColumns = []style.TrackRepeat{
		style.Single(style.FixedTrack(40)),
		style.Single(style.FixedTrack(60)),
	}
	rootStyle.GridTemplateRows = []style.TrackRepeat{style.Single(style.FixedTrack(30))}
	rootStyle.Size = geom.Size[style.Dimension]{Width: style.Auto, Height: style.Auto}
	root, err := tr.NewWithChildren(rootStyle, []tree.NodeId{a, b})
	require.NoError(t, err)

	l := computeRoot(t, tr, root)
	require.Equal(t, 100.0, l.Size.Width, "40 + 60 explicit column tracks")
	require.Equal(t, 30.0, l.Size.Height)

	la, _ := tr.Layout(a)
	lb, _ := tr.Layout(b)
	require.Equal(t, 0.0, la.Location.X)
	require.Equal(t, 40.0, lb.Location.X, "second auto-placed item lands in the second column")
}

func TestGrid_ExplicitTrackPlacementWithSpan(t *testing.T) {
	tr := tree.NewTree()
	// Width is left Auto so the default justify-items:Stretch fills the
	// spanned area; only the height is fixed, to isolate the span math.
	hStyle := style.Default()
	hStyle.Size = geom.Size[style.Dimension]{Width: style.Auto, Height: style.LengthAuto(10)}
	hStyle.GridColumn = geom.Line[style.GridPlacement]{Start: style.TrackPlacement(1), End: style.SpanPlacement(2)}
	header, err := tr.NewLeaf(hStyle)
	require.NoError(t, err)

	rootStyle := style.Default()
	rootStyle.Display = style.DisplayGrid
	rootStyle.GridTemplateColumns = []style.TrackRepeat{
		style.Single(style.FixedTrack(30)),
		style.Single(style.FixedTrack(50)),
	}
	rootStyle.GridTemplateRows = []style.TrackRepeat{style.Single(style.FixedTrack(20))}
	root, err := tr.NewWithChildren(rootStyle, []tree.NodeId{header})
	require.NoError(t, err)

	computeRoot(t, tr, root)
	lh, _ := tr.Layout(header)
	require.Equal(t, 80.0, lh.Size.Width, "a 2-track span covers both explicit columns: 30+50")
}

func TestHiddenSubtreeGetsSentinelOrderAndZeroSize(t *testing.T) {
	tr := tree.NewTree()
	childStyle := style.Default()
	childStyle.Display = style.DisplayNone
	childStyle.Size = geom.Size[style.Dimension]{Width: style.LengthAuto(999), Height: style.LengthAuto(999)}
	child, err := tr.NewLeaf(childStyle)
	require.NoError(t, err)
	root, err := tr.NewWithChildren(style.Default(), []tree.NodeId{child})
	require.NoError(t, err)

	computeRoot(t, tr, root)
	l, _ := tr.Layout(child)
	require.Equal(t, tree.HiddenOrder, l.Order)
	require.Equal(t, geom.Size[float64]{}, l.Size)
}

func TestOrderIsChildIndexWithinParentNotGlobalTraversalCount(t *testing.T) {
	// Three flex children at indices 0,1,2 under one parent, each of which
	// also has its own single child at index 0 under itself. A global
	// pre/post-order counter would give the grandchildren increasing
	// distinct stamps (3,4,5 or similar); the correct rule stamps every
	// grandchild 0, since each is the only (and therefore zeroth) child of
	// its own parent.
	tr := tree.NewTree()
	var mids []tree.NodeId
	var grandkids []tree.NodeId
	for i := 0; i < 3; i++ {
		gk := fixedLeaf(t, tr, 10, 10)
		grandkids = append(grandkids, gk)
		mid, err := tr.NewWithChildren(style.Default(), []tree.NodeId{gk})
		require.NoError(t, err)
		mids = append(mids, mid)
	}
	rootStyle := style.Default()
	rootStyle.Display = style.DisplayFlex
	root, err := tr.NewWithChildren(rootStyle, mids)
	require.NoError(t, err)

	computeRoot(t, tr, root)

	for i, mid := range mids {
		l, err := tr.Layout(mid)
		require.NoError(t, err)
		require.Equal(t, uint32(i), l.Order, "mid %d should be stamped with its own index among root's children", i)
	}
	for _, gk := range grandkids {
		l, err := tr.Layout(gk)
		require.NoError(t, err)
		require.Equal(t, uint32(0), l.Order, "every grandchild is its own parent's only (zeroth) child")
	}
}

func TestComputeLayoutIsIdempotent(t *testing.T) {
	tr := tree.NewTree()
	a := fixedLeaf(t, tr, 60, 20)
	root, err := tr.NewWithChildren(style.Default(), []tree.NodeId{a})
	require.NoError(t, err)

	first := computeRoot(t, tr, root)
	second := computeRoot(t, tr, root)
	require.Equal(t, first, second, "recomputing without any dirty node must reproduce the same layout")
}
