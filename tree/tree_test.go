package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanstack/flexlayout/cache"
	"github.com/rowanstack/flexlayout/geom"
	"github.com/rowanstack/flexlayout/style"
)

func TestNewLeafAndStyle(t *testing.T) {
	tr := NewTree()
	id, err := tr.NewLeaf(style.Default())
	require.NoError(t, err)

	s, err := tr.Style(id)
	require.NoError(t, err)
	require.Equal(t, style.Default(), s)

	dirty, err := tr.Dirty(id)
	require.NoError(t, err)
	require.True(t, dirty, "a freshly created node starts dirty")
}

func TestNewWithChildrenRejectsInvalidChild(t *testing.T) {
	tr := NewTree()
	bogus := NodeId{}
	_, err := tr.NewWithChildren(style.Default(), []NodeId{bogus})
	require.ErrorIs(t, err, ErrInvalidChild)
}

func TestGenerationReuseInvalidatesOldHandle(t *testing.T) {
	tr := NewTree()
	id, err := tr.NewLeaf(style.Default())
	require.NoError(t, err)
	require.NoError(t, tr.Remove(id))

	_, err = tr.Style(id)
	require.ErrorIs(t, err, ErrInvalidNodeId, "a handle into a freed slot must not resolve even if the slot is reused")

	id2, err := tr.NewLeaf(style.Default())
	require.NoError(t, err)
	require.Equal(t, id.index, id2.index, "the freed slot should be reused")
	require.NotEqual(t, id.gen, id2.gen, "the new handle must carry a bumped generation")
}

func TestSetMeasureRejectsNodeWithChildren(t *testing.T) {
	tr := NewTree()
	child, _ := tr.NewLeaf(style.Default())
	parent, err := tr.NewWithChildren(style.Default(), []NodeId{child})
	require.NoError(t, err)

	measure := func(geom.OptionSize, geom.AvailableSpaceSize, style.Style) geom.Size[float64] {
		return geom.Size[float64]{}
	}
	err = tr.SetMeasure(parent, measure)
	require.ErrorIs(t, err, ErrChildrenExistOnMeasureNode)
}

func TestAddChildRejectsOnMeasureNode(t *testing.T) {
	tr := NewTree()
	measure := func(geom.OptionSize, geom.AvailableSpaceSize, style.Style) geom.Size[float64] {
		return geom.Size[float64]{}
	}
	parent, err := tr.NewLeafWithMeasure(style.Default(), measure)
	require.NoError(t, err)
	child, _ := tr.NewLeaf(style.Default())

	err = tr.AddChild(parent, child)
	require.ErrorIs(t, err, ErrMeasureNodeHasChildren)
}

func TestMarkDirtyPropagatesToAncestorsAndClearsCache(t *testing.T) {
	tr := NewTree()
	child, _ := tr.NewLeaf(style.Default())
	parent, err := tr.NewWithChildren(style.Default(), []NodeId{child})
	require.NoError(t, err)
	require.NoError(t, tr.SetComputedLayout(parent, ComputedLayout{}))
	require.NoError(t, tr.SetComputedLayout(child, ComputedLayout{}))

	dirty, _ := tr.Dirty(parent)
	require.False(t, dirty)

	parentCache, err := tr.Cache(parent)
	require.NoError(t, err)
	parentCache.Store(geom.OptionSize{}, geom.AvailableSpaceSize{}, cache.PerformLayout, cache.Output{})

	require.NoError(t, tr.MarkDirty(child))
	dirty, _ = tr.Dirty(parent)
	require.True(t, dirty, "marking a child dirty must propagate to its ancestors")
	_, ok := parentCache.Get(geom.OptionSize{}, geom.AvailableSpaceSize{}, cache.PerformLayout)
	require.False(t, ok, "marking a child dirty must clear each ancestor's cache")
}

func TestRemoveFreesWholeSubtree(t *testing.T) {
	tr := NewTree()
	grandchild, _ := tr.NewLeaf(style.Default())
	child, err := tr.NewWithChildren(style.Default(), []NodeId{grandchild})
	require.NoError(t, err)
	parent, err := tr.NewWithChildren(style.Default(), []NodeId{child})
	require.NoError(t, err)

	require.NoError(t, tr.Remove(parent))

	_, err = tr.Style(child)
	require.ErrorIs(t, err, ErrInvalidNodeId)
	_, err = tr.Style(grandchild)
	require.ErrorIs(t, err, ErrInvalidNodeId)
}

func TestReplaceChildAtIndexOrphansThePrevious(t *testing.T) {
	tr := NewTree()
	a, _ := tr.NewLeaf(style.Default())
	b, _ := tr.NewLeaf(style.Default())
	parent, err := tr.NewWithChildren(style.Default(), []NodeId{a})
	require.NoError(t, err)

	prev, err := tr.ReplaceChildAtIndex(parent, 0, b)
	require.NoError(t, err)
	require.Equal(t, a, prev)

	_, hasParent, err := tr.Parent(a)
	require.NoError(t, err)
	require.False(t, hasParent, "a replaced-out child becomes a root")

	bParent, hasParent, err := tr.Parent(b)
	require.NoError(t, err)
	require.True(t, hasParent)
	require.Equal(t, parent, bParent)
}

func TestLayoutReturnsZeroValueUntilComputed(t *testing.T) {
	tr := NewTree()
	id, _ := tr.NewLeaf(style.Default())
	l, err := tr.Layout(id)
	require.NoError(t, err)
	require.Equal(t, ComputedLayout{}, l)
}
