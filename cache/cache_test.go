package cache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanstack/flexlayout/geom"
)

func TestStoreThenGetHitsOnMatchingShape(t *testing.T) {
	c := New()
	known := geom.OptionSize{Width: geom.Maybe(10)}
	avail := geom.AvailableSpaceSize{Width: geom.Definite(10), Height: geom.MaxContent}
	out := Output{Size: geom.Size[float64]{Width: 10, Height: 20}}
	c.Store(known, avail, PerformLayout, out)

	got, ok := c.Get(known, avail, PerformLayout)
	require.True(t, ok)
	require.Equal(t, out, got)
}

func TestGetMissesOnDifferentKnownDimensions(t *testing.T) {
	c := New()
	avail := geom.AvailableSpaceSize{Width: geom.MinContent, Height: geom.MinContent}
	c.Store(geom.OptionSize{Width: geom.Maybe(10)}, avail, ComputeSize, Output{})

	_, ok := c.Get(geom.OptionSize{Width: geom.Maybe(20)}, avail, ComputeSize)
	require.False(t, ok)
}

func TestPerformLayoutResultSatisfiesComputeSizeQuery(t *testing.T) {
	c := New()
	known := geom.OptionSize{}
	avail := geom.AvailableSpaceSize{Width: geom.MinContent, Height: geom.MinContent}
	out := Output{Size: geom.Size[float64]{Width: 5, Height: 5}}
	c.Store(known, avail, PerformLayout, out)

	got, ok := c.Get(known, avail, ComputeSize)
	require.True(t, ok, "a cached PerformLayout result must satisfy a weaker ComputeSize query")
	require.Equal(t, out, got)
}

func TestComputeSizeResultDoesNotSatisfyPerformLayoutQuery(t *testing.T) {
	c := New()
	known := geom.OptionSize{}
	avail := geom.AvailableSpaceSize{Width: geom.MinContent, Height: geom.MinContent}
	c.Store(known, avail, ComputeSize, Output{})

	_, ok := c.Get(known, avail, PerformLayout)
	require.False(t, ok, "a ComputeSize-only result cannot satisfy a query that needs child positions written")
}

func TestClearInvalidatesEveryEntry(t *testing.T) {
	c := New()
	known := geom.OptionSize{}
	avail := geom.AvailableSpaceSize{}
	c.Store(known, avail, PerformLayout, Output{})
	c.Clear()

	_, ok := c.Get(known, avail, PerformLayout)
	require.False(t, ok)
}

func TestDistinctShapesDoNotEvictEachOther(t *testing.T) {
	c := New()
	avail := geom.AvailableSpaceSize{}
	minContentQuery := geom.AvailableSpaceSize{Width: geom.MinContent, Height: geom.MinContent}
	maxContentQuery := geom.AvailableSpaceSize{Width: geom.MaxContent, Height: geom.MaxContent}

	c.Store(geom.OptionSize{}, minContentQuery, ComputeSize, Output{Size: geom.Size[float64]{Width: 1}})
	c.Store(geom.OptionSize{}, maxContentQuery, ComputeSize, Output{Size: geom.Size[float64]{Width: 2}})
	c.Store(geom.OptionSize{}, avail, PerformLayout, Output{Size: geom.Size[float64]{Width: 3}})

	got, ok := c.Get(geom.OptionSize{}, minContentQuery, ComputeSize)
	require.True(t, ok)
	require.Equal(t, 1.0, got.Size.Width)

	got, ok = c.Get(geom.OptionSize{}, maxContentQuery, ComputeSize)
	require.True(t, ok)
	require.Equal(t, 2.0, got.Size.Width)
}
