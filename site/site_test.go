package site_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/site"
)

func TestNewPoint(t *testing.T) {
	s, err := site.NewPoint(point.New(3, 4), 7)
	require.NoError(t, err)
	assert.True(t, s.IsPoint())
	assert.False(t, s.IsSegment())
	assert.Equal(t, 7, s.SortedIndex)
	assert.Equal(t, point.New(3, 4), s.Leftmost())
	assert.Equal(t, point.New(3, 4), s.Rightmost())
}

func TestNewPointRejectsOutOfRange(t *testing.T) {
	_, err := site.NewPoint(point.New(site.MaxCoordinate+1, 0), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, site.ErrCoordinateRange))
}

func TestNewSegmentOrdersEndpoints(t *testing.T) {
	a, b := point.New(5, 0), point.New(1, 0)
	fwd, inv, err := site.NewSegment(a, b, 2)
	require.NoError(t, err)

	assert.Equal(t, b, fwd.P0) // Leftmost under point order is P0
	assert.Equal(t, a, fwd.P1)
	assert.False(t, fwd.IsInverse)
	assert.True(t, fwd.IsSegment())

	assert.Equal(t, a, inv.P0)
	assert.Equal(t, b, inv.P1)
	assert.True(t, inv.IsInverse)
	assert.Equal(t, fwd.SortedIndex, inv.SortedIndex)

	assert.Equal(t, b, fwd.Leftmost())
	assert.Equal(t, b, inv.Leftmost())
}

func TestNewSegmentRejectsDegenerate(t *testing.T) {
	p := point.New(0, 0)
	_, _, err := site.NewSegment(p, p, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, site.ErrDegenerateSegment))
}

func TestIsVertical(t *testing.T) {
	fwd, _, err := site.NewSegment(point.New(0, -1), point.New(0, 1), 0)
	require.NoError(t, err)
	assert.True(t, fwd.IsVertical())

	pt, err := site.NewPoint(point.New(0, 0), 1)
	require.NoError(t, err)
	assert.False(t, pt.IsVertical())
}

func TestValidateNoOverlap(t *testing.T) {
	a, _, err := site.NewSegment(point.New(0, 0), point.New(10, 0), 0)
	require.NoError(t, err)
	b, _, err := site.NewSegment(point.New(5, 0), point.New(15, 0), 1)
	require.NoError(t, err)

	err = site.ValidateNoOverlap([]site.Site{a, b})
	require.Error(t, err)
	assert.True(t, errors.Is(err, site.ErrOverlappingSegments))
}

func TestValidateNoOverlapAllowsSharedEndpointOnly(t *testing.T) {
	a, _, err := site.NewSegment(point.New(0, 0), point.New(10, 0), 0)
	require.NoError(t, err)
	b, _, err := site.NewSegment(point.New(10, 0), point.New(20, 0), 1)
	require.NoError(t, err)

	assert.NoError(t, site.ValidateNoOverlap([]site.Site{a, b}))
}

func TestValidateNoOverlapIgnoresCrossing(t *testing.T) {
	a, _, err := site.NewSegment(point.New(0, 0), point.New(10, 10), 0)
	require.NoError(t, err)
	b, _, err := site.NewSegment(point.New(0, 10), point.New(10, 0), 1)
	require.NoError(t, err)

	assert.NoError(t, site.ValidateNoOverlap([]site.Site{a, b}))
}

func TestSortBySortedIndex(t *testing.T) {
	s1, err := site.NewPoint(point.New(0, 0), 2)
	require.NoError(t, err)
	s2, err := site.NewPoint(point.New(1, 1), 0)
	require.NoError(t, err)
	s3, err := site.NewPoint(point.New(2, 2), 1)
	require.NoError(t, err)

	sites := []site.Site{s1, s2, s3}
	site.SortBySortedIndex(sites)
	require.Len(t, sites, 3)
	assert.Equal(t, 0, sites[0].SortedIndex)
	assert.Equal(t, 1, sites[1].SortedIndex)
	assert.Equal(t, 2, sites[2].SortedIndex)
}
