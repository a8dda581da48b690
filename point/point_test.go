package point_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/voronoi/point"
)

func TestLess(t *testing.T) {
	assert.True(t, point.Less(point.New(0, 0), point.New(1, 0)))
	assert.True(t, point.Less(point.New(0, 0), point.New(0, 1)))
	assert.False(t, point.Less(point.New(1, 0), point.New(0, 0)))
	assert.False(t, point.Less(point.New(0, 0), point.New(0, 0)))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, point.Compare(point.New(0, 0), point.New(1, 0)))
	assert.Equal(t, 1, point.Compare(point.New(1, 0), point.New(0, 0)))
	assert.Equal(t, 0, point.Compare(point.New(2, 3), point.New(2, 3)))
	assert.Equal(t, -1, point.Compare(point.New(2, 3), point.New(2, 4)))
}

func TestMinMax(t *testing.T) {
	p, q := point.New(5, 5), point.New(3, 9)
	assert.Equal(t, q, point.Min(p, q))
	assert.Equal(t, p, point.Max(p, q))
	assert.Equal(t, p, point.Min(p, p))
}

func TestEqual(t *testing.T) {
	assert.True(t, point.Equal(point.New(1, 2), point.New(1, 2)))
	assert.False(t, point.Equal(point.New(1, 2), point.New(2, 1)))
}
