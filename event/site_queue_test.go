package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voronoi/event"
	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/site"
)

func mustPoint(t *testing.T, p point.Point, idx int) site.Site {
	t.Helper()
	s, err := site.NewPoint(p, idx)
	require.NoError(t, err)
	return s
}

func TestSiteQueueEmpty(t *testing.T) {
	q := event.NewSiteQueue(nil)
	assert.True(t, q.Empty())
	_, ok := q.Peek()
	assert.False(t, ok)
	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestSiteQueuePeekDoesNotConsume(t *testing.T) {
	a := mustPoint(t, point.New(0, 0), 0)
	b := mustPoint(t, point.New(1, 0), 1)
	q := event.NewSiteQueue([]site.Site{a, b})

	first, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, a.SortedIndex, first.SortedIndex)

	// Peek again: still the same head.
	again, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, a.SortedIndex, again.SortedIndex)
	assert.False(t, q.Empty())
}

func TestSiteQueuePopWalksInOrder(t *testing.T) {
	a := mustPoint(t, point.New(0, 0), 0)
	b := mustPoint(t, point.New(1, 0), 1)
	q := event.NewSiteQueue([]site.Site{a, b})

	got, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 0, got.SortedIndex)

	got, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, got.SortedIndex)

	assert.True(t, q.Empty())
	_, ok = q.Pop()
	assert.False(t, ok)
}
