package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voronoi/beachline"
	"github.com/katalvlaran/voronoi/circleevent"
	"github.com/katalvlaran/voronoi/event"
)

func TestCircleQueueEmptyInitially(t *testing.T) {
	cq := event.NewCircleQueue()
	assert.True(t, cq.Empty())
	_, ok := cq.PeekReady()
	assert.False(t, ok)
}

func TestCircleQueuePopsInLowerXOrder(t *testing.T) {
	cq := event.NewCircleQueue()

	far := &beachline.Arc{State: beachline.CircleArmed, Circle: &circleevent.Event{LowerX: 30, Active: true}}
	near := &beachline.Arc{State: beachline.CircleArmed, Circle: &circleevent.Event{LowerX: 10, Active: true}}
	mid := &beachline.Arc{State: beachline.CircleArmed, Circle: &circleevent.Event{LowerX: 20, Active: true}}

	cq.Push(far)
	cq.Push(near)
	cq.Push(mid)

	first, ok := cq.PopReady()
	require.True(t, ok)
	assert.Same(t, near, first)

	second, ok := cq.PopReady()
	require.True(t, ok)
	assert.Same(t, mid, second)

	third, ok := cq.PopReady()
	require.True(t, ok)
	assert.Same(t, far, third)

	assert.True(t, cq.Empty())
}

func TestCircleQueueSkipsStaleEntries(t *testing.T) {
	cq := event.NewCircleQueue()

	stale := &beachline.Arc{State: beachline.Dead, Circle: &circleevent.Event{LowerX: 5, Active: true}}
	live := &beachline.Arc{State: beachline.CircleArmed, Circle: &circleevent.Event{LowerX: 10, Active: true}}

	cq.Push(stale)
	cq.Push(live)

	got, ok := cq.PeekReady()
	require.True(t, ok)
	assert.Same(t, live, got)
}

func TestCircleQueueSkipsInactiveCircle(t *testing.T) {
	cq := event.NewCircleQueue()

	cancelled := &beachline.Arc{State: beachline.CircleArmed, Circle: &circleevent.Event{LowerX: 1, Active: false}}
	live := &beachline.Arc{State: beachline.CircleArmed, Circle: &circleevent.Event{LowerX: 100, Active: true}}

	cq.Push(cancelled)
	cq.Push(live)

	got, ok := cq.PopReady()
	require.True(t, ok)
	assert.Same(t, live, got)
	assert.True(t, cq.Empty())
}
