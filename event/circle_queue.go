package event

import (
	"container/heap"

	"github.com/katalvlaran/voronoi/beachline"
)

// CircleQueue is the circle-event priority queue of spec.md §4.7, a
// container/heap min-heap keyed by lower_x. Eviction of an arc marks its
// linked circle event inactive (Arc.State/Circle.Active) instead of
// extracting it from the heap; PopReady skips inactive entries lazily
// rather than paying for an explicit decrease-key/removal.
type CircleQueue struct {
	h circleHeap
}

// NewCircleQueue returns an empty circle-event queue.
func NewCircleQueue() *CircleQueue {
	cq := &CircleQueue{}
	heap.Init(&cq.h)
	return cq
}

// Push schedules arc's circle event. arc.Circle must already be set.
func (cq *CircleQueue) Push(arc *beachline.Arc) {
	heap.Push(&cq.h, arc)
}

// PeekReady returns the next still-active circle event without consuming
// it, skipping (and permanently discarding) any stale entries at the top
// of the heap whose arc has since been evicted.
func (cq *CircleQueue) PeekReady() (*beachline.Arc, bool) {
	for cq.h.Len() > 0 {
		top := cq.h[0]
		if top.State == beachline.Dead || top.Circle == nil || !top.Circle.Active {
			heap.Pop(&cq.h)
			continue
		}
		return top, true
	}
	return nil, false
}

// PopReady consumes and returns the next still-active circle event.
func (cq *CircleQueue) PopReady() (*beachline.Arc, bool) {
	arc, ok := cq.PeekReady()
	if !ok {
		return nil, false
	}
	heap.Pop(&cq.h)
	return arc, true
}

// Empty reports whether any active circle event remains (after discarding
// stale entries).
func (cq *CircleQueue) Empty() bool {
	_, ok := cq.PeekReady()
	return !ok
}

type circleHeap []*beachline.Arc

func (h circleHeap) Len() int { return len(h) }

func (h circleHeap) Less(i, j int) bool {
	return h[i].Circle.LowerX < h[j].Circle.LowerX
}

func (h circleHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *circleHeap) Push(x any) {
	*h = append(*h, x.(*beachline.Arc))
}

func (h *circleHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
