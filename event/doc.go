// Package event is the sweep driver's two event sources (spec.md §4.7,
// §5): the pre-sorted site-event stream and the circle-event priority
// queue, plus the comparator that interleaves them into the single total
// order the sweep loop consumes from.
//
// The circle-event queue uses container/heap, grounded on the same
// choice lvlath's graph package makes for Dijkstra/Prim's priority
// frontier (graph/dijkstra.go, graph/prim_kruskal.go in the teacher
// repo) — the corpus's own answer to "priority queue in Go" is the
// stdlib heap, not a third-party one, so no pack example motivates a
// dependency here; see DESIGN.md.
package event
