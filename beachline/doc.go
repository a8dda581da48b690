// Package beachline is the ordered arc-interval structure the sweep
// driver queries and mutates as it processes site and circle events
// (spec.md §3 "BeachLine", §4.7). Arcs are keyed by predicate.NodeKey and
// ordered by predicate.CompareNodes, the strict total order that holds at
// any instant between events.
//
// The tree itself is a github.com/google/btree balanced tree (grounded on
// the mikenye/geom2d sweep-status-structure reference in the retrieval
// pack; see DESIGN.md), chosen over a hand-rolled balanced tree because
// the corpus already shows this exact "balanced structure keyed by a
// geometry comparator, queried by predecessor/successor" shape for a
// sweepline status structure.
package beachline
