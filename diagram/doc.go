// Package diagram defines the output boundary the sweep core emits to
// (spec.md §6): a Sink interface decoupling vertex/edge/arc-split
// production from any particular downstream representation, plus
// RecordingSink, a reference Sink that accumulates everything into plain
// slices for callers (and tests) that just want the raw stream.
//
// Building a full doubly-connected-edge-list with face/twin/clipping is
// explicitly out of scope (spec.md's Non-goals) — RecordingSink is
// intentionally the simplest Sink that still lets every emitted fact be
// inspected.
package diagram
