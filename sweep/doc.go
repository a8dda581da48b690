// Package sweep is the driver at the heart of spec.md §5: Fortune's
// sweepline over package beachline's arc set and package event's merged
// site/circle event stream, emitting its result through a diagram.Sink.
//
// Build's top-level loop is grounded in the wanghanting/voronoi reference
// file's Generate/HandleNextEvent split (pop next event, dispatch on its
// kind, repeat until both queues are empty) generalized from that repo's
// single image.Point site model to spec.md's point-and-segment sites and
// robust predicates. The single public entry point, resolving a functional
// Option set before running, follows the lvlath/builder package's
// BuildGraph(gopts, bopts, cons...) convention: one orchestrator, internal
// steps unexported.
package sweep
