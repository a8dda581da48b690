// Package voronoi is a library for constructing the Voronoi diagram of a
// planar set of integer-coordinate point and segment sites via Fortune's
// sweepline algorithm, with numerically robust predicates and circle-event
// formation.
//
// The module is organized as a small core with a thin public facade on top:
//
//	point/       — integer Point type and the point total order
//	site/        — Site (point or segment), sorted_index, is_inverse
//	rfpt/        — RobustFpt, RobustDif, robust_sqrt_expr
//	exactint/    — arbitrary-precision integer fallback layer
//	predicate/   — orientation, event order, distance, beach-line node compare
//	circleevent/ — ppp/pps/pss/sss circle-event formation, lazy + exact
//	beachline/   — the ordered arc-key tree the sweep maintains
//	event/       — site-event stream merged with the circle-event heap
//	diagram/     — the Sink callback boundary and a RecordingSink
//	sweep/       — the driver loop: Build(sites, sink, opts...)
//	builder/     — the public entry point: raw coordinates in, diagram out
//
// Construction of the final half-edge subdivision, clipping to a bounding
// box, and discretization of parabolic edges are outside this library's
// scope; callers consume the Sink stream and assemble those themselves.
package voronoi
