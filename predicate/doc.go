// Package predicate implements the geometric decisions the sweep needs:
// orientation, site-event ordering, the beach-line distance predicate
// (pp/ps/ss), and beach-line node comparison (spec.md §4.2-§4.5).
//
// Every predicate here commits to float64 as its RobustFpt/RobustDif
// instantiation (package rfpt stays generic over float32|float64; the
// sweep itself only ever needs float64 output per spec.md §6).
package predicate

// ULPSThreshold is the general 128-ULP tolerance of the float64 fast path
// (spec.md §4.1; 128 is the 64-bit-float default spec.md §9 names). It is
// not the only band: the distance predicates in this package use their
// own pp/ps/ss bands (6, 10, 14). ULPSThreshold is used by the pss circle
// formation's escalation test (package circleevent) and by the event
// scheduler's site-versus-circle tie tolerance (package event).
const ULPSThreshold = 128.0
