// Package circleevent computes the circumscribing circle of three sites
// adjacent on the beach line — a potential Voronoi vertex — for each of the
// four site-kind configurations (ppp, pps, pss, sss; spec.md §4.6).
//
// Each formation has its own escalation rule to high
// (exactint.Precision-bit) precision. ppp tracks ULP bounds through
// rfpt.Fpt against its own bands: above 24 ULPs the center is recomputed
// with exact rational arithmetic (no square root is needed there except
// for the radius itself), and above 32 ULPs on the radius lower_x is
// recomputed at high precision; pps re-solves at high precision when its
// quadratic's leading coefficient falls within pointBreakpointBand of
// zero; pss wraps its center in rfpt.Fpt and re-solves at high precision
// once that bound exceeds predicate.ULPSThreshold; sss has no fast path
// and always evaluates its Cramer's-rule sums through rfpt.Eval3. The
// high-precision paths re-evaluate the same closed-form construction
// rather than deriving a separate symbolic reduction per configuration —
// see DESIGN.md for why that scope cut was made.
package circleevent
