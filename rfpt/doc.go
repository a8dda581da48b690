// Package rfpt implements the fast-path numeric currency of the sweepline:
// floating values tagged with a conservative ULP error bound (RobustFpt),
// their difference-represented counterpart (RobustDif), and an exact
// sum-of-square-roots evaluator (SqrtExpr) used when a predicate needs more
// precision than float64 alone can certify.
//
// Every predicate in package predicate and every circle formation in
// package circleevent that cannot decide a sign from plain float64 math
// escalates through these types before falling back to the fully exact
// integer path in package exactint. The error-propagation identities below
// are exactly those of spec.md §4.1; nothing here is approximate beyond the
// conservative bounds the identities themselves specify.
package rfpt
