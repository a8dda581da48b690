// SPDX-License-Identifier: MIT
package site

import "errors"

// Sentinel errors for site construction. These are the InvalidInput
// taxonomy of spec.md §7 — the core sweep is never entered on a rejected
// input, so none of these can occur once a []Site has been accepted.
var (
	// ErrDegenerateSegment is returned for a segment whose two endpoints
	// coincide (a point masquerading as a segment).
	ErrDegenerateSegment = errors.New("site: segment endpoints coincide")

	// ErrCoordinateRange is returned when a coordinate falls outside the
	// safe integer domain (see MaxCoordinate) in which every fast geometric
	// predicate's int64 arithmetic is guaranteed not to overflow.
	ErrCoordinateRange = errors.New("site: coordinate out of safe range")

	// ErrOverlappingSegments is returned by validation helpers that detect
	// two input segments sharing a collinear interior, which the sweep
	// cannot resolve into distinct cells.
	ErrOverlappingSegments = errors.New("site: segments overlap")
)
