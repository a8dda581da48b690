package circleevent

import (
	"math"

	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/predicate"
	"github.com/katalvlaran/voronoi/site"
)

// Existence implements CircleExistence (spec.md §4.6): a cheap rejection
// test run before the more expensive lazy formation. index names, for PPS
// and PSS, which of the three sites (1, 2, or 3) is the odd one out /
// which segment endpoint is in play, per spec.md §4.6.
func Existence(l, m, r site.Site, kind Kind, index int) bool {
	switch kind {
	case PPP:
		return predicate.Orientation(l.P0, m.P0, r.P0) == predicate.Right
	case PPS:
		return existencePPS(l, m, r, index)
	case PSS:
		return existencePSS(l, m, r, index)
	case SSS:
		return l.SortedIndex != m.SortedIndex && m.SortedIndex != r.SortedIndex && l.SortedIndex != r.SortedIndex
	default:
		return false
	}
}

// existencePPS covers the "pps" triple, where the site named by index
// (1, 2, or 3) is the segment and the other two are points, named p1/p2 in
// their original left-to-right triple order (the segment removed). Ported
// from original_source/src/voronoi_predicate.rs:919-951
// (CircleExistencePredicate::pps): when the segment sits in the middle
// (index 2) existence only fails if the segment's two endpoints exactly
// coincide with the flanking points. Otherwise, orient1/orient2 test the
// two points' turn against the segment's start/end; a segment at either
// outer position additionally gates on which point is further along x
// before falling back to the combined "both non-RIGHT" rejection.
func existencePPS(l, m, r site.Site, index int) bool {
	var seg, p1, p2 site.Site
	switch index {
	case 1:
		seg, p1, p2 = l, m, r
	case 2:
		seg, p1, p2 = m, l, r
	default:
		seg, p1, p2 = r, l, m
	}
	if !seg.IsSegment() {
		return false
	}
	if index == 2 {
		return !point.Equal(seg.P0, p1.P0) || !point.Equal(seg.P1, p2.P0)
	}
	orient1 := predicate.Orientation(p1.P0, p2.P0, seg.P0)
	orient2 := predicate.Orientation(p1.P0, p2.P0, seg.P1)
	switch {
	case index == 1 && p1.P0.X >= p2.P0.X:
		return orient1 == predicate.Right
	case index == 3 && p2.P0.X >= p1.P0.X:
		return orient2 == predicate.Right
	default:
		return orient1 == predicate.Right || orient2 == predicate.Right
	}
}

// existencePSS covers "pss": index names which of (l, m, r) is the point,
// the other two (s1, s2, in their original left-to-right order) being the
// segments. Ported from original_source/src/voronoi_predicate.rs:967-991
// (CircleExistencePredicate::pss): any pair of segments sharing a
// sorted_index is rejected outright, including a forward/inverse
// co-inverse pair — the original draws no exception for it. The
// orientation check (a right turn from s1 through the point to s2's far
// endpoint) only runs when the point sits in the middle position
// (index == 2); for index 1 or 3 the segments alone decide existence.
func existencePSS(l, m, r site.Site, index int) bool {
	var p, s1, s2 site.Site
	switch index {
	case 1:
		p, s1, s2 = l, m, r
	case 2:
		p, s1, s2 = m, l, r
	default:
		p, s1, s2 = r, l, m
	}
	if s1.SortedIndex == s2.SortedIndex {
		return false
	}
	if index == 2 {
		if !s1.IsInverse && s2.IsInverse {
			return false
		}
		if s1.IsInverse == s2.IsInverse && predicate.Orientation(s1.P0, p.P0, s2.P1) != predicate.Right {
			return false
		}
	}
	return true
}

// VerticalRangeFilter rejects a formed circle whose y falls outside the
// vertical extent of any vertical-segment site among the triple, with a
// 128-ULP tolerance on both ends (spec.md §4.6 final paragraph).
func VerticalRangeFilter(cy float64, sites ...site.Site) bool {
	const tolerance = 128
	for _, s := range sites {
		if !s.IsVertical() {
			continue
		}
		lo, hi := float64(s.P0.Y), float64(s.P1.Y)
		if lo > hi {
			lo, hi = hi, lo
		}
		mag := math.Max(math.Abs(lo), math.Abs(hi))
		eps := tolerance * (math.Nextafter(mag, math.Inf(1)) - mag)
		if cy < lo-eps || cy > hi+eps {
			return false
		}
	}
	return true
}
