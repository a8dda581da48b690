// Package site defines the input feature type the sweepline core consumes:
// a point or a line segment, tagged with the bookkeeping the beach line and
// event queue need (sorted_index, is_inverse) per spec.md §3.
package site

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/voronoi/point"
)

// MaxCoordinate bounds the safe integer domain for input coordinates. Every
// fast predicate in package predicate multiplies differences of two
// coordinates as int64; keeping |x|,|y| <= MaxCoordinate keeps every such
// product well within int64 range with headroom for a sum of two products.
const MaxCoordinate = 1 << 30

// Kind tags whether a Site is a point or a segment (spec.md §9 "tagged
// variants over inheritance").
type Kind uint8

const (
	// Point sites have P0 == P1.
	Point Kind = iota
	// Segment sites have P0 != P1, with P0 preceding P1 under point.Less
	// unless IsInverse is set.
	Segment
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	if k == Segment {
		return "segment"
	}
	return "point"
}

// Site is one input feature: a point (P0 == P1) or a segment (P0, P1). A
// segment is represented twice during construction — once with P0 preceding
// P1 in point order (IsInverse == false) and once with endpoints swapped
// (IsInverse == true) — per spec.md §3; both copies share SortedIndex.
type Site struct {
	P0, P1      point.Point
	Kind        Kind
	IsInverse   bool
	SortedIndex int
}

// IsSegment reports whether s is a segment site.
func (s Site) IsSegment() bool { return s.Kind == Segment }

// IsPoint reports whether s is a point site.
func (s Site) IsPoint() bool { return s.Kind == Point }

// IsVertical reports whether a segment site is vertical (P0.X == P1.X).
// Always false for point sites.
func (s Site) IsVertical() bool {
	return s.Kind == Segment && s.P0.X == s.P1.X
}

// Leftmost returns the site's leftmost point under point.Less. For a
// segment this is point.Min(P0, P1) regardless of IsInverse: the inverse
// representation swaps which endpoint is labelled P0 vs P1 (so algorithms
// that care about direction, e.g. the pps/pss circle formations, see the
// endpoints in the opposite order) but it denotes the same two locations.
func (s Site) Leftmost() point.Point {
	return point.Min(s.P0, s.P1)
}

// Rightmost returns the site's rightmost point (the complement of
// Leftmost).
func (s Site) Rightmost() point.Point {
	return point.Max(s.P0, s.P1)
}

// validateCoordinate returns ErrCoordinateRange if p falls outside the safe
// integer domain.
func validateCoordinate(p point.Point) error {
	if p.X > MaxCoordinate || p.X < -MaxCoordinate || p.Y > MaxCoordinate || p.Y < -MaxCoordinate {
		return fmt.Errorf("validateCoordinate: (%d,%d): %w", p.X, p.Y, ErrCoordinateRange)
	}
	return nil
}

// NewPoint returns a point Site for p at the given pre-sort index.
//
// Errors: ErrCoordinateRange if p is outside the safe domain.
func NewPoint(p point.Point, sortedIndex int) (Site, error) {
	if err := validateCoordinate(p); err != nil {
		return Site{}, fmt.Errorf("NewPoint: %w", err)
	}
	return Site{P0: p, P1: p, Kind: Point, SortedIndex: sortedIndex}, nil
}

// NewSegment returns the two representations (forward, inverse) of the
// segment a-b at the given pre-sort index. The forward Site always has P0
// preceding P1 under point.Less; the inverse Site has endpoints swapped.
//
// Errors: ErrDegenerateSegment if a == b, ErrCoordinateRange if either
// endpoint is outside the safe domain.
func NewSegment(a, b point.Point, sortedIndex int) (forward, inverse Site, err error) {
	if err = validateCoordinate(a); err != nil {
		return Site{}, Site{}, fmt.Errorf("NewSegment: %w", err)
	}
	if err = validateCoordinate(b); err != nil {
		return Site{}, Site{}, fmt.Errorf("NewSegment: %w", err)
	}
	if point.Equal(a, b) {
		return Site{}, Site{}, fmt.Errorf("NewSegment: (%d,%d): %w", a.X, a.Y, ErrDegenerateSegment)
	}

	lo, hi := a, b
	if point.Less(hi, lo) {
		lo, hi = hi, lo
	}
	forward = Site{P0: lo, P1: hi, Kind: Segment, SortedIndex: sortedIndex}
	inverse = Site{P0: hi, P1: lo, Kind: Segment, IsInverse: true, SortedIndex: sortedIndex}
	return forward, inverse, nil
}

// ValidateNoOverlap reports ErrOverlappingSegments if any two segment sites
// among segs are collinear and share an interior point. This is an O(n^2)
// pairwise check, intended for moderate input sizes at the builder
// boundary (spec.md §7); the core sweep itself is never asked to validate.
func ValidateNoOverlap(segs []Site) error {
	for i := 0; i < len(segs); i++ {
		if !segs[i].IsSegment() || segs[i].IsInverse {
			continue
		}
		for j := i + 1; j < len(segs); j++ {
			if !segs[j].IsSegment() || segs[j].IsInverse {
				continue
			}
			if segmentsOverlap(segs[i], segs[j]) {
				return fmt.Errorf("ValidateNoOverlap: segments %d and %d: %w",
					segs[i].SortedIndex, segs[j].SortedIndex, ErrOverlappingSegments)
			}
		}
	}
	return nil
}

// segmentsOverlap reports whether two collinear segments share an interior
// point. Non-collinear segments never "overlap" in this sense (they may
// cross at a single point, which is a valid Voronoi configuration).
func segmentsOverlap(a, b Site) bool {
	if cross(a.P0, a.P1, b.P0) != 0 || cross(a.P0, a.P1, b.P1) != 0 {
		return false // not collinear
	}
	// Collinear: project onto the dominant axis and test interval overlap
	// with more than a shared endpoint.
	aLo, aHi := projection(a)
	bLo, bHi := projection(b)
	lo := aLo
	if bLo > lo {
		lo = bLo
	}
	hi := aHi
	if bHi < hi {
		hi = bHi
	}
	return lo < hi
}

func cross(o, p, q point.Point) int64 {
	ax := int64(p.X) - int64(o.X)
	ay := int64(p.Y) - int64(o.Y)
	bx := int64(q.X) - int64(o.X)
	by := int64(q.Y) - int64(o.Y)
	return ax*by - ay*bx
}

// projection returns an ordered (lo, hi) pair along whichever axis the
// segment actually varies on, for interval-overlap comparisons of
// collinear segments.
func projection(s Site) (lo, hi int64) {
	if s.P0.X != s.P1.X {
		lo, hi = int64(s.P0.X), int64(s.P1.X)
	} else {
		lo, hi = int64(s.P0.Y), int64(s.P1.Y)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// SortBySortedIndex is a convenience for restoring input order after
// round-tripping through a map; the builder facade does not call it.
func SortBySortedIndex(sites []Site) {
	sort.Slice(sites, func(i, j int) bool { return sites[i].SortedIndex < sites[j].SortedIndex })
}
