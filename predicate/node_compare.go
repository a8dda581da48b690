package predicate

import (
	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/site"
)

// NodeKey is a beach-line key: the pair of sites bounding one arc,
// left_site and right_site of spec.md §3 "BeachLine key". A key with
// Left == Right (by SortedIndex and Kind) denotes the degenerate initial
// arc created at the very first site event.
type NodeKey struct {
	Left, Right site.Site
}

// comparisonSite picks whichever of a node's two bounding sites has the
// larger SortedIndex (spec.md §4.5 step 1) — the more recently
// encountered site is the one whose position determines the key's
// current location relative to the sweepline. Right wins a tie: a
// node's Right bound is always its own CellSite, so when both bounds
// share an index (the degenerate initial-arc key) the site itself is
// the natural choice.
func comparisonSite(k NodeKey) site.Site {
	if k.Left.SortedIndex > k.Right.SortedIndex {
		return k.Left
	}
	return k.Right
}

// comparisonPoint picks whichever of a site's two points is smaller under
// the point order (spec.md §4.5 step 2); for a point site both points
// coincide.
func comparisonPoint(s site.Site) point.Point {
	return s.Leftmost()
}

// comparisonY implements get_comparison_y (spec.md §4.5 / §9 Open
// Question (b)): a node's key only records its left-neighbor bound and
// its own site, so two keys that both involve the same newest site (a
// freshly split arc's left edge and the mirrored right edge of its new
// neighbor) must be told apart by WHICH side that site sits on, not
// merely which site it is. isNewNode distinguishes a key being compared
// fresh (both its bounds came from the site event just processed) from
// one being compared against a key created later.
func comparisonY(k NodeKey, isNewNode bool) (y int32, direction int) {
	if k.Left.SortedIndex == k.Right.SortedIndex {
		return k.Left.P0.Y, 0
	}
	if k.Left.SortedIndex > k.Right.SortedIndex {
		if !isNewNode && k.Left.IsSegment() && k.Left.IsVertical() {
			return k.Left.P0.Y, 1
		}
		return k.Left.P1.Y, 1
	}
	return k.Right.P0.Y, -1
}

// CompareNodes implements node_comparison_predicate (spec.md §4.5): the
// strict total order beach-line keys must satisfy at the current sweep
// position. It reports whether a sorts strictly before b.
func CompareNodes(a, b NodeKey) bool {
	siteA, siteB := comparisonSite(a), comparisonSite(b)
	capA, capB := comparisonPoint(siteA), comparisonPoint(siteB)

	if capA.X != capB.X {
		if capA.X < capB.X {
			// b carries the new site.
			return DistancePredicate(a.Left, a.Right, capB)
		}
		// a carries the new site.
		return !DistancePredicate(b.Left, b.Right, capA)
	}

	switch {
	case siteA.SortedIndex == siteB.SortedIndex:
		// Both nodes were produced by the same site event.
		yA, dirA := comparisonY(a, true)
		yB, dirB := comparisonY(b, true)
		if yA != yB {
			return yA < yB
		}
		return dirA < dirB
	case siteA.SortedIndex < siteB.SortedIndex:
		yA, dirA := comparisonY(a, false)
		yB, _ := comparisonY(b, true)
		if yA != yB {
			return yA < yB
		}
		if siteA.IsSegment() {
			return false
		}
		return dirA < 0
	default:
		yA, _ := comparisonY(a, true)
		yB, dirB := comparisonY(b, false)
		if yA != yB {
			return yA < yB
		}
		if siteB.IsSegment() {
			return true
		}
		return dirB > 0
	}
}
