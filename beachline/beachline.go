package beachline

import (
	"github.com/google/btree"

	"github.com/katalvlaran/voronoi/circleevent"
	"github.com/katalvlaran/voronoi/predicate"
	"github.com/katalvlaran/voronoi/site"
)

// degree is the btree branching factor. The beach line is a small working
// set relative to typical btree workloads; a modest degree keeps node
// splits cheap without materially affecting lookup depth.
const degree = 16

// State is the per-arc state machine of spec.md §4.7: an arc starts Live,
// becomes CircleArmed once a circle event referencing it has been pushed,
// and is marked Dead the instant a circle event evicts it (the node is
// removed from the tree at that point; Dead is only observed transiently
// by a caller holding a stale *Arc).
type State uint8

const (
	Live State = iota
	CircleArmed
	Dead
)

// Arc is one beach-line node, with an optional back-reference to a
// pending circle event. CellSite is the arc's own generator site (the
// site whose parabola/line this arc traces). Key.Right always equals
// CellSite; Key.Left is the CellSite of the arc's current left neighbor,
// or CellSite itself when this arc is the leftmost (or only) arc on the
// line. This makes a key degenerate (predicate.NodeKey.degenerate, Left
// == Right) exactly when the arc has no left neighbor, matching
// node_comparison_predicate's treatment of the unbounded left edge
// (spec.md §4.5).
type Arc struct {
	Key      predicate.NodeKey
	CellSite site.Site
	EdgeID   int
	Circle   *circleevent.Event
	State    State
}

// Beachline is the ordered collection of arcs currently on the sweep
// line, exclusively owned by the sweep driver (spec.md §5).
type Beachline struct {
	tree *btree.BTreeG[*Arc]
}

// New returns an empty beach line.
func New() *Beachline {
	return &Beachline{
		tree: btree.NewG(degree, func(a, b *Arc) bool {
			return predicate.CompareNodes(a.Key, b.Key)
		}),
	}
}

// Len reports the number of arcs currently present.
func (bl *Beachline) Len() int {
	return bl.tree.Len()
}

// Insert adds arc to the beach line.
func (bl *Beachline) Insert(arc *Arc) {
	bl.tree.ReplaceOrInsert(arc)
}

// Delete removes arc from the beach line. It reports whether arc was
// present.
func (bl *Beachline) Delete(arc *Arc) bool {
	_, ok := bl.tree.Delete(arc)
	return ok
}

// queryArc wraps a site in a degenerate NodeKey so it can be used as a
// btree pivot: comparisonSite/comparisonPoint treat Left==Right as the
// site itself, matching how a new site event is compared against existing
// arc keys (spec.md §4.5's degenerate-node case).
func queryArc(s site.Site) *Arc {
	return &Arc{Key: predicate.NodeKey{Left: s, Right: s}}
}

// ArcAbove returns the arc whose interval contains s: the greatest key
// that does not compare strictly after s under CompareNodes (spec.md
// §4.7 step 2, "find the arc directly above the new site").
func (bl *Beachline) ArcAbove(s site.Site) (*Arc, bool) {
	pivot := queryArc(s)
	var found *Arc
	bl.tree.DescendLessOrEqual(pivot, func(item *Arc) bool {
		found = item
		return false
	})
	if found == nil {
		// every arc sorts after s: there is no predecessor, so the
		// leftmost arc is the one directly above (beach line is
		// unbounded on both ends).
		bl.tree.Ascend(func(item *Arc) bool {
			found = item
			return false
		})
	}
	if found == nil {
		return nil, false
	}
	return found, true
}

// Neighbors returns the arcs immediately to the left and right of arc, or
// nil when arc is the first/last arc on the line.
func (bl *Beachline) Neighbors(arc *Arc) (left, right *Arc) {
	bl.tree.DescendLessOrEqual(arc, func(item *Arc) bool {
		if item == arc {
			return true // keep descending past the pivot itself
		}
		left = item
		return false
	})
	bl.tree.AscendGreaterOrEqual(arc, func(item *Arc) bool {
		if item == arc {
			return true
		}
		right = item
		return false
	})
	return left, right
}

// Rekey updates arc's left-neighbor bound and repositions it in the tree.
// Callers must invoke this whenever an operation changes which arc sits
// immediately to arc's left (an insertion or deletion of that neighbor);
// the tree's ordering relies on Key.Left tracking the live left neighbor.
func (bl *Beachline) Rekey(arc *Arc, leftNeighbor *Arc) {
	bl.tree.Delete(arc)
	if leftNeighbor == nil {
		arc.Key.Left = arc.CellSite
	} else {
		arc.Key.Left = leftNeighbor.CellSite
	}
	bl.tree.ReplaceOrInsert(arc)
}

// Min returns the leftmost arc, or nil if the beach line is empty.
func (bl *Beachline) Min() *Arc {
	item, ok := bl.tree.Min()
	if !ok {
		return nil
	}
	return item
}

// Arcs returns every arc currently on the beach line, in ascending tree
// order. Callers use this once the event stream is drained, to flush any
// bisector still open at the end of the sweep (spec.md §8's "unbounded
// edges" cases).
func (bl *Beachline) Arcs() []*Arc {
	arcs := make([]*Arc, 0, bl.tree.Len())
	bl.tree.Ascend(func(item *Arc) bool {
		arcs = append(arcs, item)
		return true
	})
	return arcs
}
