package beachline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voronoi/beachline"
	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/predicate"
	"github.com/katalvlaran/voronoi/site"
)

func mustPoint(t *testing.T, p point.Point, idx int) site.Site {
	t.Helper()
	s, err := site.NewPoint(p, idx)
	require.NoError(t, err)
	return s
}

func TestBeachlineEmptyHasNoMin(t *testing.T) {
	bl := beachline.New()
	assert.Equal(t, 0, bl.Len())
	assert.Nil(t, bl.Min())
}

func TestBeachlineSingleArcIsItsOwnBounds(t *testing.T) {
	bl := beachline.New()
	s := mustPoint(t, point.New(5, 5), 0)
	arc := &beachline.Arc{CellSite: s}
	arc.Key.Left, arc.Key.Right = s, s

	bl.Insert(arc)
	require.Equal(t, 1, bl.Len())
	assert.Same(t, arc, bl.Min())

	found, ok := bl.ArcAbove(s)
	require.True(t, ok)
	assert.Same(t, arc, found)

	left, right := bl.Neighbors(arc)
	assert.Nil(t, left)
	assert.Nil(t, right)
}

func TestBeachlineDeleteRemovesArc(t *testing.T) {
	bl := beachline.New()
	s := mustPoint(t, point.New(0, 0), 0)
	arc := &beachline.Arc{CellSite: s}
	arc.Key.Left, arc.Key.Right = s, s
	bl.Insert(arc)

	require.True(t, bl.Delete(arc))
	assert.Equal(t, 0, bl.Len())
	assert.False(t, bl.Delete(arc))
}

// splitArc mirrors the three-way split handleSiteEvent performs: an
// existing arc over site "above" is replaced by leftHalf/mid/rightHalf
// when a new site s arrives directly above it.
func splitArc(bl *beachline.Beachline, above *beachline.Arc, s site.Site, leftNeighbor *beachline.Arc) (leftHalf, mid, rightHalf *beachline.Arc) {
	bl.Delete(above)

	leftHalf = &beachline.Arc{CellSite: above.CellSite}
	if leftNeighbor != nil {
		leftHalf.Key.Left = leftNeighbor.CellSite
	} else {
		leftHalf.Key.Left = leftHalf.CellSite
	}
	leftHalf.Key.Right = leftHalf.CellSite
	bl.Insert(leftHalf)

	mid = &beachline.Arc{CellSite: s}
	mid.Key = predicate.NodeKey{Left: leftHalf.CellSite, Right: s}
	bl.Insert(mid)

	rightHalf = &beachline.Arc{CellSite: above.CellSite}
	rightHalf.Key = predicate.NodeKey{Left: s, Right: rightHalf.CellSite}
	bl.Insert(rightHalf)

	return leftHalf, mid, rightHalf
}

func TestBeachlineSplitProducesThreeOrderedArcs(t *testing.T) {
	bl := beachline.New()
	sA := mustPoint(t, point.New(0, 0), 0)
	initial := &beachline.Arc{CellSite: sA}
	initial.Key.Left, initial.Key.Right = sA, sA
	bl.Insert(initial)

	sB := mustPoint(t, point.New(10, 0), 1)
	leftHalf, mid, rightHalf := splitArc(bl, initial, sB, nil)
	require.Equal(t, 3, bl.Len())

	// Ascending tree order after the split: mid, rightHalf, leftHalf.
	// The comparator orders breakpoints by which side of each key holds
	// the newest site (predicate.CompareNodes), not by spatial left-to-
	// right position — both breakpoints created by this split involve
	// sB, so their relative order is decided by that side information
	// rather than by sA/sB's coordinates.
	assert.Same(t, mid, bl.Min())

	left, right := bl.Neighbors(mid)
	assert.Nil(t, left)
	assert.Same(t, rightHalf, right)

	left, right = bl.Neighbors(rightHalf)
	assert.Same(t, mid, left)
	assert.Same(t, leftHalf, right)

	left, right = bl.Neighbors(leftHalf)
	assert.Same(t, rightHalf, left)
	assert.Nil(t, right)
}

func TestBeachlineRekeyMovesLeftBoundAndKeepsArcPresent(t *testing.T) {
	bl := beachline.New()
	sX := mustPoint(t, point.New(0, 0), 0)
	sY := mustPoint(t, point.New(10, 0), 1)
	sZ := mustPoint(t, point.New(20, 0), 2)

	arcX := &beachline.Arc{CellSite: sX}
	arcX.Key.Left, arcX.Key.Right = sX, sX
	bl.Insert(arcX)

	arcY := &beachline.Arc{CellSite: sY}
	arcY.Key = predicate.NodeKey{Left: sX, Right: sY}
	bl.Insert(arcY)

	arcZ := &beachline.Arc{CellSite: sZ}
	arcZ.Key = predicate.NodeKey{Left: sY, Right: sZ}
	bl.Insert(arcZ)
	require.Equal(t, 3, bl.Len())

	// handleCircleEvent's squeeze-out merge: arcY is removed and arcZ's
	// left bound (previously arcY's site) moves to arcX's site.
	bl.Delete(arcY)
	bl.Rekey(arcZ, arcX)
	require.Equal(t, 2, bl.Len())

	assert.Equal(t, sX.SortedIndex, arcZ.Key.Left.SortedIndex)
	assert.Equal(t, sZ.SortedIndex, arcZ.Key.Right.SortedIndex)
	assert.True(t, bl.Delete(arcZ), "arcZ must still be present in the tree after Rekey")
}
