package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/predicate"
)

func TestCompareNodesDegenerateKeyIsReflexiveFree(t *testing.T) {
	s := mustPoint(t, point.New(0, 0), 0)
	k := predicate.NodeKey{Left: s, Right: s}
	assert.False(t, predicate.CompareNodes(k, k))
}

func TestCompareNodesOrdersByComparisonSiteIndexAtEqualX(t *testing.T) {
	// Same x, different sorted_index: step 2 of spec.md §4.5 (comparison
	// site's sorted_index) picks the branch, and within it the comparison
	// y values (0 against 5) decide the order.
	a := mustPoint(t, point.New(0, 0), 0)
	b := mustPoint(t, point.New(0, 5), 1)

	left := predicate.NodeKey{Left: a, Right: a}
	right := predicate.NodeKey{Left: b, Right: b}
	assert.True(t, predicate.CompareNodes(left, right))
	assert.False(t, predicate.CompareNodes(right, left))
}

func TestCompareNodesIsAntisymmetric(t *testing.T) {
	a := mustPoint(t, point.New(0, 0), 0)
	b := mustPoint(t, point.New(5, 3), 1)
	c := mustPoint(t, point.New(10, -2), 2)

	keys := []predicate.NodeKey{
		{Left: a, Right: a},
		{Left: b, Right: b},
		{Left: c, Right: c},
	}
	for i := range keys {
		for j := range keys {
			if i == j {
				continue
			}
			li, lj := predicate.CompareNodes(keys[i], keys[j]), predicate.CompareNodes(keys[j], keys[i])
			assert.False(t, li && lj, "CompareNodes must not report both a<b and b<a")
		}
	}
}
