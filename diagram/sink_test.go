package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voronoi/diagram"
	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/site"
)

func mustPoint(t *testing.T, p point.Point, idx int) site.Site {
	t.Helper()
	s, err := site.NewPoint(p, idx)
	require.NoError(t, err)
	return s
}

func TestRecordingSinkCollectsInEmissionOrder(t *testing.T) {
	sink := diagram.NewRecordingSink()
	a := mustPoint(t, point.New(0, 0), 0)
	b := mustPoint(t, point.New(1, 0), 1)
	c := mustPoint(t, point.New(2, 0), 2)

	sink.OnArcSplit(diagram.ArcSplit{Old: a, NewLeft: a, NewRight: b})

	v := diagram.Vertex{ID: 0, X: 0.5, Y: 0.5}
	sink.OnVertex(v, a, b, c)

	sink.OnEdge(diagram.Edge{SiteL: a, SiteR: b, Start: &v, End: nil})

	require.Len(t, sink.ArcSplits, 1)
	assert.Equal(t, b.SortedIndex, sink.ArcSplits[0].NewRight.SortedIndex)

	require.Len(t, sink.Vertices, 1)
	assert.Equal(t, v, sink.Vertices[0])

	require.Len(t, sink.Edges, 1)
	assert.Same(t, &v, sink.Edges[0].Start)
	assert.Nil(t, sink.Edges[0].End)
}

func TestRecordingSinkStartsEmpty(t *testing.T) {
	sink := diagram.NewRecordingSink()
	assert.Empty(t, sink.Vertices)
	assert.Empty(t, sink.Edges)
	assert.Empty(t, sink.ArcSplits)
}
