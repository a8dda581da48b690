package circleevent_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voronoi/circleevent"
	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/site"
)

// distToPoint and distToLine are independent reference computations (not
// shared with package circleevent) used to check the equidistance
// invariant spec.md §8 requires of every emitted vertex.
func distToPoint(cx, cy float64, p point.Point) float64 {
	dx := cx - float64(p.X)
	dy := cy - float64(p.Y)
	return math.Hypot(dx, dy)
}

func distToLine(cx, cy float64, s site.Site) float64 {
	ax, ay := float64(s.P0.X), float64(s.P0.Y)
	bx, by := float64(s.P1.X), float64(s.P1.Y)
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	// |cross((b-a),(c-a))| / |b-a|
	cross := dx*(cy-ay) - dy*(cx-ax)
	return math.Abs(cross) / length
}

func TestFormPPPKnownRightTriangle(t *testing.T) {
	l, err := site.NewPoint(point.New(0, 0), 0)
	require.NoError(t, err)
	m, err := site.NewPoint(point.New(0, 4), 1)
	require.NoError(t, err)
	r, err := site.NewPoint(point.New(4, 0), 2)
	require.NoError(t, err)

	require.True(t, circleevent.Existence(l, m, r, circleevent.PPP, 0))
	ev, ok := circleevent.FormPPP(l, m, r)
	require.True(t, ok)

	assert.InDelta(t, 2.0, ev.CX, 1e-9)
	assert.InDelta(t, 2.0, ev.CY, 1e-9)
	wantRadius := math.Sqrt(8)
	assert.InDelta(t, 2+wantRadius, ev.LowerX, 1e-9)

	assert.InDelta(t, wantRadius, distToPoint(ev.CX, ev.CY, l.P0), 1e-9)
	assert.InDelta(t, wantRadius, distToPoint(ev.CX, ev.CY, m.P0), 1e-9)
	assert.InDelta(t, wantRadius, distToPoint(ev.CX, ev.CY, r.P0), 1e-9)
}

func TestFormPPPRejectsCollinear(t *testing.T) {
	l, _ := site.NewPoint(point.New(0, 0), 0)
	m, _ := site.NewPoint(point.New(1, 0), 1)
	r, _ := site.NewPoint(point.New(2, 0), 2)
	_, ok := circleevent.FormPPP(l, m, r)
	assert.False(t, ok)
}

func TestFormPPSEquidistant(t *testing.T) {
	seg, _, err := site.NewSegment(point.New(10, -10), point.New(10, 10), 0)
	require.NoError(t, err)
	p1, err := site.NewPoint(point.New(0, 5), 1)
	require.NoError(t, err)
	p2, err := site.NewPoint(point.New(0, -5), 2)
	require.NoError(t, err)

	ev, ok := circleevent.FormPPS(p1, p2, seg, 3)
	require.True(t, ok)

	dPoint := distToPoint(ev.CX, ev.CY, p1.P0)
	dPoint2 := distToPoint(ev.CX, ev.CY, p2.P0)
	dSeg := distToLine(ev.CX, ev.CY, seg)

	assert.InDelta(t, dPoint, dPoint2, 1e-6)
	assert.InDelta(t, dPoint, dSeg, 1e-6)
}

func TestFormSSSEquidistant(t *testing.T) {
	top, _, err := site.NewSegment(point.New(0, 10), point.New(10, 10), 0)
	require.NoError(t, err)
	left, _, err := site.NewSegment(point.New(0, 0), point.New(0, 10), 1)
	require.NoError(t, err)
	_, bottom, err := site.NewSegment(point.New(0, 0), point.New(10, 0), 2)
	require.NoError(t, err)

	ev, ok := circleevent.FormSSS(top, left, bottom)
	require.True(t, ok)

	dTop := distToLine(ev.CX, ev.CY, top)
	dLeft := distToLine(ev.CX, ev.CY, left)
	dBottom := distToLine(ev.CX, ev.CY, bottom)

	assert.InDelta(t, dTop, dLeft, 1e-6)
	assert.InDelta(t, dLeft, dBottom, 1e-6)
}

func TestFormPSSEquidistant(t *testing.T) {
	s1, _, err := site.NewSegment(point.New(0, 0), point.New(0, 10), 0)
	require.NoError(t, err)
	s2, _, err := site.NewSegment(point.New(10, 0), point.New(10, 10), 1)
	require.NoError(t, err)
	p, err := site.NewPoint(point.New(5, 20), 2)
	require.NoError(t, err)

	ev, ok := circleevent.FormPSS(p, s1, s2, 1)
	require.True(t, ok)

	dPoint := distToPoint(ev.CX, ev.CY, p.P0)
	dS1 := distToLine(ev.CX, ev.CY, s1)
	dS2 := distToLine(ev.CX, ev.CY, s2)

	assert.InDelta(t, dPoint, dS1, 1e-6)
	assert.InDelta(t, dS1, dS2, 1e-6)
}
