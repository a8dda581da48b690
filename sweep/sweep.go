package sweep

import (
	"fmt"

	"github.com/katalvlaran/voronoi/beachline"
	"github.com/katalvlaran/voronoi/circleevent"
	"github.com/katalvlaran/voronoi/diagram"
	"github.com/katalvlaran/voronoi/event"
	"github.com/katalvlaran/voronoi/predicate"
	"github.com/katalvlaran/voronoi/site"
)

// Build runs Fortune's sweep over sites (already pre-sorted by
// predicate.SiteEventLess, per event.SiteQueue's contract) and streams the
// result to sink. It follows the wanghanting/voronoi reference file's
// Generate/HandleNextEvent loop: pop the next event, dispatch on its kind,
// repeat until both the site stream and the circle-event queue are empty
// (spec.md §5).
func Build(sites []site.Site, sink diagram.Sink, opts ...Option) error {
	if len(sites) == 0 {
		return ErrNoSites
	}
	cfg := newConfig(opts...)

	d := &driver{
		bl:         beachline.New(),
		sched:      event.NewScheduler(event.NewSiteQueue(sites)),
		sink:       sink,
		edgeStart:  make(map[int]*diagram.Vertex),
		nextEdgeID: 1, // 0 is the zero-value sentinel for "no edge yet"
	}

	processed := 0
	for {
		kind, s, arc, ok := d.sched.Next()
		if !ok {
			break
		}
		if cfg.maxEvents > 0 && processed >= cfg.maxEvents {
			return fmt.Errorf("Build: %w", ErrEventBudgetExceeded)
		}
		processed++

		switch kind {
		case event.SiteEvent:
			d.handleSiteEvent(s)
		case event.CircleEventKind:
			d.handleCircleEvent(arc)
		}
	}
	d.flushOpenEdges()
	return nil
}

// flushOpenEdges emits every bisector edge still open once the event
// stream is drained: each surviving arc's EdgeID names the boundary
// between it and its current right neighbor (spec.md §8's "unbounded
// edges" cases), and never received a closing circle event, so it is
// reported with a nil End.
func (d *driver) flushOpenEdges() {
	for _, arc := range d.bl.Arcs() {
		if arc.EdgeID == 0 {
			continue
		}
		_, right := d.bl.Neighbors(arc)
		if right == nil {
			continue
		}
		start := d.edgeStart[arc.EdgeID]
		d.sink.OnEdge(diagram.Edge{SiteL: arc.CellSite, SiteR: right.CellSite, Start: start, End: nil})
	}
}

// driver holds the mutable state one Build call threads through the sweep:
// the beach line, the merged event scheduler, the output sink, and the
// bookkeeping needed to pair each bisector edge's eventual Start vertex
// (assigned at the circle event that opens it) with its End vertex
// (assigned at the circle event that closes it). edgeStart is keyed by an
// arc's EdgeID, which always names the bisector edge between that arc and
// its current right neighbor.
type driver struct {
	bl           *beachline.Beachline
	sched        *event.Scheduler
	sink         diagram.Sink
	edgeStart    map[int]*diagram.Vertex
	nextEdgeID   int
	nextVertexID int
}

func (d *driver) newEdgeID() int {
	id := d.nextEdgeID
	d.nextEdgeID++
	return id
}

// newVertex allocates the next vertex identity. Vertex.ID is assigned
// here, by the driver, rather than by the Sink: Sink is a plain
// callback interface any caller can implement, and identity must stay
// stable across implementations.
func (d *driver) newVertex(cx, cy float64) diagram.Vertex {
	v := diagram.Vertex{ID: d.nextVertexID, X: cx, Y: cy}
	d.nextVertexID++
	return v
}

// disarm cancels arc's pending circle event, if any (spec.md §4.7: a site
// or circle event that changes arc's neighbors invalidates any circle
// event already queued for it — a "false alarm").
func disarm(arc *beachline.Arc) {
	if arc == nil {
		return
	}
	if arc.Circle != nil {
		arc.Circle.Active = false
	}
	arc.State = beachline.Live
}

// handleSiteEvent implements spec.md §4.7's site-event branch: locate the
// arc above the new site, split it in three, and test the two newly
// adjacent triples for circle events.
func (d *driver) handleSiteEvent(s site.Site) {
	if d.bl.Len() == 0 {
		arc := &beachline.Arc{CellSite: s}
		arc.Key = predicate.NodeKey{Left: s, Right: s}
		d.bl.Insert(arc)
		return
	}

	above, ok := d.bl.ArcAbove(s)
	if !ok {
		arc := &beachline.Arc{CellSite: s}
		arc.Key = predicate.NodeKey{Left: s, Right: s}
		d.bl.Insert(arc)
		return
	}
	disarm(above)

	leftNeighbor, rightNeighbor := d.bl.Neighbors(above)
	aboveEdgeID := above.EdgeID
	d.bl.Delete(above)

	leftHalf := &beachline.Arc{CellSite: above.CellSite}
	if leftNeighbor != nil {
		leftHalf.Key.Left = leftNeighbor.CellSite
	} else {
		leftHalf.Key.Left = leftHalf.CellSite
	}
	leftHalf.Key.Right = leftHalf.CellSite
	d.bl.Insert(leftHalf)

	mid := &beachline.Arc{CellSite: s}
	mid.Key = predicate.NodeKey{Left: leftHalf.CellSite, Right: s}
	mid.EdgeID = d.newEdgeID() // mid's right boundary: mid | rightHalf
	d.bl.Insert(mid)

	rightHalf := &beachline.Arc{CellSite: above.CellSite}
	rightHalf.Key = predicate.NodeKey{Left: s, Right: rightHalf.CellSite}
	rightHalf.EdgeID = aboveEdgeID // this boundary (rightHalf | rightNeighbor) is unchanged by the split
	d.bl.Insert(rightHalf)

	leftHalf.EdgeID = d.newEdgeID() // leftHalf's right boundary: leftHalf | mid

	d.sink.OnArcSplit(diagram.ArcSplit{Old: above.CellSite, NewLeft: leftHalf.CellSite, NewRight: mid.CellSite})

	if leftNeighbor != nil {
		d.tryArmCircle(leftNeighbor, leftHalf, mid)
	}
	if rightNeighbor != nil {
		d.tryArmCircle(mid, rightHalf, rightNeighbor)
	}
}

// handleCircleEvent implements spec.md §4.7's circle-event branch: emit
// the converged vertex, close out the two bisector edges that met there,
// remove the squeezed arc, and re-test the triple formed by its former
// neighbors.
func (d *driver) handleCircleEvent(arc *beachline.Arc) {
	if arc == nil || arc.State == beachline.Dead || arc.Circle == nil || !arc.Circle.Active {
		return // stale: event.CircleQueue.PeekReady already filters this case
	}

	left, right := d.bl.Neighbors(arc)
	if left == nil || right == nil {
		arc.Circle.Active = false
		return
	}
	disarm(left)
	disarm(right)

	v := d.newVertex(arc.Circle.CX, arc.Circle.CY)
	d.sink.OnVertex(v, left.CellSite, arc.CellSite, right.CellSite)

	leftStart := d.edgeStart[left.EdgeID]
	d.sink.OnEdge(diagram.Edge{SiteL: left.CellSite, SiteR: arc.CellSite, Start: leftStart, End: &v})
	rightStart := d.edgeStart[arc.EdgeID]
	d.sink.OnEdge(diagram.Edge{SiteL: arc.CellSite, SiteR: right.CellSite, Start: rightStart, End: &v})
	delete(d.edgeStart, left.EdgeID)
	delete(d.edgeStart, arc.EdgeID)

	arc.State = beachline.Dead
	d.bl.Delete(arc)

	newEdgeID := d.newEdgeID()
	d.edgeStart[newEdgeID] = &v
	left.EdgeID = newEdgeID // left's right boundary is now left | right, opening at v
	d.bl.Rekey(right, left)

	llNeighbor, _ := d.bl.Neighbors(left)
	_, rrNeighbor := d.bl.Neighbors(right)
	if llNeighbor != nil {
		d.tryArmCircle(llNeighbor, left, right)
	}
	if rrNeighbor != nil {
		d.tryArmCircle(left, right, rrNeighbor)
	}
}

// tryArmCircle tests whether (left, center, right) converges to a circle
// event and, if so, arms center with it and pushes center onto the
// circle-event queue.
func (d *driver) tryArmCircle(left, center, right *beachline.Arc) {
	ev, ok := formCircle(left.CellSite, center.CellSite, right.CellSite)
	if !ok {
		return
	}
	center.Circle = &ev
	center.State = beachline.CircleArmed
	d.sched.Circles().Push(center)
}

// formCircle runs CircleExistence then the matching lazy-formation
// function for the (l, m, r) triple (spec.md §4.6), applying
// VerticalRangeFilter to the candidate vertex before accepting it.
func formCircle(l, m, r site.Site) (circleevent.Event, bool) {
	kind, index := classify(l, m, r)
	if !circleevent.Existence(l, m, r, kind, index) {
		return circleevent.Event{}, false
	}

	var ev circleevent.Event
	var ok bool
	switch kind {
	case circleevent.PPP:
		ev, ok = circleevent.FormPPP(l, m, r)
	case circleevent.PPS:
		ev, ok = circleevent.FormPPS(l, m, r, index)
	case circleevent.PSS:
		ev, ok = circleevent.FormPSS(l, m, r, index)
	case circleevent.SSS:
		ev, ok = circleevent.FormSSS(l, m, r)
	}
	if !ok {
		return circleevent.Event{}, false
	}
	if !circleevent.VerticalRangeFilter(ev.CY, l, m, r) {
		return circleevent.Event{}, false
	}
	ev.Active = true
	return ev, true
}

// classify maps a site triple to its circleevent.Kind and, for the mixed
// ppp/pps/pss configurations, the 1-based position of the odd site out
// (the lone segment in a pps triple, or the lone point in a pss triple).
func classify(l, m, r site.Site) (circleevent.Kind, int) {
	points := 0
	for _, s := range [3]site.Site{l, m, r} {
		if s.IsPoint() {
			points++
		}
	}
	switch points {
	case 3:
		return circleevent.PPP, 0
	case 0:
		return circleevent.SSS, 0
	case 2:
		switch {
		case l.IsSegment():
			return circleevent.PPS, 1
		case m.IsSegment():
			return circleevent.PPS, 2
		default:
			return circleevent.PPS, 3
		}
	default: // points == 1
		switch {
		case l.IsPoint():
			return circleevent.PSS, 1
		case m.IsPoint():
			return circleevent.PSS, 2
		default:
			return circleevent.PSS, 3
		}
	}
}
