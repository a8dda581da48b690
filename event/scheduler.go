package event

import (
	"math"

	"github.com/katalvlaran/voronoi/beachline"
	"github.com/katalvlaran/voronoi/predicate"
	"github.com/katalvlaran/voronoi/site"
)

// Kind tags which queue produced the event the Scheduler returned.
type Kind uint8

const (
	// SiteEvent carries a Site.
	SiteEvent Kind = iota
	// CircleEventKind carries an Arc whose pending circle fired.
	CircleEventKind
)

// Scheduler interleaves the site-event stream and the circle-event queue
// into the single total order event_comparison_predicate_if defines
// (spec.md §4.7, §5): lexicographic on sweep-x, with site-before-circle
// when the two compare equal within ULP.
type Scheduler struct {
	sites   *SiteQueue
	circles *CircleQueue
}

// NewScheduler returns a Scheduler over the given site stream, with a
// fresh empty circle-event queue.
func NewScheduler(sites *SiteQueue) *Scheduler {
	return &Scheduler{sites: sites, circles: NewCircleQueue()}
}

// Circles exposes the circle-event queue so the sweep driver can push new
// circle events as it discovers them.
func (s *Scheduler) Circles() *CircleQueue { return s.circles }

// Empty reports whether every event (site and circle) has been consumed.
func (s *Scheduler) Empty() bool {
	return s.sites.Empty() && s.circles.Empty()
}

// Next consumes and returns the next event in sweep order.
func (s *Scheduler) Next() (kind Kind, nextSite site.Site, nextArc *beachline.Arc, ok bool) {
	sEvt, sOK := s.sites.Peek()
	cArc, cOK := s.circles.PeekReady()

	switch {
	case !sOK && !cOK:
		return 0, site.Site{}, nil, false
	case sOK && !cOK:
		s.sites.Pop()
		return SiteEvent, sEvt, nil, true
	case !sOK && cOK:
		s.circles.PopReady()
		return CircleEventKind, site.Site{}, cArc, true
	default:
		if siteFirst(sEvt, cArc) {
			s.sites.Pop()
			return SiteEvent, sEvt, nil, true
		}
		s.circles.PopReady()
		return CircleEventKind, site.Site{}, cArc, true
	}
}

// siteFirst reports whether the site event sorts before (or ties with,
// per spec.md's site-before-circle rule) the circle event.
func siteFirst(s site.Site, arc *beachline.Arc) bool {
	siteX := float64(s.Leftmost().X)
	circleX := arc.Circle.LowerX
	const tolerance = predicate.ULPSThreshold
	mag := absF(circleX)
	eps := tolerance * (math.Nextafter(mag, math.Inf(1)) - mag)
	return siteX <= circleX+eps
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
