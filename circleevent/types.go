package circleevent

// Kind tags which of the four site-kind configurations a circle-event
// candidate triple has (spec.md §3 "CircleEvent", §9 "tagged variants over
// inheritance").
type Kind uint8

const (
	PPP Kind = iota
	PPS
	PSS
	SSS
)

// Event is a candidate Voronoi vertex: the center of the circle touching
// all three generator sites, and lower_x = cx + r, the sweep-x at which the
// event fires (spec.md §3 "CircleEvent").
type Event struct {
	CX, CY, LowerX float64
	Active         bool
}
