package sweep

import "errors"

// ErrNoSites indicates Build was called with an empty site stream.
var ErrNoSites = errors.New("sweep: no sites")

// ErrEventBudgetExceeded indicates WithMaxEvents's cap was reached before
// the event streams drained. Any cap below the number of events the input
// produces triggers it, valid input included; with a generous cap it
// guards Build against looping forever on malformed (not pre-sorted, or
// cyclic) input instead of producing a wrong-but-finite diagram.
var ErrEventBudgetExceeded = errors.New("sweep: event budget exceeded")
