package builder

import "github.com/katalvlaran/voronoi/sweep"

// Option customizes Build's behavior. Mirrors the teacher's
// BuilderOption: option constructors never panic and ignore nonsensical
// inputs.
type Option func(cfg *config)

type config struct {
	checkOverlap bool
	sweepOpts    []sweep.Option
}

// newConfig applies defaults (overlap checking on, no event budget) then
// each opt in order.
func newConfig(opts ...Option) *config {
	cfg := &config{checkOverlap: true}
	var opt Option
	for _, opt = range opts {
		opt(cfg)
	}
	return cfg
}

// WithOverlapCheck toggles the O(n^2) pairwise collinear-overlap
// validation (site.ValidateNoOverlap) run over the input segments before
// the sweep starts. Enabled by default; disable it for large inputs
// already known to be overlap-free.
func WithOverlapCheck(enabled bool) Option {
	return func(cfg *config) {
		cfg.checkOverlap = enabled
	}
}

// WithMaxEvents forwards an event budget to sweep.Build (see
// sweep.WithMaxEvents).
func WithMaxEvents(n int) Option {
	return func(cfg *config) {
		cfg.sweepOpts = append(cfg.sweepOpts, sweep.WithMaxEvents(n))
	}
}
