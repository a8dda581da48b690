// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/voronoi/diagram"
	"github.com/katalvlaran/voronoi/point"
	"github.com/katalvlaran/voronoi/predicate"
	"github.com/katalvlaran/voronoi/site"
	"github.com/katalvlaran/voronoi/sweep"
)

// Segment is one input segment site, given as its two integer endpoints.
// A == B is rejected by Build (site.ErrDegenerateSegment).
type Segment struct {
	A, B point.Point
}

// Build is the single public entry point: it assigns each input feature a
// stable sorted_index (in caller order, points before segments within a
// call has no meaning — only the final pre-sort order matters), builds
// both representations of every segment (site.NewSegment's forward and
// inverse), pre-sorts the resulting site stream by predicate.SiteEventLess,
// and drives sweep.Build against sink. Mirrors the teacher's single-
// orchestrator facade (BuildGraph): one entry point, functional options
// resolved once, sentinel errors wrapped with call context.
//
// Errors: ErrNoInput if points and segs are both empty; ErrNilSink if sink
// is nil; site.ErrDegenerateSegment or site.ErrCoordinateRange from a
// malformed input feature; site.ErrOverlappingSegments if overlap checking
// is enabled (the default) and two input segments are collinear and share
// an interior point; sweep.ErrEventBudgetExceeded if WithMaxEvents's cap
// is reached.
func Build(points []point.Point, segs []Segment, sink diagram.Sink, opts ...Option) error {
	if len(points) == 0 && len(segs) == 0 {
		return fmt.Errorf("Build: %w", ErrNoInput)
	}
	if sink == nil {
		return fmt.Errorf("Build: %w", ErrNilSink)
	}
	cfg := newConfig(opts...)

	sites, err := buildSites(points, segs)
	if err != nil {
		return wrapf("Build", err)
	}

	if cfg.checkOverlap {
		if err = site.ValidateNoOverlap(sites); err != nil {
			return wrapf("Build", err)
		}
	}

	sort.SliceStable(sites, func(i, j int) bool {
		return predicate.SiteEventLess(sites[i], sites[j])
	})

	if err = sweep.Build(sites, sink, cfg.sweepOpts...); err != nil {
		return wrapf("Build", err)
	}
	return nil
}

// buildSites assigns sorted_index in caller order (points first, then each
// segment's forward representation) and appends every segment's inverse
// representation after, sharing its forward's sorted_index. The inverse
// copies do not need their own index slot: site.Site.SortedIndex is
// shared between a segment's two representations by design (spec.md §3).
func buildSites(points []point.Point, segs []Segment) ([]site.Site, error) {
	sites := make([]site.Site, 0, len(points)+2*len(segs))
	index := 0

	for _, p := range points {
		s, err := site.NewPoint(p, index)
		if err != nil {
			return nil, err
		}
		sites = append(sites, s)
		index++
	}

	inverses := make([]site.Site, 0, len(segs))
	for _, seg := range segs {
		forward, inverse, err := site.NewSegment(seg.A, seg.B, index)
		if err != nil {
			return nil, err
		}
		sites = append(sites, forward)
		inverses = append(inverses, inverse)
		index++
	}
	sites = append(sites, inverses...)

	return sites, nil
}
