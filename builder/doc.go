// Package builder is the public facade for constructing a Voronoi diagram
// (spec.md §7): it turns raw point/segment coordinates into site.Site
// values, pre-sorts them, and drives package sweep. This mirrors the
// teacher package's own facade discipline (a single public entry point,
// functional options resolved into an immutable config, sentinel errors
// wrapped with method context) rather than its graph-topology content —
// see DESIGN.md for what of the original builder package was carried
// over as a pattern versus dropped as graph-specific.
package builder
