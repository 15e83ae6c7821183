// Package profile holds the 2D authoring data that surface generation
// consumes: ordered polylines with open/closed semantics.
package profile

import (
	"github.com/philipparndt/gorevolve/pkg/geometry"
)

// Path is an ordered 2D polyline. When Closed is set, an implicit edge
// connects the last point back to the first.
type Path struct {
	Points []geometry.Point2
	Closed bool
}

// NewPath creates a path from a list of points
func NewPath(closed bool, points ...geometry.Point2) Path {
	return Path{Points: points, Closed: closed}
}

// PointCount returns the number of points in the path
func (p Path) PointCount() int {
	return len(p.Points)
}

// Degenerate reports whether the path cannot contribute any surface.
// A closed path needs at least 3 points to enclose an area.
func (p Path) Degenerate() bool {
	return p.Closed && len(p.Points) < 3
}

// SegmentCount returns the number of polyline segments, including the
// implicit closing edge of a closed path.
func (p Path) SegmentCount() int {
	n := len(p.Points)
	if n < 2 {
		return 0
	}
	if p.Closed {
		return n
	}
	return n - 1
}

// Centroid returns the arithmetic mean of the path's points.
// An empty path yields the origin.
func (p Path) Centroid() geometry.Point2 {
	if len(p.Points) == 0 {
		return geometry.Point2{}
	}
	var sum geometry.Point2
	for _, pt := range p.Points {
		sum = sum.Add(pt)
	}
	return sum.Mul(1.0 / float64(len(p.Points)))
}

// Clone returns a deep copy of the path
func (p Path) Clone() Path {
	points := make([]geometry.Point2, len(p.Points))
	copy(points, p.Points)
	return Path{Points: points, Closed: p.Closed}
}

// PathSet is an ordered collection of independent paths. Generation
// processes paths in order and concatenates their sub-meshes.
type PathSet []Path

// Clone returns a deep copy of the set, for snapshot semantics
func (s PathSet) Clone() PathSet {
	out := make(PathSet, len(s))
	for i, p := range s {
		out[i] = p.Clone()
	}
	return out
}

// NonEmpty returns the paths that contain at least one point,
// preserving order.
func (s PathSet) NonEmpty() PathSet {
	var out PathSet
	for _, p := range s {
		if len(p.Points) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// TotalPoints returns the number of points across all paths
func (s PathSet) TotalPoints() int {
	total := 0
	for _, p := range s {
		total += len(p.Points)
	}
	return total
}
