package mesh

import (
	"math"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/profile"
)

// minSlices is the smallest slice count that closes a revolution
const minSlices = 3

// GenerateSOR rotates every usable path around the given axis and returns
// the concatenated vertex and quad face arrays. Vertices are emitted
// slice-major: vertex index = pathOffset + slice*pointCount + point.
//
// Closed paths with fewer than 3 points are degenerate and contribute
// nothing; paths with a single point contribute vertices but no faces.
func GenerateSOR(paths profile.PathSet, slices int, axis Axis) ([]geometry.Vector3, []Face, error) {
	if slices < minSlices {
		return nil, nil, &InvalidParameterError{
			Param:  "slice count",
			Value:  slices,
			Reason: "a closed revolution needs at least 3 slices",
		}
	}

	var vertices []geometry.Vector3
	var faces []Face

	step := 360.0 / float64(slices)
	for _, p := range paths {
		n := len(p.Points)
		if n == 0 || p.Degenerate() {
			continue
		}
		offset := len(vertices)

		for k := 0; k < slices; k++ {
			theta := float64(k) * step * math.Pi / 180.0
			cosT, sinT := math.Cos(theta), math.Sin(theta)
			for _, pt := range p.Points {
				if axis == AxisY {
					vertices = append(vertices, geometry.NewVector3(pt.X*cosT, pt.Y, -pt.X*sinT))
				} else {
					vertices = append(vertices, geometry.NewVector3(pt.X, pt.Y*cosT, pt.Y*sinT))
				}
			}
		}

		// The revolution always wraps slice slices-1 back to slice 0;
		// wrapping along the path itself only happens when it is closed.
		segments := p.SegmentCount()
		for k := 0; k < slices; k++ {
			next := (k + 1) % slices
			for i := 0; i < segments; i++ {
				i1 := (i + 1) % n
				faces = append(faces, Face{
					offset + k*n + i,
					offset + k*n + i1,
					offset + next*n + i1,
					offset + next*n + i,
				})
			}
		}
	}

	return vertices, faces, nil
}
