package mesh

import (
	"math"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/profile"
)

// SweepSteps is the fixed number of extrusion steps along Z; a sweep has
// SweepSteps+1 layers.
const SweepSteps = 30

// GenerateSweep extrudes every usable path along Z, rotating it linearly
// up to twistDeg over the full length. Vertices are emitted layer-major
// with the same indexing scheme as the SOR generator. When caps is set,
// closed paths with at least 3 points are closed off with triangle fans
// around the path centroid at both ends.
func GenerateSweep(paths profile.PathSet, length, twistDeg float64, caps bool) ([]geometry.Vector3, []Face) {
	var vertices []geometry.Vector3
	var faces []Face

	for _, p := range paths {
		n := len(p.Points)
		if n == 0 || p.Degenerate() {
			continue
		}
		offset := len(vertices)

		for k := 0; k <= SweepSteps; k++ {
			t := float64(k) / SweepSteps
			z := (t - 0.5) * length
			theta := t * twistDeg * math.Pi / 180.0
			cosT, sinT := math.Cos(theta), math.Sin(theta)
			for _, pt := range p.Points {
				vertices = append(vertices, geometry.NewVector3(
					pt.X*cosT-pt.Y*sinT,
					pt.X*sinT+pt.Y*cosT,
					z,
				))
			}
		}

		// Side quads between adjacent layers. The sweep is an open
		// ribbon along Z; only the path's own closed flag wraps.
		segments := p.SegmentCount()
		for k := 0; k < SweepSteps; k++ {
			for i := 0; i < segments; i++ {
				i1 := (i + 1) % n
				faces = append(faces, Face{
					offset + k*n + i,
					offset + k*n + i1,
					offset + (k+1)*n + i1,
					offset + (k+1)*n + i,
				})
			}
		}

		if caps && p.Closed && n >= 3 {
			center := p.Centroid()

			// Start cap: fan wound in reverse so the normal faces -Z.
			ci := len(vertices)
			vertices = append(vertices, geometry.NewVector3(center.X, center.Y, -0.5*length))
			first := offset
			for i := 0; i < n; i++ {
				faces = append(faces, Face{ci, first + (i+1)%n, first + i})
			}

			// End cap: the centroid follows the full twist of the last
			// layer, fan wound forward so the normal faces +Z.
			theta := twistDeg * math.Pi / 180.0
			cosT, sinT := math.Cos(theta), math.Sin(theta)
			ci = len(vertices)
			vertices = append(vertices, geometry.NewVector3(
				center.X*cosT-center.Y*sinT,
				center.X*sinT+center.Y*cosT,
				0.5*length,
			))
			last := offset + SweepSteps*n
			for i := 0; i < n; i++ {
				faces = append(faces, Face{ci, last + i, last + (i+1)%n})
			}
		}
	}

	return vertices, faces
}
