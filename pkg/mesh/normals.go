package mesh

import (
	"github.com/philipparndt/gorevolve/pkg/geometry"
)

// FlatNormals computes one normal per face from its first three vertices.
// Degenerate faces (collinear or coincident points) yield the zero vector
// instead of propagating NaN.
func FlatNormals(vertices []geometry.Vector3, faces []Face) []geometry.Vector3 {
	normals := make([]geometry.Vector3, len(faces))
	for i, f := range faces {
		normals[i] = faceNormal(vertices, f)
	}
	return normals
}

// VertexNormals computes one normal per vertex for Gouraud shading: the
// re-normalized average of the flat normals of every face referencing the
// vertex. A vertex referenced by no face keeps the zero vector.
func VertexNormals(vertices []geometry.Vector3, faces []Face) []geometry.Vector3 {
	sums := make([]geometry.Vector3, len(vertices))
	counts := make([]int, len(vertices))

	for _, f := range faces {
		fn := faceNormal(vertices, f)
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				continue
			}
			sums[idx] = sums[idx].Add(fn)
			counts[idx]++
		}
	}

	normals := make([]geometry.Vector3, len(vertices))
	for i := range sums {
		if counts[i] == 0 {
			continue
		}
		normals[i] = sums[i].Mul(1.0 / float64(counts[i])).SafeNormalize()
	}
	return normals
}

// faceNormal returns the unit normal of a face's leading triangle, or the
// zero vector when the face is degenerate or references missing vertices.
func faceNormal(vertices []geometry.Vector3, f Face) geometry.Vector3 {
	if len(f) < 3 {
		return geometry.Vector3{}
	}
	for _, idx := range f {
		if idx < 0 || idx >= len(vertices) {
			return geometry.Vector3{}
		}
	}
	v1, v2, v3 := vertices[f[0]], vertices[f[1]], vertices[f[2]]
	u := v2.Sub(v1)
	w := v3.Sub(v1)
	return u.Cross(w).SafeNormalize()
}
