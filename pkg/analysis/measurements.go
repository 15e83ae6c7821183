// Package analysis computes measurements over generated meshes for the
// info command.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/mesh"
)

// Result contains the measurements of a mesh model
type Result struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	VertexCount   int
	FaceCount     int
	QuadCount     int
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Analyze measures the given model
func Analyze(m *mesh.Model) *Result {
	result := &Result{
		BoundingBox: m.BoundingBox(),
		VertexCount: m.VertexCount(),
		FaceCount:   m.FaceCount(),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	edgeCount := 0

	for _, face := range m.Faces {
		switch len(face) {
		case 3:
			result.TriangleCount++
		case 4:
			result.QuadCount++
		}
		if !validFace(face, len(m.Vertices)) {
			continue
		}

		result.SurfaceArea += faceArea(m.Vertices, face)

		for i := range face {
			start := m.Vertices[face[i]]
			end := m.Vertices[face[(i+1)%len(face)]]
			length := start.Distance(end)

			totalLength += length
			edgeCount++
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.EdgeCount = edgeCount
	if edgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(edgeCount)
	}
	return result
}

// faceArea sums the areas of the face's fan triangles
func faceArea(vertices []geometry.Vector3, face mesh.Face) float64 {
	if len(face) < 3 {
		return 0
	}
	area := 0.0
	v1 := vertices[face[0]]
	for i := 1; i < len(face)-1; i++ {
		u := vertices[face[i]].Sub(v1)
		w := vertices[face[i+1]].Sub(v1)
		area += u.Cross(w).Length() / 2.0
	}
	return area
}

func validFace(face mesh.Face, vertexCount int) bool {
	if len(face) < 2 {
		return false
	}
	for _, idx := range face {
		if idx < 0 || idx >= vertexCount {
			return false
		}
	}
	return true
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
