// Package mesh generates 3D polygon meshes from 2D profile paths, either
// by rotating them around an axis (surface of revolution) or by sweeping
// them along Z with an optional twist.
package mesh

import (
	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/profile"
)

// Face is an ordered list of vertex indices. Side faces are quads; cap
// faces are triangles fanned from a center vertex. The index order fixes
// the winding and therefore the outward normal.
type Face []int

// Model is a generated mesh together with the profile snapshot and
// settings that produced it. A regeneration builds a new Model rather
// than mutating an existing one, so readers holding a reference keep a
// consistent view.
type Model struct {
	Paths    profile.PathSet
	Settings Settings

	Vertices []geometry.Vector3
	Faces    []Face
	// Normals holds one vector per face for flat shading, otherwise one
	// per vertex.
	Normals []geometry.Vector3
}

// NewModel creates an empty model holding a snapshot of the given paths
func NewModel(paths profile.PathSet, settings Settings) *Model {
	return &Model{
		Paths:    paths.Clone(),
		Settings: settings,
	}
}

// VertexCount returns the number of vertices in the model
func (m *Model) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces in the model
func (m *Model) FaceCount() int {
	return len(m.Faces)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

// ComputeNormals populates the normal array for the model's render mode:
// one normal per face for flat shading, one per vertex otherwise.
func (m *Model) ComputeNormals() {
	if m.Settings.Render == RenderFlat {
		m.Normals = FlatNormals(m.Vertices, m.Faces)
	} else {
		m.Normals = VertexNormals(m.Vertices, m.Faces)
	}
}

// Generate builds a fresh Model from the given paths and settings. The
// modeling mode selects the generator; the render mode selects how
// normals are keyed.
func Generate(paths profile.PathSet, settings Settings) (*Model, error) {
	var (
		vertices []geometry.Vector3
		faces    []Face
		err      error
	)
	switch settings.Mode {
	case ModeSweep:
		vertices, faces = GenerateSweep(paths, settings.SweepLength, settings.SweepTwist, settings.SweepCaps)
	default:
		vertices, faces, err = GenerateSOR(paths, settings.Slices, settings.Axis)
		if err != nil {
			return nil, err
		}
	}

	m := NewModel(paths, settings)
	m.Vertices = vertices
	m.Faces = faces
	m.ComputeNormals()
	return m, nil
}
