package mesh

import (
	"math"
	"testing"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/profile"
)

func TestGenerateSweepCounts(t *testing.T) {
	vertices, faces := GenerateSweep(profile.PathSet{diamondPath()}, 10, 0, true)

	// 31 layers of 4 points plus two cap centers
	if len(vertices) != 31*4+2 {
		t.Errorf("vertex count: expected %d, got %d", 31*4+2, len(vertices))
	}
	// 30 rings of 4 side quads plus two 4-triangle fans
	quads, tris := 0, 0
	for _, f := range faces {
		switch len(f) {
		case 4:
			quads++
		case 3:
			tris++
		default:
			t.Errorf("unexpected face arity %d", len(f))
		}
	}
	if quads != 30*4 {
		t.Errorf("quad count: expected %d, got %d", 30*4, quads)
	}
	if tris != 8 {
		t.Errorf("cap triangle count: expected 8, got %d", tris)
	}
}

func TestGenerateSweepZRange(t *testing.T) {
	path := profile.NewPath(false, geometry.NewPoint2(1, 0))
	vertices, _ := GenerateSweep(profile.PathSet{path}, 10, 0, false)

	if len(vertices) != 31 {
		t.Fatalf("vertex count: expected 31, got %d", len(vertices))
	}
	if math.Abs(vertices[0].Z-(-5)) > tol {
		t.Errorf("first layer z: expected -5, got %v", vertices[0].Z)
	}
	if math.Abs(vertices[30].Z-5) > tol {
		t.Errorf("last layer z: expected 5, got %v", vertices[30].Z)
	}
}

func TestGenerateSweepTwist(t *testing.T) {
	path := profile.NewPath(false, geometry.NewPoint2(1, 0))
	vertices, _ := GenerateSweep(profile.PathSet{path}, 10, 90, false)

	// The last layer carries the full quarter twist
	if !vecNear(vertices[30], geometry.NewVector3(0, 1, 5)) {
		t.Errorf("twisted vertex: expected (0,1,5), got %v", vertices[30])
	}
	// The middle layer carries half of it
	want := geometry.NewVector3(math.Cos(math.Pi/4), math.Sin(math.Pi/4), 0)
	if !vecNear(vertices[15], want) {
		t.Errorf("half-twisted vertex: expected %v, got %v", want, vertices[15])
	}
}

func TestGenerateSweepNoCapsOnOpenPath(t *testing.T) {
	path := profile.NewPath(false,
		geometry.NewPoint2(0, 0),
		geometry.NewPoint2(1, 0),
		geometry.NewPoint2(1, 1),
	)
	vertices, faces := GenerateSweep(profile.PathSet{path}, 5, 0, true)

	if len(vertices) != 31*3 {
		t.Errorf("vertex count: expected %d, got %d", 31*3, len(vertices))
	}
	for i, f := range faces {
		if len(f) != 4 {
			t.Errorf("face %d: open path must not produce cap triangles, got arity %d", i, len(f))
		}
	}
}

func TestGenerateSweepCapCenters(t *testing.T) {
	vertices, _ := GenerateSweep(profile.PathSet{diamondPath()}, 4, 0, true)

	start := vertices[31*4]
	end := vertices[31*4+1]
	if !vecNear(start, geometry.NewVector3(0, 0, -2)) {
		t.Errorf("start cap center: expected (0,0,-2), got %v", start)
	}
	if !vecNear(end, geometry.NewVector3(0, 0, 2)) {
		t.Errorf("end cap center: expected (0,0,2), got %v", end)
	}
}

func TestGenerateSweepCapWinding(t *testing.T) {
	vertices, faces := GenerateSweep(profile.PathSet{diamondPath()}, 4, 0, true)
	normals := FlatNormals(vertices, faces)

	for i, f := range faces {
		if len(f) != 3 {
			continue
		}
		n := normals[i]
		centerZ := vertices[f[0]].Z
		if centerZ < 0 && n.Z >= 0 {
			t.Errorf("start cap face %d: expected normal toward -Z, got %v", i, n)
		}
		if centerZ > 0 && n.Z <= 0 {
			t.Errorf("end cap face %d: expected normal toward +Z, got %v", i, n)
		}
	}
}

func TestGenerateSweepClosedTwoPointsDegenerate(t *testing.T) {
	path := profile.NewPath(true, geometry.NewPoint2(1, 0), geometry.NewPoint2(0, 1))
	vertices, faces := GenerateSweep(profile.PathSet{path}, 5, 0, true)

	if len(vertices) != 0 || len(faces) != 0 {
		t.Errorf("degenerate closed path: expected empty contribution, got %d vertices, %d faces",
			len(vertices), len(faces))
	}
}

func TestGenerateSweepFaceIndicesInRange(t *testing.T) {
	vertices, faces := GenerateSweep(profile.PathSet{diamondPath()}, 8, 45, true)
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				t.Fatalf("face %d references vertex %d, only %d vertices exist", i, idx, len(vertices))
			}
		}
	}
}
