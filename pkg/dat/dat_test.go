package dat

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/mesh"
	"github.com/philipparndt/gorevolve/pkg/profile"
)

func diamondModel(t *testing.T) *mesh.Model {
	t.Helper()
	settings := mesh.DefaultSettings()
	settings.Slices = 4
	settings.Render = mesh.RenderGouraud

	path := profile.NewPath(true,
		geometry.NewPoint2(1, 0),
		geometry.NewPoint2(0, 1),
		geometry.NewPoint2(-1, 0),
		geometry.NewPoint2(0, -1),
	)
	model, err := mesh.Generate(profile.PathSet{path}, settings)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return model
}

func TestWriteReadRoundTrip(t *testing.T) {
	model := diamondModel(t)

	var buf bytes.Buffer
	if err := Write(&buf, model); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if got.Settings != model.Settings {
		t.Errorf("settings: expected %+v, got %+v", model.Settings, got.Settings)
	}
	if got.VertexCount() != model.VertexCount() {
		t.Fatalf("vertex count: expected %d, got %d", model.VertexCount(), got.VertexCount())
	}
	for i, v := range got.Vertices {
		if math.Abs(v.X-model.Vertices[i].X) > 1e-12 ||
			math.Abs(v.Y-model.Vertices[i].Y) > 1e-12 ||
			math.Abs(v.Z-model.Vertices[i].Z) > 1e-12 {
			t.Errorf("vertex %d: expected %v, got %v", i, model.Vertices[i], v)
		}
	}
	if got.FaceCount() != model.FaceCount() {
		t.Fatalf("face count: expected %d, got %d", model.FaceCount(), got.FaceCount())
	}
	for i, f := range got.Faces {
		if len(f) != len(model.Faces[i]) {
			t.Fatalf("face %d: expected %v, got %v", i, model.Faces[i], f)
		}
		for j := range f {
			if f[j] != model.Faces[i][j] {
				t.Errorf("face %d: expected %v, got %v", i, model.Faces[i], f)
				break
			}
		}
	}
	if len(got.Paths) != 1 || got.Paths[0].PointCount() != 4 || !got.Paths[0].Closed {
		t.Errorf("paths: expected one closed 4-point path, got %+v", got.Paths)
	}
	// Gouraud: normals recomputed per vertex on read
	if len(got.Normals) != got.VertexCount() {
		t.Errorf("normal count: expected %d, got %d", got.VertexCount(), len(got.Normals))
	}
}

func TestWriteSkipsEmptyPaths(t *testing.T) {
	model := diamondModel(t)
	model.Paths = append(model.Paths, profile.Path{})

	var buf bytes.Buffer
	if err := Write(&buf, model); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got.Paths) != 1 {
		t.Errorf("path count: expected 1, got %d", len(got.Paths))
	}
}

const v5Text = `30
1
1
0 0.8 0.8
1
2
0
0 0
1 1
2
0 0 0
1 1 1
1
2 0 1
`

func TestReadV5(t *testing.T) {
	model, err := Read(strings.NewReader(v5Text))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	s := model.Settings
	if s.Slices != 30 {
		t.Errorf("slices: expected 30, got %d", s.Slices)
	}
	if s.Axis != mesh.AxisY {
		t.Errorf("axis: expected Y, got %v", s.Axis)
	}
	if s.Render != mesh.RenderSolid {
		t.Errorf("render mode: expected solid, got %v", s.Render)
	}
	if s.Color != (mesh.Color{R: 0, G: 0.8, B: 0.8}) {
		t.Errorf("color: got %+v", s.Color)
	}
	// v5 predates sweep support; defaults apply
	if s.Mode != mesh.ModeSOR || s.SweepCaps {
		t.Errorf("sweep settings: got %+v", s)
	}

	if len(model.Paths) != 1 || model.Paths[0].PointCount() != 2 || model.Paths[0].Closed {
		t.Errorf("paths: expected one open 2-point path, got %+v", model.Paths)
	}
	if model.VertexCount() != 2 || model.FaceCount() != 1 {
		t.Errorf("geometry: expected 2 vertices, 1 face, got %d/%d", model.VertexCount(), model.FaceCount())
	}
}

func TestReadV5V6Equivalent(t *testing.T) {
	v6Text := "v6 30 Y 1 0 0.8 0.8 0 10 0 0\n" +
		"1\n2\n0\n0 0\n1 1\n" +
		"2\n0 0 0\n1 1 1\n" +
		"1\n2 0 1\n"

	m5, err := Read(strings.NewReader(v5Text))
	if err != nil {
		t.Fatalf("v5 read failed: %v", err)
	}
	m6, err := Read(strings.NewReader(v6Text))
	if err != nil {
		t.Fatalf("v6 read failed: %v", err)
	}

	if len(m5.Paths) != len(m6.Paths) {
		t.Fatalf("path count differs: v5 %d, v6 %d", len(m5.Paths), len(m6.Paths))
	}
	for i := range m5.Paths {
		if m5.Paths[i].PointCount() != m6.Paths[i].PointCount() {
			t.Errorf("path %d point count differs", i)
		}
		if m5.Paths[i].Closed != m6.Paths[i].Closed {
			t.Errorf("path %d closed flag differs", i)
		}
	}
	if m5.Settings != m6.Settings {
		t.Errorf("settings differ: v5 %+v, v6 %+v", m5.Settings, m6.Settings)
	}
}

func TestReadV6CapsFlag(t *testing.T) {
	text := "v6 8 X 3 1 0 0 1 5 45 1\n0\n0\n0\n"
	model, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	s := model.Settings
	if s.Axis != mesh.AxisX || s.Mode != mesh.ModeSweep || !s.SweepCaps {
		t.Errorf("header parse: got %+v", s)
	}
	if s.SweepLength != 5 || s.SweepTwist != 45 {
		t.Errorf("sweep parameters: got %+v", s)
	}
}

func TestReadTruncated(t *testing.T) {
	text := "v6 4 Y 1 0 0.8 0.8 0 10 0 0\n0\n2\n0 0 0\n"
	_, err := Read(strings.NewReader(text))
	if err == nil {
		t.Fatal("expected error for truncated file, got nil")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %T", err)
	}
	if fe.Line != 5 {
		t.Errorf("error line: expected 5, got %d", fe.Line)
	}
}

func TestReadFaceIndexOutOfRange(t *testing.T) {
	text := "v6 4 Y 1 0 0.8 0.8 0 10 0 0\n" +
		"0\n" +
		"4\n0 0 0\n1 0 0\n1 1 0\n0 1 0\n" +
		"1\n4 0 1 2 9\n"
	_, err := Read(strings.NewReader(text))
	if err == nil {
		t.Fatal("expected error for out-of-range face index, got nil")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %T", err)
	}
	if fe.Line != 9 {
		t.Errorf("error line: expected 9, got %d", fe.Line)
	}
	if !strings.Contains(fe.Msg, "out of range") {
		t.Errorf("error message: got %q", fe.Msg)
	}
}

func TestReadFacePrefixMismatch(t *testing.T) {
	text := "v6 4 Y 1 0 0.8 0.8 0 10 0 0\n" +
		"0\n" +
		"3\n0 0 0\n1 0 0\n1 1 0\n" +
		"1\n4 0 1 2\n"
	_, err := Read(strings.NewReader(text))
	if err == nil {
		t.Fatal("expected error for face prefix mismatch, got nil")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %T", err)
	}
}

func TestReadNegativeCount(t *testing.T) {
	text := "v6 4 Y 1 0 0.8 0.8 0 10 0 0\n-1\n"
	_, err := Read(strings.NewReader(text))
	if err == nil {
		t.Fatal("expected error for negative path count, got nil")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %T", err)
	}
}

func TestReadBadAxisLetter(t *testing.T) {
	text := "v6 4 Q 1 0 0.8 0.8 0 10 0 0\n0\n0\n0\n"
	if _, err := Read(strings.NewReader(text)); err == nil {
		t.Fatal("expected error for axis Q, got nil")
	}
}

func TestReadEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error for empty input, got nil")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %T", err)
	}
}

func TestReadFlatModeNormalsPerFace(t *testing.T) {
	text := "v6 4 Y 2 0 0.8 0.8 0 10 0 0\n" +
		"0\n" +
		"4\n0 0 0\n1 0 0\n1 1 0\n0 1 0\n" +
		"1\n4 0 1 2 3\n"
	model, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(model.Normals) != model.FaceCount() {
		t.Errorf("flat normals: expected %d, got %d", model.FaceCount(), len(model.Normals))
	}
}
