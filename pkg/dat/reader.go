// Package dat implements the versioned .dat text format for profile
// paths, modeling settings and generated mesh geometry. Files are
// newline-delimited with whitespace-separated numeric fields. The current
// version is v6; legacy v5 files (no version token) are still readable.
package dat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/mesh"
	"github.com/philipparndt/gorevolve/pkg/profile"
)

// FormatError describes a structural violation in a .dat file. Reading
// aborts on the first violation; no partial model is returned.
type FormatError struct {
	Line int // 1-based line number of the offending record
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// reader walks the file record by record, tracking line numbers for
// error reporting.
type reader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the fields of the next non-blank line
func (r *reader) next() ([]string, error) {
	for r.sc.Scan() {
		r.line++
		fields := strings.Fields(r.sc.Text())
		if len(fields) == 0 {
			continue
		}
		return fields, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	return nil, &FormatError{Line: r.line + 1, Msg: "unexpected end of file"}
}

func (r *reader) fail(format string, args ...any) error {
	return &FormatError{Line: r.line, Msg: fmt.Sprintf(format, args...)}
}

// readCount reads a single non-negative integer record
func (r *reader) readCount(name string) (int, error) {
	fields, err := r.next()
	if err != nil {
		return 0, err
	}
	if len(fields) != 1 {
		return 0, r.fail("expected %s, got %d fields", name, len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, r.fail("invalid %s %q", name, fields[0])
	}
	if n < 0 {
		return 0, r.fail("negative %s %d", name, n)
	}
	return n, nil
}

// readFloats reads a record of exactly n real numbers
func (r *reader) readFloats(n int, name string) ([]float64, error) {
	fields, err := r.next()
	if err != nil {
		return nil, err
	}
	if len(fields) != n {
		return nil, r.fail("expected %d fields for %s, got %d", n, name, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, r.fail("invalid number %q in %s", f, name)
		}
		out[i] = v
	}
	return out, nil
}

func parseFlag(r *reader, s, name string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, r.fail("invalid %s %q (expected 0 or 1)", name, s)
}

// Read parses a .dat file from rd. The format version is dispatched once
// on the first token: the literal "v6" selects the current header,
// anything else the legacy v5 headers. Both share the same body layout.
// Normals are recomputed from the parsed geometry.
func Read(rd io.Reader) (*mesh.Model, error) {
	r := &reader{sc: bufio.NewScanner(rd)}
	r.sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fields, err := r.next()
	if err != nil {
		return nil, err
	}

	var settings mesh.Settings
	if fields[0] == "v6" {
		settings, err = parseV6Header(r, fields)
	} else {
		settings, err = parseV5Header(r, fields)
	}
	if err != nil {
		return nil, err
	}

	paths, vertices, faces, err := parseBody(r)
	if err != nil {
		return nil, err
	}

	m := mesh.NewModel(paths, settings)
	m.Vertices = vertices
	m.Faces = faces
	m.ComputeNormals()
	return m, nil
}

// ReadFile parses a .dat file from disk
func ReadFile(path string) (*mesh.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// parseV6Header parses the single-line v6 header:
// v6 Slices Axis RenderMode R G B Mode Length Twist Caps
// Early v6 writers omitted the trailing caps flag; it defaults to off.
func parseV6Header(r *reader, fields []string) (mesh.Settings, error) {
	s := mesh.DefaultSettings()
	if len(fields) < 10 {
		return s, r.fail("v6 header has %d fields, expected at least 10", len(fields))
	}

	slices, err := strconv.Atoi(fields[1])
	if err != nil {
		return s, r.fail("invalid slice count %q", fields[1])
	}
	s.Slices = slices

	if s.Axis, err = mesh.ParseAxis(fields[2]); err != nil {
		return s, r.fail("%v", err)
	}
	if s.Render, err = parseRenderModeField(fields[3]); err != nil {
		return s, r.fail("%v", err)
	}
	for i, dst := range []*float64{&s.Color.R, &s.Color.G, &s.Color.B} {
		v, err := strconv.ParseFloat(fields[4+i], 64)
		if err != nil {
			return s, r.fail("invalid color component %q", fields[4+i])
		}
		*dst = v
	}

	modeInt, err := strconv.Atoi(fields[7])
	if err != nil || (modeInt != 0 && modeInt != 1) {
		return s, r.fail("invalid modeling mode %q (expected 0 or 1)", fields[7])
	}
	s.Mode = mesh.Mode(modeInt)

	if s.SweepLength, err = strconv.ParseFloat(fields[8], 64); err != nil {
		return s, r.fail("invalid sweep length %q", fields[8])
	}
	if s.SweepTwist, err = strconv.ParseFloat(fields[9], 64); err != nil {
		return s, r.fail("invalid sweep twist %q", fields[9])
	}
	if len(fields) >= 11 {
		if s.SweepCaps, err = parseFlag(r, fields[10], "caps flag"); err != nil {
			return s, err
		}
	}
	return s, nil
}

// parseV5Header parses the legacy line-per-field headers: slice count,
// rotation axis as 0/1, render mode, then R G B. The first line has
// already been consumed for version dispatch.
func parseV5Header(r *reader, first []string) (mesh.Settings, error) {
	s := mesh.DefaultSettings()
	if len(first) != 1 {
		return s, r.fail("expected slice count, got %d fields", len(first))
	}
	slices, err := strconv.Atoi(first[0])
	if err != nil {
		return s, r.fail("invalid slice count %q", first[0])
	}
	s.Slices = slices

	fields, err := r.next()
	if err != nil {
		return s, err
	}
	if len(fields) != 1 {
		return s, r.fail("expected rotation axis, got %d fields", len(fields))
	}
	axisY, err := parseFlag(r, fields[0], "rotation axis")
	if err != nil {
		return s, err
	}
	if axisY {
		s.Axis = mesh.AxisY
	} else {
		s.Axis = mesh.AxisX
	}

	fields, err = r.next()
	if err != nil {
		return s, err
	}
	if len(fields) != 1 {
		return s, r.fail("expected render mode, got %d fields", len(fields))
	}
	if s.Render, err = parseRenderModeField(fields[0]); err != nil {
		return s, r.fail("%v", err)
	}

	rgb, err := r.readFloats(3, "model color")
	if err != nil {
		return s, err
	}
	s.Color = mesh.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
	return s, nil
}

func parseRenderModeField(s string) (mesh.RenderMode, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < int(mesh.RenderWire) || v > int(mesh.RenderGouraud) {
		return mesh.RenderSolid, fmt.Errorf("invalid render mode %q (expected 0-3)", s)
	}
	return mesh.RenderMode(v), nil
}

// parseBody parses the shared v5/v6 body: paths, vertices, faces
func parseBody(r *reader) (profile.PathSet, []geometry.Vector3, []mesh.Face, error) {
	pathCount, err := r.readCount("path count")
	if err != nil {
		return nil, nil, nil, err
	}
	paths := make(profile.PathSet, 0, pathCount)
	for p := 0; p < pathCount; p++ {
		pointCount, err := r.readCount("point count")
		if err != nil {
			return nil, nil, nil, err
		}
		fields, err := r.next()
		if err != nil {
			return nil, nil, nil, err
		}
		if len(fields) != 1 {
			return nil, nil, nil, r.fail("expected closed flag, got %d fields", len(fields))
		}
		closed, err := parseFlag(r, fields[0], "closed flag")
		if err != nil {
			return nil, nil, nil, err
		}

		points := make([]geometry.Point2, 0, pointCount)
		for i := 0; i < pointCount; i++ {
			xy, err := r.readFloats(2, "profile point")
			if err != nil {
				return nil, nil, nil, err
			}
			points = append(points, geometry.NewPoint2(xy[0], xy[1]))
		}
		paths = append(paths, profile.Path{Points: points, Closed: closed})
	}

	vertexCount, err := r.readCount("vertex count")
	if err != nil {
		return nil, nil, nil, err
	}
	vertices := make([]geometry.Vector3, 0, vertexCount)
	for i := 0; i < vertexCount; i++ {
		xyz, err := r.readFloats(3, "vertex")
		if err != nil {
			return nil, nil, nil, err
		}
		vertices = append(vertices, geometry.NewVector3(xyz[0], xyz[1], xyz[2]))
	}

	faceCount, err := r.readCount("face count")
	if err != nil {
		return nil, nil, nil, err
	}
	faces := make([]mesh.Face, 0, faceCount)
	for i := 0; i < faceCount; i++ {
		fields, err := r.next()
		if err != nil {
			return nil, nil, nil, err
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, nil, r.fail("invalid face index count %q", fields[0])
		}
		if n < 0 {
			return nil, nil, nil, r.fail("negative face index count %d", n)
		}
		if len(fields)-1 != n {
			return nil, nil, nil, r.fail("face declares %d indices but has %d", n, len(fields)-1)
		}
		face := make(mesh.Face, n)
		for j, f := range fields[1:] {
			idx, err := strconv.Atoi(f)
			if err != nil {
				return nil, nil, nil, r.fail("invalid face index %q", f)
			}
			if idx < 0 || idx >= vertexCount {
				return nil, nil, nil, r.fail("face index %d out of range [0, %d)", idx, vertexCount)
			}
			face[j] = idx
		}
		faces = append(faces, face)
	}

	return paths, vertices, faces, nil
}
