// Package stl exports generated meshes as STL files, in ASCII or binary
// form. Quads and cap fans are triangulated; STL carries no shared
// indices, so every triangle is written with its own vertices and a flat
// normal.
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/mesh"
)

// Triangle is one STL facet
type Triangle struct {
	Normal     geometry.Vector3
	V1, V2, V3 geometry.Vector3
}

// Triangulate fans every face of the model from its first vertex and
// returns the resulting facets. Faces with fewer than 3 indices or with
// out-of-range indices are skipped.
func Triangulate(m *mesh.Model) []Triangle {
	var tris []Triangle
	for _, face := range m.Faces {
		if len(face) < 3 {
			continue
		}
		valid := true
		for _, idx := range face {
			if idx < 0 || idx >= len(m.Vertices) {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		v1 := m.Vertices[face[0]]
		for i := 1; i < len(face)-1; i++ {
			v2 := m.Vertices[face[i]]
			v3 := m.Vertices[face[i+1]]
			normal := v2.Sub(v1).Cross(v3.Sub(v1)).SafeNormalize()
			tris = append(tris, Triangle{Normal: normal, V1: v1, V2: v2, V3: v3})
		}
	}
	return tris
}

// WriteASCII writes the model as an ASCII STL solid
func WriteASCII(w io.Writer, name string, m *mesh.Model) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range Triangulate(m) {
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range []geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

// WriteBinary writes the model as a binary STL file: an 80-byte header
// holding the name, a triangle count, then 50 bytes per facet.
func WriteBinary(w io.Writer, name string, m *mesh.Model) error {
	tris := Triangulate(m)

	var header [80]byte
	copy(header[:], name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tris))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, t := range tris {
		record := [12]float32{
			float32(t.Normal.X), float32(t.Normal.Y), float32(t.Normal.Z),
			float32(t.V1.X), float32(t.V1.Y), float32(t.V1.Z),
			float32(t.V2.X), float32(t.V2.Y), float32(t.V2.Z),
			float32(t.V3.X), float32(t.V3.Y), float32(t.V3.Z),
		}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("failed to write attribute for triangle %d: %w", i, err)
		}
	}
	return nil
}

// WriteFile writes the model to an STL file on disk
func WriteFile(path, name string, m *mesh.Model, ascii bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if ascii {
		err = WriteASCII(f, name, m)
	} else {
		err = WriteBinary(f, name, m)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
