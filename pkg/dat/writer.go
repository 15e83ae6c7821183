package dat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gorevolve/pkg/mesh"
)

// Write serializes the model in the current v6 format. Paths without
// points are skipped; numbers are written with enough precision to
// round-trip exactly.
func Write(w io.Writer, m *mesh.Model) error {
	bw := bufio.NewWriter(w)
	s := m.Settings

	caps := 0
	if s.SweepCaps {
		caps = 1
	}
	fmt.Fprintf(bw, "v6 %d %s %d %s %s %s %d %s %s %d\n",
		s.Slices, s.Axis, int(s.Render),
		ftoa(s.Color.R), ftoa(s.Color.G), ftoa(s.Color.B),
		int(s.Mode), ftoa(s.SweepLength), ftoa(s.SweepTwist), caps)

	paths := m.Paths.NonEmpty()
	fmt.Fprintf(bw, "%d\n", len(paths))
	for _, p := range paths {
		fmt.Fprintf(bw, "%d\n", len(p.Points))
		closed := 0
		if p.Closed {
			closed = 1
		}
		fmt.Fprintf(bw, "%d\n", closed)
		for _, pt := range p.Points {
			fmt.Fprintf(bw, "%s %s\n", ftoa(pt.X), ftoa(pt.Y))
		}
	}

	fmt.Fprintf(bw, "%d\n", len(m.Vertices))
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "%s %s %s\n", ftoa(v.X), ftoa(v.Y), ftoa(v.Z))
	}

	fmt.Fprintf(bw, "%d\n", len(m.Faces))
	for _, face := range m.Faces {
		indices := make([]string, len(face))
		for i, idx := range face {
			indices[i] = strconv.Itoa(idx)
		}
		fmt.Fprintf(bw, "%d %s\n", len(face), strings.Join(indices, " "))
	}

	return bw.Flush()
}

// WriteFile serializes the model to a .dat file on disk
func WriteFile(path string, m *mesh.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ftoa formats a float with the shortest representation that parses back
// to the same value
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
