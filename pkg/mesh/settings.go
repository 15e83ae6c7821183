package mesh

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gorevolve/pkg/profile"
)

// Axis selects the rotation axis for surface-of-revolution generation
type Axis int

// Rotation axes
const (
	AxisX Axis = iota
	AxisY
)

// String returns the single-letter axis name used by the v6 format
func (a Axis) String() string {
	if a == AxisX {
		return "X"
	}
	return "Y"
}

// ParseAxis converts an axis letter into an Axis
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(s) {
	case "X":
		return AxisX, nil
	case "Y":
		return AxisY, nil
	}
	return AxisY, fmt.Errorf("invalid axis %q (expected X or Y)", s)
}

// RenderMode selects how the downstream renderer shades the mesh.
// Flat shading keys normals per face, all other modes per vertex.
type RenderMode int

// Render modes, in on-disk order
const (
	RenderWire RenderMode = iota
	RenderSolid
	RenderFlat
	RenderGouraud
)

// String returns the lowercase mode name
func (r RenderMode) String() string {
	switch r {
	case RenderWire:
		return "wire"
	case RenderSolid:
		return "solid"
	case RenderFlat:
		return "flat"
	case RenderGouraud:
		return "gouraud"
	}
	return fmt.Sprintf("render(%d)", int(r))
}

// ParseRenderMode converts a mode name into a RenderMode
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(s) {
	case "wire", "wireframe":
		return RenderWire, nil
	case "solid":
		return RenderSolid, nil
	case "flat":
		return RenderFlat, nil
	case "gouraud", "smooth":
		return RenderGouraud, nil
	}
	return RenderSolid, fmt.Errorf("invalid render mode %q (expected wire, solid, flat or gouraud)", s)
}

// Mode selects which generator produces the mesh
type Mode int

// Modeling modes, in on-disk order
const (
	ModeSOR Mode = iota
	ModeSweep
)

// String returns the lowercase mode name
func (m Mode) String() string {
	if m == ModeSweep {
		return "sweep"
	}
	return "sor"
}

// ParseMode converts a modeling mode name into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "sor", "revolve":
		return ModeSOR, nil
	case "sweep", "extrude":
		return ModeSweep, nil
	}
	return ModeSOR, fmt.Errorf("invalid modeling mode %q (expected sor or sweep)", s)
}

// Color is an RGB triple with components in [0,1]
type Color struct {
	R, G, B float64
}

// Settings holds the modeling parameters that produce a Model. The
// generation core reads them; editing happens upstream.
type Settings struct {
	Slices      int
	Axis        Axis
	Render      RenderMode
	Color       Color
	Mode        Mode
	SweepLength float64
	SweepTwist  float64 // degrees over the full sweep
	SweepCaps   bool
}

// DefaultSettings returns the modeling defaults
func DefaultSettings() Settings {
	return Settings{
		Slices:      30,
		Axis:        AxisY,
		Render:      RenderSolid,
		Color:       Color{R: 0.0, G: 0.8, B: 0.8},
		Mode:        ModeSOR,
		SweepLength: 10.0,
	}
}

// SettingsFromDocument converts a profile document's parameter fields
// into Settings.
func SettingsFromDocument(doc *profile.Document) (Settings, error) {
	s := DefaultSettings()
	s.Slices = doc.Slices

	var err error
	if s.Axis, err = ParseAxis(doc.Axis); err != nil {
		return s, err
	}
	if s.Render, err = ParseRenderMode(doc.Render); err != nil {
		return s, err
	}
	if s.Mode, err = ParseMode(doc.Mode); err != nil {
		return s, err
	}
	s.Color = Color{R: doc.Color[0], G: doc.Color[1], B: doc.Color[2]}
	s.SweepLength = doc.Sweep.Length
	s.SweepTwist = doc.Sweep.Twist
	s.SweepCaps = doc.Sweep.Caps
	return s, nil
}
