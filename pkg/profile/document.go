package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gorevolve/pkg/geometry"
)

// Document is the YAML authoring format for a profile and its modeling
// parameters. String fields use the same vocabulary as the CLI flags
// ("X"/"Y", "wire"/"solid"/"flat"/"gouraud", "sor"/"sweep").
type Document struct {
	Slices int        `yaml:"slices"`
	Axis   string     `yaml:"axis"`
	Render string     `yaml:"render"`
	Color  [3]float64 `yaml:"color"`
	Mode   string     `yaml:"mode"`
	Sweep  SweepDoc   `yaml:"sweep"`
	Paths  []PathDoc  `yaml:"paths"`
}

// SweepDoc holds the sweep extrusion parameters
type SweepDoc struct {
	Length float64 `yaml:"length"`
	Twist  float64 `yaml:"twist"`
	Caps   bool    `yaml:"caps"`
}

// PathDoc is one polyline in the document
type PathDoc struct {
	Closed bool         `yaml:"closed"`
	Points [][2]float64 `yaml:"points"`
}

// DefaultDocument returns a document with the modeling defaults
func DefaultDocument() *Document {
	return &Document{
		Slices: 30,
		Axis:   "Y",
		Render: "solid",
		Color:  [3]float64{0.0, 0.8, 0.8},
		Mode:   "sor",
		Sweep:  SweepDoc{Length: 10.0},
	}
}

// LoadDocument reads a profile document from a YAML file, applying
// defaults for omitted fields.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	doc := DefaultDocument()
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return doc, nil
}

// Save writes the document as YAML
func (d *Document) Save(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// PathSet converts the document's polylines into a PathSet
func (d *Document) PathSet() PathSet {
	set := make(PathSet, 0, len(d.Paths))
	for _, pd := range d.Paths {
		points := make([]geometry.Point2, 0, len(pd.Points))
		for _, pt := range pd.Points {
			points = append(points, geometry.NewPoint2(pt[0], pt[1]))
		}
		set = append(set, Path{Points: points, Closed: pd.Closed})
	}
	return set
}
