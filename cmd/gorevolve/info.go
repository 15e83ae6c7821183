package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gorevolve/pkg/analysis"
	"github.com/philipparndt/gorevolve/pkg/dat"
	"github.com/philipparndt/gorevolve/pkg/mesh"
)

var infoCmd = &cobra.Command{
	Use:   "info [file.dat]",
	Short: "Display information about a .dat model file",
	Long:  "Show the modeling settings, profile paths and mesh statistics of a saved model.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := dat.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading model file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.Analyze(model)
	s := model.Settings

	fmt.Println("Model File Information")
	fmt.Println("======================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Settings:")
	fmt.Printf("  Modeling mode: %s\n", s.Mode)
	if s.Mode == mesh.ModeSOR {
		fmt.Printf("  Slices: %d\n", s.Slices)
		fmt.Printf("  Rotation axis: %s\n", s.Axis)
	} else {
		fmt.Printf("  Sweep length: %.6f units\n", s.SweepLength)
		fmt.Printf("  Sweep twist: %.6f degrees\n", s.SweepTwist)
		fmt.Printf("  Sweep caps: %v\n", s.SweepCaps)
	}
	fmt.Printf("  Render mode: %s\n", s.Render)
	fmt.Printf("  Color: %.3f %.3f %.3f\n\n", s.Color.R, s.Color.G, s.Color.B)

	fmt.Println("Profile:")
	fmt.Printf("  Paths: %d\n", len(model.Paths))
	for i, p := range model.Paths {
		state := "open"
		if p.Closed {
			state = "closed"
		}
		fmt.Printf("    Path %d: %d points, %s\n", i, p.PointCount(), state)
	}
	fmt.Println()

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Faces: %d (%d quads, %d triangles)\n", result.FaceCount, result.QuadCount, result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Height (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Depth (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())

	if result.EdgeCount > 0 {
		fmt.Println("\nEdge Lengths:")
		fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
		fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
		fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
	}
}
