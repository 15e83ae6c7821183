package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gorevolve/internal/logger"
	"github.com/philipparndt/gorevolve/pkg/dat"
	"github.com/philipparndt/gorevolve/pkg/mesh"
	"github.com/philipparndt/gorevolve/pkg/profile"
)

var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate [profile.yaml]",
	Short: "Generate a mesh from a YAML profile document",
	Long: `Read a YAML profile document, run the configured generator (SOR or
sweep) and write the resulting model as a v6 .dat file.`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output .dat file (default: profile name with .dat extension)")
}

func runGenerate(cmd *cobra.Command, args []string) {
	profilePath := args[0]

	outPath := generateOutput
	if outPath == "" {
		outPath = replaceExt(profilePath, ".dat")
	}

	model, err := generateFromProfile(profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := dat.WriteFile(outPath, model); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing model: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s: %d vertices, %d faces (%s)\n",
		outPath, model.VertexCount(), model.FaceCount(), model.Settings.Mode)
}

// generateFromProfile loads a YAML profile document and generates its mesh
func generateFromProfile(path string) (*mesh.Model, error) {
	doc, err := profile.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	settings, err := mesh.SettingsFromDocument(doc)
	if err != nil {
		return nil, err
	}
	paths := doc.PathSet()
	logger.Log.Debug("generating model",
		zap.String("profile", path),
		zap.Int("paths", len(paths)),
		zap.Int("points", paths.TotalPoints()),
		zap.String("mode", settings.Mode.String()))
	return mesh.Generate(paths, settings)
}

// replaceExt swaps the file extension of path for ext
func replaceExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		return path[:i] + ext
	}
	return path + ext
}
