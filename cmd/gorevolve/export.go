package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gorevolve/pkg/dat"
	"github.com/philipparndt/gorevolve/pkg/stl"
)

var (
	exportOutput string
	exportASCII  bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file.dat]",
	Short: "Export a model to STL",
	Long:  "Convert a .dat model file to STL for downstream tooling. Quads and cap fans are triangulated.",
	Args:  cobra.ExactArgs(1),
	Run:   runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output .stl file (default: model name with .stl extension)")
	exportCmd.Flags().BoolVar(&exportASCII, "ascii", false, "Write ASCII STL instead of binary")
}

func runExport(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := dat.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading model file: %v\n", err)
		os.Exit(1)
	}

	outPath := exportOutput
	if outPath == "" {
		outPath = replaceExt(filename, ".stl")
	}
	name := strings.TrimSuffix(filepath.Base(outPath), filepath.Ext(outPath))

	if err := stl.WriteFile(outPath, name, model, exportASCII); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing STL: %v\n", err)
		os.Exit(1)
	}

	format := "binary"
	if exportASCII {
		format = "ASCII"
	}
	fmt.Printf("Exported %s (%s STL, %d triangles)\n", outPath, format, len(stl.Triangulate(model)))
}
