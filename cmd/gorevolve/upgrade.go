package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gorevolve/pkg/dat"
)

var upgradeOutput string

var upgradeCmd = &cobra.Command{
	Use:   "upgrade [file.dat]",
	Short: "Rewrite a legacy v5 model file in the v6 format",
	Long: `Read a model file in either the legacy v5 or the current v6 format and
write it back as v6. Legacy files lack the sweep parameters; they keep
their defaults.`,
	Args: cobra.ExactArgs(1),
	Run:  runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)

	upgradeCmd.Flags().StringVarP(&upgradeOutput, "output", "o", "", "Output file (default: rewrite in place)")
}

func runUpgrade(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := dat.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading model file: %v\n", err)
		os.Exit(1)
	}

	outPath := upgradeOutput
	if outPath == "" {
		outPath = filename
	}
	if err := dat.WriteFile(outPath, model); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing model: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (v6, %d vertices, %d faces)\n", outPath, model.VertexCount(), model.FaceCount())
}
