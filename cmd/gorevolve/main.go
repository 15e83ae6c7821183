package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gorevolve/internal/logger"
	"github.com/philipparndt/gorevolve/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gorevolve",
	Short: "Procedural surface generator for 2D profile curves",
	Long: `gorevolve turns 2D profile polylines into 3D polygon meshes, either by
rotating them around an axis (surface of revolution) or by sweeping them
along Z with an optional twist. Models are stored in the versioned .dat
text format and can be exported to STL.`,
	Version: version.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.Init("debug", "")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
