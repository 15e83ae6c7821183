package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gorevolve/internal/logger"
	"github.com/philipparndt/gorevolve/pkg/dat"
	"github.com/philipparndt/gorevolve/pkg/watcher"
)

var (
	watchOutput  string
	watchLogFile string
)

var watchCmd = &cobra.Command{
	Use:   "watch [profile.yaml]",
	Short: "Regenerate the model whenever the profile changes",
	Long: `Watch a YAML profile document and rewrite the .dat output every time
the profile is saved. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Output .dat file (default: profile name with .dat extension)")
	watchCmd.Flags().StringVar(&watchLogFile, "log-file", "", "Also log to this file (rotated)")
}

func runWatch(cmd *cobra.Command, args []string) {
	profilePath := args[0]

	outPath := watchOutput
	if outPath == "" {
		outPath = replaceExt(profilePath, ".dat")
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	logger.Init(level, watchLogFile)

	regenerate := func(path string) {
		model, err := generateFromProfile(path)
		if err != nil {
			logger.Log.Error("generation failed", zap.String("profile", path), zap.Error(err))
			return
		}
		if err := dat.WriteFile(outPath, model); err != nil {
			logger.Log.Error("write failed", zap.String("output", outPath), zap.Error(err))
			return
		}
		logger.Log.Info("model regenerated",
			zap.String("output", outPath),
			zap.Int("vertices", model.VertexCount()),
			zap.Int("faces", model.FaceCount()))
	}

	fw, err := watcher.New(200 * time.Millisecond)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	fw.OnError(func(err error) {
		logger.Log.Warn("watch error", zap.Error(err))
	})
	if err := fw.Watch(profilePath, regenerate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fw.Start()

	// Initial generation so the output exists before the first edit
	regenerate(profilePath)
	logger.Log.Info("watching profile", zap.String("profile", profilePath))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	logger.Log.Info("stopping")
}
