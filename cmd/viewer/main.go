// Package main is the entry point for the mesh viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/app"
	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/logger"
)

var flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config dir and exit")

func main() {
	os.Exit(run())
}

// run returns the process exit code. Deferred cleanup finishes before main
// exits.
func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if *flagSaveConfig {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		fmt.Println("config written to", config.ConfigDir())
		return 0
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Log.Info("=== Mesh Viewer ===")
	logger.Log.Sugar().Debugf("Config: %+v", cfg)

	a, err := app.New(cfg, logger.Log)
	if err != nil {
		logger.Log.Error("failed to create viewer", zap.Error(err))
		return 1
	}
	return runViewer(a, logger.Log)
}

// viewer is the part of app.App the entry point drives.
type viewer interface {
	Run() error
	Close()
}

// runViewer runs v until its window closes and always closes it.
func runViewer(v viewer, log *zap.Logger) int {
	defer v.Close()

	if err := v.Run(); err != nil {
		log.Error("viewer error", zap.Error(err))
		return 1
	}

	log.Info("viewer closed normally")
	return 0
}
