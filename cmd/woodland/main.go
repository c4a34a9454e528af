// Package main is the entry point for the woodland viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/woodland/internal/config"
	"github.com/Faultbox/woodland/internal/game"
	"github.com/Faultbox/woodland/internal/game/setup"
	"github.com/Faultbox/woodland/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.WritePath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		fmt.Printf("config written to %s\n", path)
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Woodland ===", zap.String("profile", cfg.Scene.Profile))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.DryRunFrames > 0 {
		if _, err := setup.Headless(cfg, cfg.DryRunFrames, logger.Named("headless")); err != nil {
			logger.Error("dry run failed", zap.Error(err))
			return 1
		}
		return 0
	}

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		return 1
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		return 1
	}

	logger.Info("game closed normally")
	return 0
}
