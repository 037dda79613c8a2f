// Package main is the entry point for the terragen terrain generator.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/generator"
	"github.com/Faultbox/terragen/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== terragen ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to save config", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("saved config", zap.String("path", path))
	}

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	g, err := generator.New(cfg)
	if err != nil {
		return err
	}

	result, err := g.Generate()
	if err != nil {
		return err
	}

	if err := g.Export(result); err != nil {
		return err
	}

	m := result.Mesh
	fmt.Printf("resolution: %v\n", g.Config().Resolution)
	fmt.Printf("vertices:   %d\n", m.VertexCount())
	fmt.Printf("triangles:  %d\n", m.TriangleCount())
	fmt.Printf("height:     %.3f .. %.3f\n", m.Bounds.Min[1], m.Bounds.Max[1])

	o := result.Origin
	fmt.Printf("center:     height %.3f, origin (%g, %g, %g)\n", result.CenterHeight, o.X, o.Y, o.Z)
	if result.Ridge != nil {
		fmt.Printf("ridge:      %d peaks, %d vertices\n", len(result.Ridge.Peaks), len(result.Ridge.Vertices))
	}
	fmt.Printf("elapsed:    %v\n", result.Elapsed)
	return nil
}
