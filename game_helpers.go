package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/gol-pretty/game"
	"github.com/sheikhrachel/gol-pretty/render"
	"github.com/sheikhrachel/gol-pretty/render/window"
	"github.com/sheikhrachel/gol-pretty/utils"
)

// loadConfig reads the config file when one is given, defaults otherwise
func loadConfig(path string) (utils.Config, error) {
	if path == "" {
		return utils.DefaultConfig(), nil
	}
	return utils.LoadConfig(path)
}

// applyFlags copies every flag the user set over the loaded config
func applyFlags(cmd *cobra.Command, config *utils.Config, flags utils.Config) {
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("renderer", func() { config.Renderer = flags.Renderer })
	set("width", func() { config.Width = flags.Width })
	set("height", func() { config.Height = flags.Height })
	set("scale", func() { config.Scale = flags.Scale })
	set("fps", func() { config.FPS = flags.FPS })
	set("frames", func() { config.MaxFrames = flags.MaxFrames })
	set("reset", func() { config.ResetInterval = flags.ResetInterval })
	set("seed", func() { config.Seed = flags.Seed })
	set("pattern", func() { config.Pattern = flags.Pattern })
	set("out", func() { config.OutputDir = flags.OutputDir })
	set("workers", func() { config.Workers = flags.Workers })
	set("reset-on-stagnation", func() { config.ResetOnStagnation = flags.ResetOnStagnation })
	set("log-level", func() { config.LogLevel = flags.LogLevel })
}

// newRenderer builds the sink for loop-driven renderers
func newRenderer(config utils.Config) (render.Renderer, error) {
	switch config.Renderer {
	case utils.RendererTerminal:
		return render.NewTerminal(os.Stdout), nil
	case utils.RendererPNG:
		return render.NewPNG(config.OutputDir, config.Scale)
	case utils.RendererNone:
		return render.Discard{}, nil
	}
	return nil, errors.Wrapf(utils.ErrInvalidConfig, "[newRenderer] %q is not loop driven", config.Renderer)
}

// run plays the animation until the frame budget is spent or ctx is cancelled
func run(ctx context.Context, config utils.Config) error {
	logger, err := utils.NewLogger(config.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	sim, err := game.NewSimulation(config, logger)
	if err != nil {
		return err
	}

	if config.Renderer == utils.RendererWindow {
		err = window.Run(ctx, sim, config)
	} else {
		var renderer render.Renderer
		if renderer, err = newRenderer(config); err != nil {
			return err
		}
		err = runLoop(ctx, sim, renderer, utils.NewPacer(config.FPS))
	}

	displayFinalStats(logger, sim)
	if errors.Is(err, context.Canceled) {
		logger.Info("shutting down")
		return nil
	}
	return err
}

// runLoop runs sim into renderer and closes it, reporting a failed close
func runLoop(ctx context.Context, sim *game.Simulation, renderer render.Renderer, pacer *utils.Pacer) (err error) {
	defer func() {
		if cerr := renderer.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "[runLoop] failed to close renderer")
		}
	}()

	return game.Run(ctx, sim, renderer, pacer)
}

// displayFinalStats logs a summary of the run
func displayFinalStats(logger *slog.Logger, sim *game.Simulation) {
	stats := sim.Stats()
	logger.Info("final stats",
		"frames", sim.Frame(),
		"runtime", stats.Runtime().Round(time.Millisecond),
		"avg_population", stats.AveragePopulation,
		"births", stats.Births,
		"deaths", stats.Deaths,
		"resets", stats.Resets)
}
