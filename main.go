package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sheikhrachel/gol-pretty/utils"
)

// rootOptions receives the parsed command line
type rootOptions struct {
	configPath string
	flags      utils.Config
}

func newRootOptions() *rootOptions {
	return &rootOptions{flags: utils.DefaultConfig()}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	configPath, flags := &opts.configPath, &opts.flags

	cmd := &cobra.Command{
		Use:           "gol-pretty",
		Short:         "Colour-coded Conway's Game of Life",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &config, *flags)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, config)
		},
	}

	f := cmd.Flags()
	f.StringVarP(configPath, "config", "c", "", "config file (.json, .toml, .yaml)")
	f.StringVarP(&flags.Renderer, "renderer", "r", flags.Renderer, "window, terminal, png or none")
	f.IntVar(&flags.Width, "width", flags.Width, "grid width in cells")
	f.IntVar(&flags.Height, "height", flags.Height, "grid height in cells")
	f.IntVar(&flags.Scale, "scale", flags.Scale, "screen pixels per cell")
	f.Float64Var(&flags.FPS, "fps", flags.FPS, "target frames per second")
	f.IntVar(&flags.MaxFrames, "frames", flags.MaxFrames, "stop after this many frames, 0 runs forever")
	f.IntVar(&flags.ResetInterval, "reset", flags.ResetInterval, "reseed every N frames, 0 never")
	f.Uint64Var(&flags.Seed, "seed", flags.Seed, "random seed, 0 uses the clock")
	f.StringVar(&flags.Pattern, "pattern", flags.Pattern, "initial fill: random or patterns")
	f.StringVarP(&flags.OutputDir, "out", "o", flags.OutputDir, "directory for png frames")
	f.IntVar(&flags.Workers, "workers", flags.Workers, "convolution goroutines, 0 uses one per CPU")
	f.BoolVar(&flags.ResetOnStagnation, "reset-on-stagnation", flags.ResetOnStagnation, "reseed when the grid dies out or cycles")
	f.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "debug, info, warn or error")
	return cmd
}

func main() {
	if err := newRootCmd(newRootOptions()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
