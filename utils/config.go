package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

const (
	RendererWindow   = "window"
	RendererTerminal = "terminal"
	RendererPNG      = "png"
	RendererNone     = "none"

	PatternRandom   = "random"
	PatternPatterns = "patterns"
)

// Config holds the configuration for the game
type Config struct {
	Width               int     `json:"width" toml:"width" yaml:"width"`
	Height              int     `json:"height" toml:"height" yaml:"height"`
	Scale               int     `json:"scale" toml:"scale" yaml:"scale"`
	FPS                 float64 `json:"fps" toml:"fps" yaml:"fps"`
	ResetInterval       int     `json:"reset_interval" toml:"reset_interval" yaml:"reset_interval"`
	MaxFrames           int     `json:"max_frames" toml:"max_frames" yaml:"max_frames"`
	InitialThreshold    float64 `json:"initial_threshold" toml:"initial_threshold" yaml:"initial_threshold"`
	ResetThreshold      float64 `json:"reset_threshold" toml:"reset_threshold" yaml:"reset_threshold"`
	Seed                uint64  `json:"seed" toml:"seed" yaml:"seed"`
	Pattern             string  `json:"pattern" toml:"pattern" yaml:"pattern"`
	Renderer            string  `json:"renderer" toml:"renderer" yaml:"renderer"`
	OutputDir           string  `json:"output_dir" toml:"output_dir" yaml:"output_dir"`
	Workers             int     `json:"workers" toml:"workers" yaml:"workers"`
	UseMemoryPool       bool    `json:"use_memory_pool" toml:"use_memory_pool" yaml:"use_memory_pool"`
	ResetOnStagnation   bool    `json:"reset_on_stagnation" toml:"reset_on_stagnation" yaml:"reset_on_stagnation"`
	StagnationThreshold int     `json:"stagnation_threshold" toml:"stagnation_threshold" yaml:"stagnation_threshold"`
	LogLevel            string  `json:"log_level" toml:"log_level" yaml:"log_level"`
	Title               string  `json:"title" toml:"title" yaml:"title"`
}

// DefaultConfig returns the settings of the classic 100x100 demo
func DefaultConfig() Config {
	return Config{
		Width:               100,
		Height:              100,
		Scale:               8,
		FPS:                 5,
		ResetInterval:       500,
		MaxFrames:           1500,
		InitialThreshold:    0.4,
		ResetThreshold:      0.5,
		Pattern:             PatternRandom,
		Renderer:            RendererWindow,
		OutputDir:           "frames",
		UseMemoryPool:       true,
		StagnationThreshold: 5,
		LogLevel:            "info",
		Title:               "Conway",
	}
}

// LoadConfig loads configuration from a JSON, TOML or YAML file, chosen by
// extension. Fields the file omits keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		err = json.Unmarshal(data, &config)
	case ".toml":
		err = toml.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		return config, errors.Errorf("[LoadConfig] unsupported config format %q: %+v", ext, filename)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Wrapf(ErrInvalidConfig, "scale must be positive, got %d", c.Scale)
	case c.FPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "fps must be positive, got %g", c.FPS)
	case c.ResetInterval < 0:
		return errors.Wrapf(ErrInvalidConfig, "reset_interval must not be negative, got %d", c.ResetInterval)
	case c.MaxFrames < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_frames must not be negative, got %d", c.MaxFrames)
	case c.InitialThreshold < 0 || c.InitialThreshold > 1:
		return errors.Wrapf(ErrInvalidConfig, "initial_threshold must be in [0,1], got %g", c.InitialThreshold)
	case c.ResetThreshold < 0 || c.ResetThreshold > 1:
		return errors.Wrapf(ErrInvalidConfig, "reset_threshold must be in [0,1], got %g", c.ResetThreshold)
	case c.ResetOnStagnation && c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	case c.Pattern != PatternRandom && c.Pattern != PatternPatterns:
		return errors.Wrapf(ErrInvalidConfig, "unknown pattern %q", c.Pattern)
	}

	switch c.Renderer {
	case RendererWindow, RendererTerminal, RendererNone:
	case RendererPNG:
		if c.OutputDir == "" {
			return errors.Wrap(ErrInvalidConfig, "png renderer needs an output_dir")
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown renderer %q", c.Renderer)
	}
	return nil
}
