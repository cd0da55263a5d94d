// Package game drives the life loop: it owns the grid, resets it on
// schedule, and feeds display volumes to a renderer at a steady rate.
package game

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/sheikhrachel/gol-pretty/array"
	"github.com/sheikhrachel/gol-pretty/model"
	"github.com/sheikhrachel/gol-pretty/rules"
	"github.com/sheikhrachel/gol-pretty/utils"
)

// Simulation is one run of the animation
type Simulation struct {
	config  utils.Config
	logger  *slog.Logger
	rng     *rand.Rand
	kernel  *mat.Dense
	pool    *model.GridPool
	grid    *model.Grid
	display *array.Volume
	stats   *utils.Stats

	frame         int
	stagnantCount int
	lastAdvance   time.Time
}

// NewSimulation seeds the grid and shows it in grey. A zero Seed picks one
// from the clock.
func NewSimulation(config utils.Config, logger *slog.Logger) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] bad config")
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &Simulation{
		config:      config,
		logger:      logger,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		kernel:      rules.Kernel(),
		grid:        model.NewGrid(config.Width, config.Height),
		stats:       utils.NewStats(),
		lastAdvance: time.Now(),
	}
	if config.UseMemoryPool {
		s.pool = model.NewGridPool()
	}

	s.seed(config.InitialThreshold)
	logger.Info("simulation ready",
		"width", config.Width, "height", config.Height, "seed", seed,
		"living", s.grid.CountLivingCells())
	return s, nil
}

func (s *Simulation) seed(threshold float64) {
	if s.config.Pattern == utils.PatternPatterns {
		s.grid.ResetWithInterestingPatterns(s.rng, threshold, s.pool)
	} else {
		s.grid.Randomize(s.rng, threshold, s.pool)
	}
	s.display = array.Tile(s.grid.State(), 3)
	s.stagnantCount = 0
}

// Frame returns how many frames have been advanced
func (s *Simulation) Frame() int {
	return s.frame
}

// Grid returns the live grid
func (s *Simulation) Grid() *model.Grid {
	return s.grid
}

// Stats returns the running statistics
func (s *Simulation) Stats() *utils.Stats {
	return s.stats
}

// Display returns the volume to show for the current frame
func (s *Simulation) Display() *array.Volume {
	return s.display
}

// Done reports whether the frame budget is spent. A zero MaxFrames never ends.
func (s *Simulation) Done() bool {
	return s.config.MaxFrames > 0 && s.frame > s.config.MaxFrames
}

// Advance moves to the next frame: reseeds on reset frames, then steps the
// grid and rebuilds the display from the rule masks
func (s *Simulation) Advance(ctx context.Context) error {
	s.frame++

	if s.config.ResetInterval > 0 && s.frame%s.config.ResetInterval == 0 {
		s.reset("periodic refresh")
	}

	conds, err := s.grid.Step(ctx, s.kernel, s.config.Workers, s.pool)
	if err != nil {
		return errors.Wrapf(err, "[Advance] frame %d", s.frame)
	}
	if s.display, err = conds.Display(); err != nil {
		return errors.Wrapf(err, "[Advance] frame %d", s.frame)
	}

	living := s.grid.CountLivingCells()
	now := time.Now()
	s.stats.Update(s.frame, living, conds.Births(), conds.Deaths(), now.Sub(s.lastAdvance))
	s.lastAdvance = now

	s.trackStagnation(living)

	if s.frame%100 == 0 {
		s.logger.Debug("stats",
			"frame", s.frame, "living", living,
			"fps", s.stats.FramesPerSecond, "avg_population", s.stats.AveragePopulation,
			"births", s.stats.Births, "deaths", s.stats.Deaths)
	}
	return nil
}

func (s *Simulation) trackStagnation(living int) {
	if s.grid.IsStagnant() {
		s.stagnantCount++
	} else {
		s.stagnantCount = 0
	}
	s.grid.UpdateHistory()

	if s.stagnantCount == 1 {
		s.logger.Debug("grid stagnant", "frame", s.frame, "living", living)
	}
	if s.config.ResetOnStagnation && (living == 0 || s.stagnantCount >= s.config.StagnationThreshold) {
		reason := "stagnation detected"
		if living == 0 {
			reason = "extinction"
		}
		// Keep this frame's colours; the fresh grid shows from the next step.
		display := s.display
		s.reset(reason)
		s.display = display
	}
}

func (s *Simulation) reset(reason string) {
	s.seed(s.config.ResetThreshold)
	s.stats.Resets++
	s.logger.Info("grid reset", "reason", reason, "frame", s.frame, "living", s.grid.CountLivingCells())
}
