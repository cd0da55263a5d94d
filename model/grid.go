package model

import (
	"context"
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/sheikhrachel/gol-pretty/array"
	"github.com/sheikhrachel/gol-pretty/rules"
)

// historySize is how many recent generation hashes are kept for cycle detection
const historySize = 5

// Grid is the game board: a height x width matrix of 0/1 cell states
type Grid struct {
	width   int
	height  int
	state   *mat.Dense
	history []string // Store recent grid states for cycle detection
}

// NewGrid creates a new, empty grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		state:  mat.NewDense(height, width, nil),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// State returns the current generation. With pooling on, the matrix is
// recycled by the next Step.
func (g *Grid) State() *mat.Dense {
	return g.state
}

// Clear kills every cell and forgets the history
func (g *Grid) Clear() {
	g.state.Zero()
	g.history = nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		v := 0.0
		if alive {
			v = 1
		}
		g.state.Set(y, x, v)
	}
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.state.At(y, x) != 0
}

// Step advances the grid one generation and returns the rule masks it used
func (g *Grid) Step(ctx context.Context, kernel mat.Matrix, workers int, pool *GridPool) (*rules.Conditions, error) {
	nHood, err := array.Convolve(ctx, g.state, kernel, workers)
	if err != nil {
		return nil, errors.Wrap(err, "[Step] failed to count neighbours")
	}
	conds := rules.Evaluate(g.state, nHood)

	var next *mat.Dense
	if pool != nil {
		next = pool.Get(g.height, g.width)
	} else {
		next = &mat.Dense{}
	}
	conds.NextInto(next, g.state)

	g.replace(next, pool)
	return conds, nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() int {
	return int(array.Sum(g.state))
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.state.At(y, x) != 0 {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())

	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a static state or a short cycle.
// Call it before UpdateHistory for the current generation.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for _, h := range g.history[len(g.history)-3:] {
		if h == currentHash {
			return true
		}
	}
	return false
}

// Randomize replaces the grid with cells alive wherever a uniform draw exceeds
// threshold, retiring the old state to pool
func (g *Grid) Randomize(rng *rand.Rand, threshold float64, pool *GridPool) {
	g.replace(array.Greater(array.Uniform(g.height, g.width, rng), threshold), pool)
	g.history = nil
}

func (g *Grid) replace(next *mat.Dense, pool *GridPool) {
	GridToPool(g.state, pool)
	g.state = next
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.Set(startX+x, startY+y, cell)
		}
	}
}

// AddOscillator adds a blinker oscillator pattern
func (g *Grid) AddOscillator(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX+2, startY, true)
}

// ResetWithInterestingPatterns clears the grid, adds gliders and blinkers,
// then sprinkles random life over them
func (g *Grid) ResetWithInterestingPatterns(rng *rand.Rand, threshold float64, pool *GridPool) {
	g.Clear()

	if g.width >= 10 && g.height >= 10 {
		g.AddGlider(5, 5)
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(g.width-8, 5)
		}

		g.AddOscillator(g.width/4, g.height/4)
		if g.width >= 30 {
			g.AddOscillator(3*g.width/4, 3*g.height/4)
		}
	}

	g.replace(array.Or(g.state, array.Greater(array.Uniform(g.height, g.width, rng), threshold)), pool)
}
