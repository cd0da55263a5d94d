package rules

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/sheikhrachel/gol-pretty/array"
)

const alive = 1.0

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Kernel returns the 3x3 neighbour-summing kernel: ones with a zero centre
func Kernel() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 1, 1,
		1, 0, 1,
		1, 1, 1,
	})
}

// Conditions holds the per-cell predicates for one generation
type Conditions struct {
	// TwoNeighbors and ThreeNeighbors are the C0 / C1 masks the next state is built from
	TwoNeighbors   *mat.Dense
	ThreeNeighbors *mat.Dense

	Underpopulated *mat.Dense // alive with fewer than 2 neighbours, dies
	Survives       *mat.Dense // alive with 2 or 3 neighbours
	Born           *mat.Dense // dead with exactly 3 neighbours
	Overcrowded    *mat.Dense // alive with more than 3 neighbours, dies
}

// Evaluate derives the rule masks from a 0/1 state and its neighbour counts
func Evaluate(state, nHood mat.Matrix) *Conditions {
	var (
		isAlive = array.Equal(state, alive)
		isDead  = array.Not(state)
		c0      = array.Equal(nHood, 2)
		c1      = array.Equal(nHood, 3)
	)

	return &Conditions{
		TwoNeighbors:   c0,
		ThreeNeighbors: c1,
		Underpopulated: array.And(isAlive, array.Less(nHood, 2)),
		Survives:       array.And(isAlive, array.Or(c0, c1)),
		Born:           array.And(isDead, c1),
		Overcrowded:    array.And(isAlive, array.Greater(nHood, 3)),
	}
}

// Next returns the following generation: state * C0 + C1
func (c *Conditions) Next(state mat.Matrix) *mat.Dense {
	return c.NextInto(&mat.Dense{}, state)
}

// NextInto writes the following generation into dst, which must be empty or
// shaped like state, and returns it
func (c *Conditions) NextInto(dst *mat.Dense, state mat.Matrix) *mat.Dense {
	dst.Add(array.MulElem(state, c.TwoNeighbors), c.ThreeNeighbors)
	return dst
}

// Display builds the colour-coded rows x cols x 3 volume for this generation.
// Red marks underpopulation deaths, green births, yellow survivors and blue
// overcrowding deaths.
func (c *Conditions) Display() (*array.Volume, error) {
	red := array.Add(c.Underpopulated, c.Survives)
	green := array.Add(c.Survives, c.Born)

	rg, err := array.Join(array.Tile(red, 1), array.Tile(green, 1))
	if err != nil {
		return nil, errors.Wrap(err, "[Display] failed to join red and green")
	}
	v, err := array.Join(rg, array.Tile(c.Overcrowded, 1))
	if err != nil {
		return nil, errors.Wrap(err, "[Display] failed to join blue")
	}
	return v, nil
}

// Births returns the number of cells born this generation
func (c *Conditions) Births() int {
	return int(array.Sum(c.Born))
}

// Deaths returns the number of cells dying this generation
func (c *Conditions) Deaths() int {
	return int(array.Sum(c.Underpopulated) + array.Sum(c.Overcrowded))
}
