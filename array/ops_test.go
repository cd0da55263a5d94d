package array

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestUniformRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	u := Uniform(20, 30, rng)
	r, c := u.Dims()
	assert.Equal(t, 20, r)
	assert.Equal(t, 30, c)
	for _, v := range u.RawMatrix().Data {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestUniformSeeded(t *testing.T) {
	a := Uniform(4, 4, rand.New(rand.NewPCG(7, 7)))
	b := Uniform(4, 4, rand.New(rand.NewPCG(7, 7)))
	assert.True(t, mat.Equal(a, b))
}

func TestComparisons(t *testing.T) {
	a := mat.NewDense(1, 4, []float64{0, 1, 2, 3})

	assert.Equal(t, []float64{0, 0, 1, 1}, Greater(a, 1).RawMatrix().Data)
	assert.Equal(t, []float64{1, 1, 0, 0}, Less(a, 2).RawMatrix().Data)
	assert.Equal(t, []float64{0, 0, 1, 0}, Equal(a, 2).RawMatrix().Data)
	assert.Equal(t, []float64{1, 0, 0, 0}, Not(a).RawMatrix().Data)
}

func TestBooleanCombination(t *testing.T) {
	a := mat.NewDense(1, 4, []float64{0, 1, 0, 2})
	b := mat.NewDense(1, 4, []float64{0, 0, 1, 1})

	assert.Equal(t, []float64{0, 0, 0, 1}, And(a, b).RawMatrix().Data)
	assert.Equal(t, []float64{0, 1, 1, 1}, Or(a, b).RawMatrix().Data)
}

func TestCombineShapeMismatchPanics(t *testing.T) {
	a := mat.NewDense(2, 2, nil)
	b := mat.NewDense(2, 3, nil)
	assert.Panics(t, func() { And(a, b) })
}

func TestArithmetic(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	b := mat.NewDense(2, 2, []float64{1, 1, 0, 1})

	assert.Equal(t, []float64{2, 1, 1, 2}, Add(a, b).RawMatrix().Data)
	assert.Equal(t, []float64{1, 0, 0, 1}, MulElem(a, b).RawMatrix().Data)
	assert.Equal(t, 3.0, Sum(a))
}
