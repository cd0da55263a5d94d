package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestGridPoolReturnsZeroed(t *testing.T) {
	pool := NewGridPool()
	m := pool.Get(3, 4)
	m.Set(1, 1, 1)
	GridToPool(m, pool)

	again := pool.Get(3, 4)
	r, c := again.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 0.0, mat.Sum(again))
}

func TestGridPoolResizes(t *testing.T) {
	pool := NewGridPool()
	pool.Put(mat.NewDense(2, 2, []float64{1, 1, 1, 1}))

	m := pool.Get(5, 7)
	r, c := m.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 7, c)
	assert.Equal(t, 0.0, mat.Sum(m))
}

func TestGridToPoolNil(t *testing.T) {
	assert.NotPanics(t, func() {
		GridToPool(mat.NewDense(1, 1, nil), nil)
		GridToPool(nil, NewGridPool())
	})
}
