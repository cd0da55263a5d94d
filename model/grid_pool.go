package model

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// GridToPool returns a retired state matrix to the pool for reuse
func GridToPool(m *mat.Dense, pool *GridPool) {
	if pool == nil || m == nil {
		return
	}

	pool.Put(m)
}

// GridPool recycles the backing storage of retired generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &mat.Dense{}
			},
		},
	}
}

// Get retrieves a zeroed rows x cols matrix from the pool
func (p *GridPool) Get(rows, cols int) *mat.Dense {
	m := p.pool.Get().(*mat.Dense)
	m.ReuseAs(rows, cols)
	return m
}

// Put returns a matrix to the pool, clearing its state
func (p *GridPool) Put(m *mat.Dense) {
	// ReuseAs on the next Get requires an empty receiver
	m.Reset()
	p.pool.Put(m)
}
