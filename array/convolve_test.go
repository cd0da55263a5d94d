package array

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var neighbourKernel = mat.NewDense(3, 3, []float64{
	1, 1, 1,
	1, 0, 1,
	1, 1, 1,
})

// countNeighbours is the direct per-cell count with dead borders.
func countNeighbours(m mat.Matrix, y, x int) float64 {
	rows, cols := m.Dims()
	var n float64
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			ny, nx := y+dy, x+dx
			if (dy == 0 && dx == 0) || ny < 0 || ny >= rows || nx < 0 || nx >= cols {
				continue
			}
			n += m.At(ny, nx)
		}
	}
	return n
}

func TestConvolveMatchesNeighbourCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	state := Greater(Uniform(17, 23, rng), 0.5)

	for _, workers := range []int{1, 3, 0, 64} {
		out, err := Convolve(context.Background(), state, neighbourKernel, workers)
		require.NoError(t, err)
		for y := range 17 {
			for x := range 23 {
				assert.Equal(t, countNeighbours(state, y, x), out.At(y, x), "workers=%d y=%d x=%d", workers, y, x)
			}
		}
	}
}

func TestConvolveFlipsKernel(t *testing.T) {
	src := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	})
	kernel := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	out, err := Convolve(context.Background(), src, kernel, 1)
	require.NoError(t, err)
	// An impulse reproduces the kernel itself.
	assert.True(t, mat.Equal(kernel, out))
}

func TestConvolveCornersSeeZeroBorder(t *testing.T) {
	ones := mat.NewDense(3, 3, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1})
	out, err := Convolve(context.Background(), ones, neighbourKernel, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{
		3, 5, 3,
		5, 8, 5,
		3, 5, 3,
	}, out.RawMatrix().Data)
}

func TestConvolveRejectsEvenKernel(t *testing.T) {
	_, err := Convolve(context.Background(), mat.NewDense(4, 4, nil), mat.NewDense(2, 3, nil), 1)
	assert.True(t, errors.Is(err, ErrKernelShape))
}

func TestConvolveRejectsEmpty(t *testing.T) {
	_, err := Convolve(context.Background(), &mat.Dense{}, neighbourKernel, 1)
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestConvolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Convolve(ctx, mat.NewDense(8, 8, nil), neighbourKernel, 2)
	assert.True(t, errors.Is(err, context.Canceled))
}
