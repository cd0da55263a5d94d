// Package array holds the whole-array operations the life loop is written in,
// layered over gonum dense matrices.
package array

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

const (
	truthy = 1.0
	falsy  = 0.0
)

func boolToFloat(b bool) float64 {
	if b {
		return truthy
	}
	return falsy
}

// Uniform returns a rows x cols matrix of values drawn uniformly from [0,1)
func Uniform(rows, cols int, rng *rand.Rand) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()
	}
	return mat.NewDense(rows, cols, data)
}

// Greater returns a 0/1 mask of a > v
func Greater(a mat.Matrix, v float64) *mat.Dense {
	return mask(a, func(x float64) bool { return x > v })
}

// Less returns a 0/1 mask of a < v
func Less(a mat.Matrix, v float64) *mat.Dense {
	return mask(a, func(x float64) bool { return x < v })
}

// Equal returns a 0/1 mask of a == v
func Equal(a mat.Matrix, v float64) *mat.Dense {
	return mask(a, func(x float64) bool { return x == v })
}

// Not returns a 0/1 mask that is set where a is zero
func Not(a mat.Matrix) *mat.Dense {
	return Equal(a, falsy)
}

// And returns a 0/1 mask set where both a and b are non-zero
func And(a, b mat.Matrix) *mat.Dense {
	return combine(a, b, func(x, y bool) bool { return x && y })
}

// Or returns a 0/1 mask set where either a or b is non-zero
func Or(a, b mat.Matrix) *mat.Dense {
	return combine(a, b, func(x, y bool) bool { return x || y })
}

// Add returns the elementwise sum a + b
func Add(a, b mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Add(a, b)
	return &out
}

// MulElem returns the elementwise product a * b
func MulElem(a, b mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.MulElem(a, b)
	return &out
}

// Sum returns the total of all elements of a
func Sum(a mat.Matrix) float64 {
	return mat.Sum(a)
}

func mask(a mat.Matrix, pred func(float64) bool) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, x float64) float64 {
		return boolToFloat(pred(x))
	}, a)
	return &out
}

// combine panics on shape mismatch, the same way gonum's elementwise ops do.
func combine(a, b mat.Matrix, op func(x, y bool) bool) *mat.Dense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(mat.ErrShape)
	}
	var out mat.Dense
	out.Apply(func(i, j int, x float64) float64 {
		return boolToFloat(op(x != falsy, b.At(i, j) != falsy))
	}, a)
	return &out
}
