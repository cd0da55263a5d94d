package array

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Volume is a rows x cols x depth stack of equally shaped planes
type Volume struct {
	rows, cols int
	planes     []*mat.Dense
}

// Planes stacks the given matrices along the channel axis
func Planes(ms ...*mat.Dense) (*Volume, error) {
	if len(ms) == 0 {
		return nil, errors.Wrap(ErrEmpty, "[Planes] no planes given")
	}
	rows, cols := ms[0].Dims()
	for k, m := range ms[1:] {
		if r, c := m.Dims(); r != rows || c != cols {
			return nil, errors.Wrapf(ErrShapeMismatch, "[Planes] plane %d is %dx%d, want %dx%d", k+1, r, c, rows, cols)
		}
	}
	return &Volume{rows: rows, cols: cols, planes: ms}, nil
}

// Tile repeats a copy of m depth times along the channel axis
func Tile(m mat.Matrix, depth int) *Volume {
	rows, cols := m.Dims()
	planes := make([]*mat.Dense, depth)
	for k := range planes {
		planes[k] = mat.DenseCopyOf(m)
	}
	return &Volume{rows: rows, cols: cols, planes: planes}
}

// Join concatenates volumes along the channel axis
func Join(parts ...*Volume) (*Volume, error) {
	var planes []*mat.Dense
	for _, p := range parts {
		planes = append(planes, p.planes...)
	}
	v, err := Planes(planes...)
	if err != nil {
		return nil, errors.Wrap(err, "[Join] failed to stack")
	}
	return v, nil
}

// Dims returns rows, cols and depth
func (v *Volume) Dims() (rows, cols, depth int) {
	return v.rows, v.cols, len(v.planes)
}

// At returns the element at row i, col j, channel k
func (v *Volume) At(i, j, k int) float64 {
	return v.planes[k].At(i, j)
}

// Plane returns channel k
func (v *Volume) Plane(k int) *mat.Dense {
	return v.planes[k]
}
