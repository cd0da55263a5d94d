package array

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrKernelShape is returned when a convolution kernel has an even dimension
	ErrKernelShape = errors.New("kernel dimensions must be odd")
	// ErrShapeMismatch is returned when planes of differing shape are stacked
	ErrShapeMismatch = errors.New("plane shapes do not match")
	// ErrEmpty is returned for zero-sized inputs
	ErrEmpty = errors.New("array has no elements")
)

// Convolve computes the 2D convolution of src with kernel. The output has the
// same shape as src and samples outside src read as zero.
// Rows are split into bands that are computed concurrently by up to workers
// goroutines; workers <= 0 means one per CPU.
func Convolve(ctx context.Context, src, kernel mat.Matrix, workers int) (*mat.Dense, error) {
	kr, kc := kernel.Dims()
	if kr%2 == 0 || kc%2 == 0 {
		return nil, errors.Wrapf(ErrKernelShape, "[Convolve] kernel is %dx%d", kr, kc)
	}
	rows, cols := src.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.Wrap(ErrEmpty, "[Convolve] empty source")
	}
	out := mat.NewDense(rows, cols, nil)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, rows)
	var (
		eg, egCtx     = errgroup.WithContext(ctx)
		rowsPerWorker = (rows + workers - 1) / workers // Ceiling division
		cr, cc        = kr / 2, kc / 2
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				for x := range cols {
					var sum float64
					for ky := range kr {
						sy := y + cr - ky
						if sy < 0 || sy >= rows {
							continue
						}
						for kx := range kc {
							sx := x + cc - kx
							if sx < 0 || sx >= cols {
								continue
							}
							sum += src.At(sy, sx) * kernel.At(ky, kx)
						}
					}
					out.Set(y, x, sum)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[Convolve] interrupted")
	}
	return out, nil
}
