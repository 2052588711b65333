package field

import (
	"fmt"

	"github.com/san-kum/fraclab/internal/fractal"
)

// Fill writes an escape-time count into every element of out, sampling
// the wide kernel over the full view (cx in [-2, 1), cy in [-1.5, 1.5)).
// The grid is size by size, row-major; out must hold at least size*size
// elements and remains caller-owned. Fill is serial and blocks until
// every cell is written.
func Fill(size, iterations int32, out []int32) error {
	if err := validateArgs(size, iterations, out); err != nil {
		return err
	}
	fillRows(fractal.NewWide(), fractal.FullView, size, iterations, out, 0, size)
	return nil
}

func validateArgs(size, iterations int32, out []int32) error {
	if size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidArgument, size)
	}
	if iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidArgument, iterations)
	}
	if need := int(size) * int(size); len(out) < need {
		return fmt.Errorf("%w: buffer holds %d cells, need %d", ErrInvalidArgument, len(out), need)
	}
	return nil
}

// fillRows computes rows [rowStart, rowEnd) of the grid. It is the
// shared inner sweep for the serial and pooled paths; because each cell
// depends only on its own coordinates, any partition of the row range
// yields identical output.
func fillRows(k fractal.Kernel, r fractal.Region, size, iterations int32, out []int32, rowStart, rowEnd int32) {
	w := r.Width()
	h := r.Height()
	for i := rowStart; i < rowEnd; i++ {
		cy := r.YMin + (float64(i)/float64(size))*h
		base := int(i) * int(size)
		for j := int32(0); j < size; j++ {
			cx := r.XMin + (float64(j)/float64(size))*w
			out[base+int(j)] = k.Escape(cx, cy, iterations)
		}
	}
}
