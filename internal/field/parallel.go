package field

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/san-kum/fraclab/internal/fractal"
)

// Generator produces fields with a selectable kernel, region and
// worker count. The zero value is not usable; construct with
// NewGenerator and override fields as needed.
type Generator struct {
	Kernel  fractal.Kernel
	Region  fractal.Region
	Workers int
}

// NewGenerator returns a generator with the default kernel and
// viewport and one worker per CPU.
func NewGenerator() *Generator {
	return &Generator{
		Kernel:  fractal.NewWide(),
		Region:  fractal.FullView,
		Workers: runtime.NumCPU(),
	}
}

// Generate fills out with iteration counts for a size-by-size grid.
// Rows are partitioned into contiguous chunks, one per worker, so no
// two workers ever touch the same index. Output is bit-identical for
// any worker count.
//
// The context is checked between rows; on cancellation Generate
// returns ErrCanceled and already-completed rows remain written.
func (g *Generator) Generate(ctx context.Context, size, iterations int32, out []int32) error {
	if err := validateArgs(size, iterations, out); err != nil {
		return err
	}

	workers := g.Workers
	if workers < 1 {
		workers = 1
	}
	if int32(workers) > size {
		workers = int(size)
	}

	if workers == 1 {
		for i := int32(0); i < size; i++ {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%w: %v", ErrCanceled, err)
			}
			fillRows(g.Kernel, g.Region, size, iterations, out, i, i+1)
		}
		return nil
	}

	chunk := (size + int32(workers) - 1) / int32(workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := int32(w) * chunk
		end := start + chunk
		if end > size {
			end = size
		}

		go func(rowStart, rowEnd int32) {
			defer wg.Done()
			for i := rowStart; i < rowEnd; i++ {
				if ctx.Err() != nil {
					return
				}
				fillRows(g.Kernel, g.Region, size, iterations, out, i, i+1)
			}
		}(start, end)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCanceled, err)
	}
	return nil
}

// NewField allocates a field and generates into it.
func (g *Generator) NewField(ctx context.Context, size, iterations int32) (*Field, error) {
	f, err := New(size)
	if err != nil {
		return nil, err
	}
	if err := g.Generate(ctx, size, iterations, f.Data); err != nil {
		return nil, err
	}
	return f, nil
}
