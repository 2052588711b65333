package fractal

import (
	"errors"
	"fmt"
	"sort"
)

// Domain errors for kernel and region lookup.
var (
	ErrUnknownKernel = errors.New("fractal: unknown kernel")
	ErrUnknownRegion = errors.New("fractal: unknown region")
)

// Kernel computes an escape-time iteration count for one point of the
// complex plane. Implementations must be deterministic and safe for
// concurrent use.
type Kernel interface {
	Name() string

	// Escape returns the recorded iteration count for the point
	// (cx, cy) under an iteration budget of maxIter steps. The count
	// is the index of the last completed non-escaping step, so it
	// always lies in [0, maxIter).
	Escape(cx, cy float64, maxIter int32) int32
}

var kernels = map[string]func() Kernel{
	"wide":       func() Kernel { return NewWide() },
	"mandelbrot": func() Kernel { return NewMandelbrot() },
	"julia":      func() Kernel { return NewJulia(DefaultJuliaC) },
}

// NewKernel constructs the kernel registered under name.
func NewKernel(name string) (Kernel, error) {
	ctor, ok := kernels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownKernel, name, KernelNames())
	}
	return ctor(), nil
}

// KernelNames lists registered kernel names in sorted order.
func KernelNames() []string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
