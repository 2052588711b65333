// Package field generates escape-time fractal fields: square, row-major
// grids of per-cell iteration counts.
//
// The package has two entry points:
//
//   - [Fill]: the narrow, fixed-function path. Serial, default kernel
//     and viewport, caller-supplied int32 buffer. Its signature mirrors
//     a flat C-style calling convention (two fixed-width sizes plus a
//     writable array), so it stays free of options and context.
//   - [Generator]: the configurable path. Kernel, region and worker
//     count are selectable, and generation is spread over a fixed pool
//     of row-range workers.
//
// Both paths produce bit-identical output for the same kernel, region
// and inputs: every cell is an independent function of its coordinates,
// so scheduling order cannot leak into the results.
//
// # Validation
//
// Arguments are validated before any write. A non-positive size or
// iteration budget, or a buffer shorter than size*size, yields
// [ErrInvalidArgument] and leaves the buffer untouched.
package field
