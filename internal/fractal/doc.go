// Package fractal provides escape-time iteration kernels and the
// complex-plane regions they are sampled over.
//
// A [Kernel] maps a single point of the complex plane to an iteration
// count; the grid sweep that applies a kernel to every cell of a field
// lives in the field package. Kernels are pure functions of their
// inputs, so the same point always yields the same count regardless of
// evaluation order.
//
// Kernels are looked up by name through [NewKernel]:
//
//	k, err := fractal.NewKernel("wide")
//	count := k.Escape(-1.0, 0.0, 100)
//
// # Regions
//
// A [Region] is an axis-aligned rectangle of the complex plane. The
// package ships a catalogue of named landmark regions ([RegionByName])
// alongside [FullView], the default three-by-three window covering the
// whole set.
package fractal
