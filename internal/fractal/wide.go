package fractal

// escape radius squared for the wide kernel; radius 10 rather than the
// textbook 2, which keeps boundary points iterating longer and
// stretches the count bands.
const wideRadiusSq = 100.0

// Wide is the Mandelbrot recurrence z -> z^2 + c with an enlarged
// escape radius of 10. It is the default kernel.
type Wide struct{}

func NewWide() *Wide { return &Wide{} }

func (w *Wide) Name() string { return "wide" }

// Escape returns the index of the last completed non-escaping step.
// The orbit starts at (0,0), which always survives step 0, so the
// result is 0 for maxIter=1 and maxIter-1 for points that never escape.
func (w *Wide) Escape(cx, cy float64, maxIter int32) int32 {
	z0, z1 := 0.0, 0.0
	var result int32
	for n := int32(0); n < maxIter; n++ {
		z0sq := z0 * z0
		z1sq := z1 * z1
		if z0sq+z1sq > wideRadiusSq {
			break
		}
		z1 = 2*z0*z1 + cy
		z0 = z0sq - z1sq + cx
		result = n
	}
	return result
}
