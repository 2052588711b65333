package fractal

// Mandelbrot is the textbook escape-time kernel with radius 2
// (threshold |z|^2 > 4). Counting follows the same convention as the
// wide kernel: the result is the last completed non-escaping step.
type Mandelbrot struct{}

func NewMandelbrot() *Mandelbrot { return &Mandelbrot{} }

func (m *Mandelbrot) Name() string { return "mandelbrot" }

func (m *Mandelbrot) Escape(cx, cy float64, maxIter int32) int32 {
	z0, z1 := 0.0, 0.0
	var result int32
	for n := int32(0); n < maxIter; n++ {
		z0sq := z0 * z0
		z1sq := z1 * z1
		if z0sq+z1sq > 4.0 {
			break
		}
		z1 = 2*z0*z1 + cy
		z0 = z0sq - z1sq + cx
		result = n
	}
	return result
}
