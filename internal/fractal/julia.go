package fractal

// DefaultJuliaC is the classic dendrite-adjacent Julia parameter.
var DefaultJuliaC = complex(-0.8, 0.156)

// Julia iterates z -> z^2 + c with a fixed parameter c; the sampled
// point is the orbit's starting value rather than the additive term.
type Julia struct {
	c complex128
}

func NewJulia(c complex128) *Julia { return &Julia{c: c} }

func (j *Julia) Name() string { return "julia" }

func (j *Julia) Escape(cx, cy float64, maxIter int32) int32 {
	z0, z1 := cx, cy
	cr, ci := real(j.c), imag(j.c)
	var result int32
	for n := int32(0); n < maxIter; n++ {
		z0sq := z0 * z0
		z1sq := z1 * z1
		if z0sq+z1sq > 4.0 {
			break
		}
		z1 = 2*z0*z1 + ci
		z0 = z0sq - z1sq + cr
		result = n
	}
	return result
}
