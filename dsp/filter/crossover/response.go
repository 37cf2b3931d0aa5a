package crossover

import (
	"math"
	"math/cmplx"
)

// Response evaluates H(e^jw) at freqHz for the coefficients' sample rate.
func (c *Coefficients) Response(freqHz float64) complex128 {
	w := 2 * math.Pi * freqHz / c.SampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1
	z3 := z2 * z1
	z4 := z2 * z2

	num := complex(c.A0, 0) + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2 +
		complex(c.A3, 0)*z3 + complex(c.A4, 0)*z4
	den := 1 + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2 +
		complex(c.B3, 0)*z3 + complex(c.B4, 0)*z4
	return num / den
}

// MagnitudeDB returns 20*log10|H(f)|.
func (c *Coefficients) MagnitudeDB(freqHz float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz)))
}

// Phase returns the phase response in radians at freqHz, in [-pi, pi].
func (c *Coefficients) Phase(freqHz float64) float64 {
	return cmplx.Phase(c.Response(freqHz))
}

// Response evaluates one biquad at freqHz.
func (b *Biquad) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(b.B0, 0) + complex(b.B1, 0)*z1 + complex(b.B2, 0)*z2
	den := 1 + complex(b.A1, 0)*z1 + complex(b.A2, 0)*z2
	return num / den
}

// ImpulseResponse returns the first n samples of the section's impulse
// response.
func (c *Coefficients) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	var h history
	ir := make([]float64, n)
	ir[0] = h.step(c, 1)
	for i := 1; i < n; i++ {
		ir[i] = h.step(c, 0)
	}
	return ir
}
