package crossover

import (
	"math"

	"github.com/cwbudde/algo-rain/dsp/core"
)

// butterworthQ is the quality factor of a second-order Butterworth section.
const butterworthQ = 1 / math.Sqrt2

// Biquad holds a normalized second-order section. Unlike [Coefficients],
// B is the feedforward side and A the feedback side:
//
//	y = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Biquad struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Sections factors an LR4 section into its two identical Butterworth
// biquads. Running them in series has the same transfer function as the
// fourth-order recursion but keeps each pole pair in its own section, which
// is better conditioned for cutoffs far below the sample rate.
func Sections(c Coefficients) ([2]Biquad, error) {
	if err := validate(c.Cutoff, c.SampleRate); err != nil {
		return [2]Biquad{}, err
	}

	w0 := 2 * math.Pi * c.Cutoff / c.SampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * butterworthQ)
	a0 := 1 + alpha

	var bq Biquad
	switch c.Kind {
	case Highpass:
		bq.B0 = (1 + cw) / 2 / a0
		bq.B1 = -(1 + cw) / a0
	default:
		bq.B0 = (1 - cw) / 2 / a0
		bq.B1 = (1 - cw) / a0
	}
	bq.B2 = bq.B0
	bq.A1 = -2 * cw / a0
	bq.A2 = (1 - alpha) / a0

	return [2]Biquad{bq, bq}, nil
}

// ApplySections filters x through the biquad factorization of c and returns
// a new slice. Both sections start from silence.
func ApplySections[F core.Float](c Coefficients, x []F) ([]F, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	sections, err := Sections(c)
	if err != nil {
		return nil, err
	}

	out := make([]F, len(x))
	applySectionsInto(sections, out, x)
	return out, nil
}

func applySectionsInto[F core.Float](sections [2]Biquad, dst, src []F) {
	var d [2][2]float64
	for i, v := range src {
		x := float64(v)
		for j := range sections {
			s := &sections[j]
			y := s.B0*x + d[j][0]
			d[j][0] = s.B1*x - s.A1*y + d[j][1]
			d[j][1] = s.B2*x - s.A2*y
			x = core.FlushDenormals(y)
		}
		dst[i] = F(x)
	}
}
