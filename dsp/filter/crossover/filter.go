package crossover

import (
	"github.com/cwbudde/algo-rain/dsp/core"
)

// history holds the last four inputs and outputs of an LR4 recursion,
// most recent first.
type history struct {
	x, y [4]float64
}

func (h *history) step(c *Coefficients, x float64) float64 {
	y := c.A0*x + c.A1*h.x[0] + c.A2*h.x[1] + c.A3*h.x[2] + c.A4*h.x[3] -
		c.B1*h.y[0] - c.B2*h.y[1] - c.B3*h.y[2] - c.B4*h.y[3]
	y = core.FlushDenormals(y)

	h.x[3], h.x[2], h.x[1], h.x[0] = h.x[2], h.x[1], h.x[0], x
	h.y[3], h.y[2], h.y[1], h.y[0] = h.y[2], h.y[1], h.y[0], y

	return y
}

// Apply filters x through c and returns a new slice of the same length.
// The recursion starts from silence and its history is discarded on return,
// so repeated calls on the same input are identical. Apply always runs the
// direct recursion; for cutoffs below 1/1000 of the sample rate use
// [ApplySections].
func Apply[F core.Float](c Coefficients, x []F) ([]F, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if err := validate(c.Cutoff, c.SampleRate); err != nil {
		return nil, err
	}

	out := make([]F, len(x))
	applyInto(&c, out, x)
	return out, nil
}

// applyInto runs the recursion from zero history. dst and src may alias.
func applyInto[F core.Float](c *Coefficients, dst, src []F) {
	var h history
	for i, v := range src {
		dst[i] = F(h.step(c, float64(v)))
	}
}

// LowPass filters x with an LR4 lowpass at cutoff Hz.
func LowPass[F core.Float](x []F, cutoff, sampleRate float64) ([]F, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	c, err := LowpassCoefficients(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}
	return Apply(c, x)
}

// HighPass filters x with an LR4 highpass at cutoff Hz.
func HighPass[F core.Float](x []F, cutoff, sampleRate float64) ([]F, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	c, err := HighpassCoefficients(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}
	return Apply(c, x)
}

// Stage is a streaming LR4 section that keeps its history between calls.
// It is used where state must persist across samples, e.g. a [Crossover].
type Stage struct {
	Coefficients

	h history
}

// NewStage returns a Stage with zero history.
func NewStage(c Coefficients) *Stage {
	return &Stage{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Stage) ProcessSample(x float64) float64 {
	return s.h.step(&s.Coefficients, x)
}

// ProcessBlock filters buf in place.
func (s *Stage) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.h.step(&s.Coefficients, x)
	}
}

// Reset clears the history to silence.
func (s *Stage) Reset() {
	s.h = history{}
}
