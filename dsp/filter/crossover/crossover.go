package crossover

import (
	"fmt"
)

// Crossover is a two-way LR4 network that splits a signal into
// complementary lowpass and highpass outputs.
//
// Both halves share the squared Butterworth denominator and are in phase at
// every frequency, so their sum is an allpass-filtered copy of the input.
type Crossover struct {
	lp *Stage
	hp *Stage
}

// New creates a two-way LR4 crossover at freq Hz.
func New(freq, sampleRate float64) (*Crossover, error) {
	lp, err := LowpassCoefficients(freq, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("crossover: lowpass branch: %w", err)
	}
	hp, err := HighpassCoefficients(freq, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("crossover: highpass branch: %w", err)
	}

	return &Crossover{lp: NewStage(lp), hp: NewStage(hp)}, nil
}

// ProcessSample filters one input sample and returns the lowpass and
// highpass outputs.
func (c *Crossover) ProcessSample(x float64) (lo, hi float64) {
	return c.lp.ProcessSample(x), c.hp.ProcessSample(x)
}

// ProcessBlock filters input, writing the lowpass output to lo and the
// highpass output to hi. All three slices must have the same length.
func (c *Crossover) ProcessBlock(input, lo, hi []float64) {
	n := len(input)
	if n == 0 {
		return
	}
	_ = lo[n-1]
	_ = hi[n-1]
	copy(lo, input)
	copy(hi, input)
	c.lp.ProcessBlock(lo)
	c.hp.ProcessBlock(hi)
}

// LP returns the lowpass coefficients.
func (c *Crossover) LP() Coefficients { return c.lp.Coefficients }

// HP returns the highpass coefficients.
func (c *Crossover) HP() Coefficients { return c.hp.Coefficients }

// Freq returns the crossover frequency in Hz.
func (c *Crossover) Freq() float64 { return c.lp.Cutoff }

// SampleRate returns the sample rate in Hz.
func (c *Crossover) SampleRate() float64 { return c.lp.SampleRate }

// Reset clears both branches to silence.
func (c *Crossover) Reset() {
	c.lp.Reset()
	c.hp.Reset()
}
