package crossover

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCutoff is returned when a cutoff lies outside [1, Nyquist).
	ErrInvalidCutoff = errors.New("crossover: cutoff out of range")
	// ErrInvalidSampleRate is returned for a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("crossover: sample rate out of range")
	// ErrEmptyInput is returned when filtering an empty buffer.
	ErrEmptyInput = errors.New("crossover: empty input")
)

// Kind selects the response of an LR4 section.
type Kind int

const (
	// Lowpass passes content below the cutoff.
	Lowpass Kind = iota
	// Highpass passes content above the cutoff.
	Highpass
)

// String returns "lowpass" or "highpass".
func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Coefficients holds the transfer function of one LR4 section:
//
//	        A0 + A1 z^-1 + A2 z^-2 + A3 z^-3 + A4 z^-4
//	H(z) = -------------------------------------------
//	        1  + B1 z^-1 + B2 z^-2 + B3 z^-3 + B4 z^-4
//
// The recursion is y[n] = A·x - B·y over the last four inputs and outputs.
type Coefficients struct {
	Kind       Kind
	Cutoff     float64
	SampleRate float64

	A0, A1, A2, A3, A4 float64 // feedforward
	B1, B2, B3, B4     float64 // feedback
}

// LowpassCoefficients derives an LR4 lowpass at cutoff Hz.
func LowpassCoefficients(cutoff, sampleRate float64) (Coefficients, error) {
	return Design(Lowpass, cutoff, sampleRate)
}

// HighpassCoefficients derives an LR4 highpass at cutoff Hz.
func HighpassCoefficients(cutoff, sampleRate float64) (Coefficients, error) {
	return Design(Highpass, cutoff, sampleRate)
}

func validate(cutoff, sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0, got %v", ErrInvalidSampleRate, sampleRate)
	}
	nyquist := sampleRate / 2
	if !(cutoff >= 1) || cutoff >= nyquist {
		return fmt.Errorf("%w: cutoff must be in [1, %v), got %v", ErrInvalidCutoff, nyquist, cutoff)
	}
	return nil
}

// Design derives an LR4 section of the given kind. It evaluates the bilinear
// transform of wc^4/(s^2+√2·wc·s+wc^2)^2 (lowpass) or s^4/(...)^2
// (highpass) with s pre-warped through k = wc/tan(π·fc/fs). Both kinds share
// the denominator.
func Design(kind Kind, cutoff, sampleRate float64) (Coefficients, error) {
	if kind != Lowpass && kind != Highpass {
		return Coefficients{}, fmt.Errorf("crossover: unknown filter kind %d", int(kind))
	}
	if err := validate(cutoff, sampleRate); err != nil {
		return Coefficients{}, err
	}

	wc := 2 * math.Pi * cutoff
	wc2 := wc * wc
	wc3 := wc2 * wc
	wc4 := wc2 * wc2

	k := wc / math.Tan(math.Pi*cutoff/sampleRate)
	k2 := k * k
	k3 := k2 * k
	k4 := k2 * k2

	sq1 := math.Sqrt2 * wc3 * k
	sq2 := math.Sqrt2 * wc * k3
	norm := 4*wc2*k2 + 2*sq1 + k4 + 2*sq2 + wc4

	c := Coefficients{
		Kind:       kind,
		Cutoff:     cutoff,
		SampleRate: sampleRate,
		B1:         4 * (wc4 + sq1 - k4 - sq2) / norm,
		B2:         (6*wc4 - 8*wc2*k2 + 6*k4) / norm,
		B3:         4 * (wc4 - sq1 + sq2 - k4) / norm,
		B4:         (k4 - 2*sq1 + wc4 - 2*sq2 + 4*wc2*k2) / norm,
	}

	if kind == Lowpass {
		c.A0 = wc4 / norm
		c.A1 = 4 * wc4 / norm
		c.A2 = 6 * wc4 / norm
	} else {
		c.A0 = k4 / norm
		c.A1 = -4 * k4 / norm
		c.A2 = 6 * k4 / norm
	}
	c.A3 = c.A1
	c.A4 = c.A0

	return c, nil
}
