// Package spectrum measures the one-sided power spectrum of a rendered
// buffer. It backs the attenuation checks of the LR4 band-limiter and the
// band report of cmd/rainwav.
package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rain/dsp/core"
)

var (
	// ErrEmptyInput is returned for an empty signal.
	ErrEmptyInput = errors.New("spectrum: empty input")
	// ErrInvalidSampleRate is returned for a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("spectrum: invalid sample rate")
	// ErrInvalidBand is returned when a band or tone lies outside [0, Nyquist].
	ErrInvalidBand = errors.New("spectrum: invalid band")
)

// Spectrum is the Hann-windowed power spectrum of one signal, bins 0..N/2.
type Spectrum struct {
	Power      []float64
	FFTSize    int
	BinHz      float64
	SampleRate float64

	// windowEnergy is sum(w²) over the unpadded signal length.
	windowEnergy float64
	signalLen    int
}

// Analyze windows x with a Hann window, zero-pads it to the next power of two
// and returns its one-sided power spectrum.
func Analyze(x []float64, sampleRate float64) (*Spectrum, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	fftSize := nextPowerOf2(len(x))
	if fftSize < 2 {
		fftSize = 2
	}

	w := hann(len(x))
	windowed := make([]float64, len(x))
	vecmath.MulBlock(windowed, x, w)

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	energy := 0.0
	for _, v := range w {
		energy += v * v
	}

	return &Spectrum{
		Power:        power,
		FFTSize:      fftSize,
		BinHz:        sampleRate / float64(fftSize),
		SampleRate:   sampleRate,
		windowEnergy: energy,
		signalLen:    len(x),
	}, nil
}

// BandEnergy returns the share of total spectral energy in bins whose
// centre frequency lies in [lo, hi). A silent signal yields 0.
func (s *Spectrum) BandEnergy(lo, hi float64) (float64, error) {
	nyquist := s.SampleRate / 2
	if lo < 0 || hi <= lo || lo > nyquist {
		return 0, fmt.Errorf("%w: [%v, %v) with Nyquist %v", ErrInvalidBand, lo, hi, nyquist)
	}

	total, band := 0.0, 0.0
	for k, p := range s.Power {
		total += p
		f := float64(k) * s.BinHz
		if f >= lo && f < hi {
			band += p
		}
	}
	if total == 0 {
		return 0, nil
	}
	return band / total, nil
}

// ToneLevelDB returns the level of the strongest component near freq in dB
// relative to a full-scale sine. Power is summed over the Hann main lobe, so
// the result does not depend on where the tone falls between bins.
func (s *Spectrum) ToneLevelDB(freq float64) (float64, error) {
	nyquist := s.SampleRate / 2
	if !(freq > 0) || freq >= nyquist {
		return 0, fmt.Errorf("%w: tone %v Hz with Nyquist %v", ErrInvalidBand, freq, nyquist)
	}

	maxBin := len(s.Power) - 1
	// Main lobe width grows with the zero-padding ratio.
	half := 3*s.FFTSize/s.signalLen + 1
	search := int(math.Round(freq / s.BinHz))

	peak := search
	for k := max(1, search-half); k <= min(maxBin, search+half); k++ {
		if s.Power[k] > s.Power[peak] {
			peak = k
		}
	}

	sum := 0.0
	for k := max(1, peak-half); k <= min(maxBin, peak+half); k++ {
		sum += s.Power[k]
	}

	amp2 := 4 * sum / (float64(s.FFTSize) * s.windowEnergy)
	return core.LinearPowerToDB(amp2), nil
}

// BandEnergy analyzes x and returns the share of its energy in [lo, hi).
func BandEnergy(x []float64, sampleRate, lo, hi float64) (float64, error) {
	s, err := Analyze(x, sampleRate)
	if err != nil {
		return 0, err
	}
	return s.BandEnergy(lo, hi)
}

// ToneLevelDB analyzes x and returns the level of the tone near freq in dB
// relative to a full-scale sine.
func ToneLevelDB(x []float64, sampleRate, freq float64) (float64, error) {
	s, err := Analyze(x, sampleRate)
	if err != nil {
		return 0, err
	}
	return s.ToneLevelDB(freq)
}

// hann returns the Hann window of length n in the symmetric form that
// algo-dsp's window.Hann produces without WithPeriodic:
// 0.5 - 0.5*cos(2*pi*i/(n-1)).
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	den := float64(n - 1)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/den)
	}
	return w
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
