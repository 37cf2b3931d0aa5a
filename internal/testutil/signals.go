package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// RMS returns the root mean square of data[skip:]. It returns 0 when nothing
// remains after skipping.
func RMS(data []float64, skip int) float64 {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(data) {
		return 0
	}
	sum := 0.0
	for _, v := range data[skip:] {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(data)-skip))
}

// GainDB returns the steady-state level of out relative to in, in dB, over
// the samples after skip.
func GainDB(in, out []float64, skip int) float64 {
	return 20 * math.Log10(RMS(out, skip)/RMS(in, skip))
}
