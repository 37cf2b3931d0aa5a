// Package random provides the seeded uniform random stream that drives droplet
// timing, pitch, loudness, and noise jitter.
//
// A Stream is never shared between goroutines. Each synthesis run owns one, so
// two runs with the same seed produce byte-identical buffers and independent
// runs can proceed in parallel.
package random

import (
	"math/rand"
)

// Source is the minimal uniform source a Stream draws from.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
}

// Stream wraps a Source with the draws the synthesis loop needs.
type Stream struct {
	src Source
}

// New returns a Stream seeded with seed.
func New(seed int64) *Stream {
	return &Stream{src: rand.New(rand.NewSource(seed))}
}

// FromSource wraps an existing Source. A nil src falls back to seed 1.
func FromSource(src Source) *Stream {
	if src == nil {
		return New(1)
	}
	return &Stream{src: src}
}

// Unit returns a uniform value in [0, 1).
func (s *Stream) Unit() float64 {
	return s.src.Float64()
}

// Range returns a uniform integer in [lo, hi). When hi <= lo it returns lo
// without consuming a draw.
func (s *Stream) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.src.Intn(hi-lo)
}

// Jitter returns a uniform integer in [-span, span). A non-positive span
// yields 0 without consuming a draw.
func (s *Stream) Jitter(span int) int {
	return s.Range(-span, span)
}

// Chance reports whether a fresh Unit draw falls below p.
func (s *Stream) Chance(p float64) bool {
	return s.src.Float64() < p
}
