// Package level summarizes the loudness and distribution of a rendered
// buffer: DC offset, RMS, peak, crest factor, clipping and higher moments.
package level

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-rain/dsp/core"
)

// Stats holds buffer statistics. Levels in dB are relative to full scale
// (amplitude 1).
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	DC_dB          float64
	RMS            float64
	RMS_dB         float64
	Max            float64
	MaxPos         int
	Min            float64
	MinPos         int
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	ZeroCrossings  int
	Clipped        int // samples with |x| >= 1

	// Variance is the population variance. Skewness and Kurtosis (excess)
	// are the bias-corrected sample estimators and stay 0 for buffers too
	// short or too flat to define them.
	Variance float64
	Skewness float64
	Kurtosis float64
}

func emptyStats() Stats {
	return Stats{
		DC_dB:          math.Inf(-1),
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Calculate computes Stats for x.
func Calculate[F core.Float](x []F) Stats {
	n := len(x)
	if n == 0 {
		return emptyStats()
	}

	data := core.ToFloat64(x)

	mean, variance := stat.PopMeanVariance(data, nil)
	energy := floats.Dot(data, data)
	rms := math.Sqrt(energy / float64(n))

	maxPos := floats.MaxIdx(data)
	minPos := floats.MinIdx(data)
	peak := math.Max(math.Abs(data[maxPos]), math.Abs(data[minPos]))

	s := Stats{
		Length:        n,
		DC:            mean,
		DC_dB:         ampToDB(mean),
		RMS:           rms,
		RMS_dB:        ampToDB(rms),
		Max:           data[maxPos],
		MaxPos:        maxPos,
		Min:           data[minPos],
		MinPos:        minPos,
		Peak:          peak,
		Peak_dB:       ampToDB(peak),
		Energy:        energy,
		ZeroCrossings: zeroCrossings(data),
		Clipped:       clipped(data),
		Variance:      variance,
	}

	if rms > 0 {
		s.CrestFactor = peak / rms
		s.CrestFactor_dB = ampToDB(s.CrestFactor)
	}

	if variance > 0 {
		if n > 2 {
			s.Skewness = stat.Skew(data, nil)
		}
		if n > 3 {
			s.Kurtosis = stat.ExKurtosis(data, nil)
		}
	}

	return s
}

func ampToDB(v float64) float64 {
	return core.LinearToDB(math.Abs(v))
}

func zeroCrossings(x []float64) int {
	count := 0
	for i := 1; i < len(x); i++ {
		if x[i-1]*x[i] < 0 {
			count++
		}
	}
	return count
}

func clipped(x []float64) int {
	count := 0
	for _, v := range x {
		if math.Abs(v) >= 1 {
			count++
		}
	}
	return count
}
