package rain

import (
	"math"

	"github.com/cwbudde/algo-rain/dsp/random"
)

// droplet is the per-sample state of the current raindrop. An inactive
// droplet marks a boundary: the next sample arms a new one.
type droplet struct {
	active                bool
	frequency             float64
	samplesPerOscillation float64
	totalSamples          float64
	elapsed               int
	amplitude             float64
}

// arm draws the pitch, length, acceptance and loudness of the next droplet.
// A rejected droplet stays inactive, so arming is retried on the next
// sample with fresh draws.
func (d *droplet) arm(rng *random.Stream, cfg *Config) {
	d.frequency = float64(rng.Range(cfg.MinDropFreq, cfg.MaxDropFreq))
	d.samplesPerOscillation = cfg.SampleRate / d.frequency
	d.totalSamples = float64(rng.Range(1, cfg.MaxOscillationsPerDrop)) * d.samplesPerOscillation
	d.active = rng.Chance(cfg.acceptProbability())
	d.amplitude = rng.Unit() / cfg.combinedAmplitude()
	d.elapsed = 0
}

// render adds the droplet's sine burst at sample index i to s and applies
// the fade-in and fade-out multiplies to the whole sample. The droplet
// retires once elapsed exceeds its length.
func (d *droplet) render(s float64, i int, sampleRate float64) float64 {
	s += d.amplitude * math.Sin(2*math.Pi*d.frequency/sampleRate*float64(i)) * 4

	t := float64(d.elapsed) / d.totalSamples
	s *= t
	s *= 1 - t

	d.elapsed++
	if float64(d.elapsed) > d.totalSamples {
		d.active = false
		d.elapsed = 0
	}
	return s
}

// Envelope returns the droplet gain t·(1−t) with t = elapsed/total. It is
// zero at elapsed 0 and elapsed total and peaks at 0.25 halfway.
func Envelope(elapsed, total float64) float64 {
	if total <= 0 {
		return 0
	}
	t := elapsed / total
	return t * (1 - t)
}
