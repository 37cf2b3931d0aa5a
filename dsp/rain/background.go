package rain

import (
	"math"

	"github.com/cwbudde/algo-rain/dsp/random"
)

// background returns the unscaled hiss at sample index i: a sine near the
// armed droplet's pitch, its period jittered by up to 1% of the sample rate
// on every sample, mixed half and half with uniform noise.
func background(rng *random.Stream, i int, frequency, sampleRate float64, jitterSpan int) float64 {
	jitter := float64(rng.Jitter(jitterSpan))
	tone := math.Sin(2 * math.Pi * frequency / (sampleRate + jitter) * float64(i))
	return 0.5*tone + 0.5*rng.Unit()
}

func jitterSpan(sampleRate float64) int {
	return int(0.01 * sampleRate)
}
