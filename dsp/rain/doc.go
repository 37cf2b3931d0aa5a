// Package rain synthesizes a rain soundscape into a fixed-length buffer.
//
// Each sample is a continuous background hiss (a frequency-jittered sine
// mixed with uniform noise) plus, while one sounds, a droplet: a short sine
// burst at a random pitch shaped by a parabolic envelope. Droplets are armed
// back to back; whether an armed droplet is audible is a Bernoulli draw
// weighted by the rain intensity. An optional wind model replaces the hiss
// with slow gusts.
//
// The raw synthesis is band-limited by an LR4 highpass (250 Hz) followed by
// an LR4 lowpass (16 kHz), see package crossover.
//
// All randomness comes from a [random.Stream] owned by one [Engine], so a
// fixed seed reproduces the buffer bit for bit and independent engines may
// run concurrently.
//
// Example:
//
//	cfg := rain.DefaultConfig()
//	cfg.Duration = 30 * time.Second
//	samples, err := rain.Generate[float32](cfg, rain.WithSeed(7))
package rain
