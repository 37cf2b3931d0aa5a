// Package crossover provides fourth-order Linkwitz-Riley (LR4) filters and
// the band-limiting pipeline built from them.
//
// An LR4 section is the square of a second-order Butterworth prototype,
// mapped to the z-domain with the pre-warped bilinear transform. Its
// coefficients are derived once per cutoff and sample rate
// ([LowpassCoefficients], [HighpassCoefficients]) and applied with a plain
// fourth-order recursion whose history lives only for the duration of one
// [Apply] call.
//
// The lowpass and highpass halves are -6.02 dB at the cutoff and their sum
// is allpass, so the same coefficients also serve a two-way [Crossover].
// [Bandlimiter] cascades a highpass and a lowpass in series to strip rumble
// and hiss from a synthesized buffer.
//
// Example:
//
//	hp, _ := crossover.HighpassCoefficients(250, 44100)
//	out, _ := crossover.Apply(hp, samples)
package crossover
