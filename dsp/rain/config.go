package rain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-rain/dsp/filter/crossover"
)

// ErrOutOfRange is wrapped by every configuration validation error.
var ErrOutOfRange = errors.New("rain: parameter out of range")

const (
	// MinDuration is the shortest buffer the engine renders.
	MinDuration = time.Second
	// MaxDuration bounds the buffer length the engine accepts.
	MaxDuration = time.Hour

	defaultHighpassCutoff = 250.0
	defaultLowpassCutoff  = 16000.0
)

// AcceptanceModel decides how likely an armed droplet is to sound.
type AcceptanceModel int

const (
	// AcceptDropRate sounds a droplet with probability RainIntensity. Rejected
	// droplets are re-armed on the next sample, so short droplets are retried
	// more often and the effective density follows the drawn pitch.
	AcceptDropRate AcceptanceModel = iota

	// AcceptPerSample sounds a droplet with probability
	// 1/(SampleRate·RainIntensity), tied to the absolute sample rate rather
	// than to the droplet's own repetition rate. Smaller intensities give
	// denser rain. LegacyConfig uses this model.
	AcceptPerSample
)

// String returns the model name.
func (m AcceptanceModel) String() string {
	switch m {
	case AcceptDropRate:
		return "drop-rate"
	case AcceptPerSample:
		return "per-sample"
	default:
		return fmt.Sprintf("AcceptanceModel(%d)", int(m))
	}
}

// Config holds the parameters of one synthesis run.
type Config struct {
	// SampleRate in Hz. Must be > 0.
	SampleRate float64
	// Duration of the buffer, in [MinDuration, MaxDuration].
	Duration time.Duration

	// RainIntensity weights droplet acceptance, in (0, 1].
	RainIntensity float64
	// BackgroundIntensity is the hiss level relative to droplets, >= 0.
	BackgroundIntensity float64

	// MinDropFreq and MaxDropFreq bound droplet pitch in Hz; the pitch is
	// drawn from [MinDropFreq, MaxDropFreq).
	MinDropFreq int
	MaxDropFreq int
	// MaxOscillationsPerDrop is the exclusive upper bound on the number of
	// sine periods in one droplet. Must be >= 2.
	MaxOscillationsPerDrop int

	Acceptance AcceptanceModel

	// Wind replaces the background with occasional slow gusts.
	Wind bool
	// WindGustRate is the expected number of gust starts per second while
	// no gust is active.
	WindGustRate float64

	// HighpassCutoff in Hz, 0 disables the highpass stage.
	HighpassCutoff float64
	// LowpassCutoff in Hz, 0 or a value at or above Nyquist disables the
	// lowpass stage.
	LowpassCutoff float64
	// Topology realizes both stages. With DirectForm, a stage whose cutoff
	// is below 1/1000 of SampleRate runs as biquad sections.
	Topology crossover.Topology

	// OutputGain scales the filtered buffer. Must be > 0.
	OutputGain float64
}

// DefaultConfig returns the filtered generator's defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate:             44100,
		Duration:               10 * time.Second,
		RainIntensity:          0.1,
		BackgroundIntensity:    0.35,
		MinDropFreq:            3500,
		MaxDropFreq:            120001,
		MaxOscillationsPerDrop: 5,
		Acceptance:             AcceptDropRate,
		WindGustRate:           0.1,
		HighpassCutoff:         defaultHighpassCutoff,
		LowpassCutoff:          defaultLowpassCutoff,
		Topology:               crossover.DirectForm,
		OutputGain:             1,
	}
}

// LegacyConfig returns the preset of the earlier unfiltered generator:
// per-sample acceptance, wind gusts, no band-limiting, a background gain of
// 0.1 and a master gain of 0.2. Droplet amplitudes are still normalized by
// the combined amplitude, so droplets sit about 10% lower than they did
// in that generator.
func LegacyConfig() Config {
	return Config{
		SampleRate:             44100,
		Duration:               10 * time.Second,
		RainIntensity:          0.005,
		BackgroundIntensity:    1.0 / 9,
		MinDropFreq:            4000,
		MaxDropFreq:            130001,
		MaxOscillationsPerDrop: 7,
		Acceptance:             AcceptPerSample,
		Wind:                   true,
		WindGustRate:           0.1,
		Topology:               crossover.DirectForm,
		OutputGain:             0.2,
	}
}

// SampleCount returns floor(Duration × SampleRate).
func (c Config) SampleCount() int {
	return int(math.Floor(c.Duration.Seconds() * c.SampleRate))
}

// combinedAmplitude is the divisor that keeps droplet plus background
// within unit range.
func (c Config) combinedAmplitude() float64 {
	return 1 + c.BackgroundIntensity
}

// backgroundGain is the weight of the hiss (or wind) in the mix.
func (c Config) backgroundGain() float64 {
	return c.BackgroundIntensity / c.combinedAmplitude()
}

// acceptProbability returns the chance that an armed droplet sounds.
func (c Config) acceptProbability() float64 {
	if c.Acceptance == AcceptPerSample {
		return 1 / (c.SampleRate * c.RainIntensity)
	}
	return c.RainIntensity
}

// Validate reports the first parameter outside its valid range. The error
// wraps ErrOutOfRange and names the parameter and its range.
func (c Config) Validate() error {
	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return outOfRange("SampleRate", "> 0", c.SampleRate)
	}
	if c.Duration < MinDuration || c.Duration > MaxDuration {
		return outOfRange("Duration", fmt.Sprintf("[%v, %v]", MinDuration, MaxDuration), c.Duration)
	}
	if c.SampleCount() < 1 {
		return outOfRange("SampleCount", ">= 1", c.SampleCount())
	}
	if !(c.RainIntensity > 0 && c.RainIntensity <= 1) {
		return outOfRange("RainIntensity", "(0, 1]", c.RainIntensity)
	}
	if !(c.BackgroundIntensity >= 0) || math.IsInf(c.BackgroundIntensity, 0) {
		return outOfRange("BackgroundIntensity", ">= 0", c.BackgroundIntensity)
	}
	if c.MinDropFreq < 1 || c.MinDropFreq > c.MaxDropFreq {
		return outOfRange("MinDropFreq", fmt.Sprintf("[1, MaxDropFreq=%d]", c.MaxDropFreq), c.MinDropFreq)
	}
	if c.MaxDropFreq < 1 {
		return outOfRange("MaxDropFreq", ">= 1", c.MaxDropFreq)
	}
	if c.MaxOscillationsPerDrop < 2 {
		return outOfRange("MaxOscillationsPerDrop", ">= 2", c.MaxOscillationsPerDrop)
	}
	if c.Acceptance != AcceptDropRate && c.Acceptance != AcceptPerSample {
		return outOfRange("Acceptance", "AcceptDropRate or AcceptPerSample", int(c.Acceptance))
	}
	if c.Wind && (!(c.WindGustRate >= 0) || math.IsInf(c.WindGustRate, 0)) {
		return outOfRange("WindGustRate", ">= 0", c.WindGustRate)
	}
	if c.Topology != crossover.DirectForm && c.Topology != crossover.BiquadSections {
		return outOfRange("Topology", "DirectForm or BiquadSections", int(c.Topology))
	}
	nyquist := c.SampleRate / 2
	if c.HighpassCutoff != 0 && !(c.HighpassCutoff >= 1 && c.HighpassCutoff < nyquist) {
		return outOfRange("HighpassCutoff", fmt.Sprintf("0 or [1, %v)", nyquist), c.HighpassCutoff)
	}
	if c.LowpassCutoff != 0 && !(c.LowpassCutoff >= 1) {
		return outOfRange("LowpassCutoff", "0 or >= 1", c.LowpassCutoff)
	}
	if !(c.OutputGain > 0) || math.IsInf(c.OutputGain, 0) {
		return outOfRange("OutputGain", "> 0", c.OutputGain)
	}
	return nil
}

func outOfRange(name, valid string, got any) error {
	return fmt.Errorf("%w: %s must be %s, got %v", ErrOutOfRange, name, valid, got)
}
