package crossover

import (
	"fmt"

	"github.com/cwbudde/algo-rain/dsp/core"
)

// Topology selects how an LR4 section is realized.
type Topology int

const (
	// DirectForm runs the single fourth-order recursion.
	DirectForm Topology = iota
	// BiquadSections runs two cascaded second-order sections.
	BiquadSections
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case DirectForm:
		return "direct"
	case BiquadSections:
		return "sections"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// minDirectFormRatio is the smallest cutoff/sampleRate at which the single
// fourth-order recursion stays well conditioned. Below it the poles crowd
// z = 1 and rounding drives the recursion unstable, so the stage runs as
// biquad sections instead.
const minDirectFormRatio = 1e-3

// stageTopology returns the realization actually used for a stage at cutoff.
func stageTopology(requested Topology, cutoff, sampleRate float64) Topology {
	if requested == DirectForm && cutoff/sampleRate < minDirectFormRatio {
		return BiquadSections
	}
	return requested
}

// Bandlimiter cascades an LR4 highpass and an LR4 lowpass in series.
// Either stage may be absent. The zero history of each stage is recreated
// for every Process call.
type Bandlimiter[F core.Float] struct {
	hp, lp     *Coefficients
	hpSections [2]Biquad
	lpSections [2]Biquad
	topology   Topology
	hpTopology Topology
	lpTopology Topology
	sampleRate float64
}

// NewBandlimiter builds a highpass-then-lowpass cascade.
//
// A highpass cutoff of 0 disables the highpass; any other value must lie in
// [1, Nyquist). A lowpass cutoff of 0, or one at or above Nyquist, disables
// the lowpass since there is no content above Nyquist to remove; other values
// must be >= 1.
//
// With DirectForm, a stage whose cutoff is below 1/1000 of the sample rate
// runs as biquad sections; see [Bandlimiter.StageTopologies].
func NewBandlimiter[F core.Float](highpass, lowpass, sampleRate float64, topology Topology) (*Bandlimiter[F], error) {
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0, got %v", ErrInvalidSampleRate, sampleRate)
	}
	if topology != DirectForm && topology != BiquadSections {
		return nil, fmt.Errorf("crossover: unknown topology %d", int(topology))
	}

	b := &Bandlimiter[F]{topology: topology, sampleRate: sampleRate}

	if highpass != 0 {
		c, err := HighpassCoefficients(highpass, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("crossover: highpass stage: %w", err)
		}
		b.hp = &c
		b.hpSections, _ = Sections(c)
		b.hpTopology = stageTopology(topology, highpass, sampleRate)
	}

	if lowpass != 0 && lowpass < sampleRate/2 {
		c, err := LowpassCoefficients(lowpass, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("crossover: lowpass stage: %w", err)
		}
		b.lp = &c
		b.lpSections, _ = Sections(c)
		b.lpTopology = stageTopology(topology, lowpass, sampleRate)
	}

	return b, nil
}

// Highpass returns the highpass coefficients, or false when the stage is
// disabled.
func (b *Bandlimiter[F]) Highpass() (Coefficients, bool) {
	if b.hp == nil {
		return Coefficients{}, false
	}
	return *b.hp, true
}

// Lowpass returns the lowpass coefficients, or false when the stage is
// disabled.
func (b *Bandlimiter[F]) Lowpass() (Coefficients, bool) {
	if b.lp == nil {
		return Coefficients{}, false
	}
	return *b.lp, true
}

// Topology returns the configured realization.
func (b *Bandlimiter[F]) Topology() Topology { return b.topology }

// StageTopologies returns the realization each enabled stage runs with.
// A disabled stage reports the configured topology.
func (b *Bandlimiter[F]) StageTopologies() (highpass, lowpass Topology) {
	highpass, lowpass = b.topology, b.topology
	if b.hp != nil {
		highpass = b.hpTopology
	}
	if b.lp != nil {
		lowpass = b.lpTopology
	}
	return highpass, lowpass
}

// Process returns x highpassed then lowpassed as a new slice. x is not
// modified.
func (b *Bandlimiter[F]) Process(x []F) ([]F, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]F, len(x))
	copy(out, x)
	b.ProcessInPlace(out)
	return out, nil
}

// ProcessInPlace filters buf in place through both stages.
func (b *Bandlimiter[F]) ProcessInPlace(buf []F) {
	if b.hp != nil {
		runStage(b.hpTopology, b.hp, b.hpSections, buf)
	}
	if b.lp != nil {
		runStage(b.lpTopology, b.lp, b.lpSections, buf)
	}
}

// ProcessTo filters src into dst, growing dst if needed, and returns it.
func (b *Bandlimiter[F]) ProcessTo(dst, src []F) []F {
	dst = core.EnsureLen(dst, len(src))
	copy(dst, src)
	b.ProcessInPlace(dst)
	return dst
}

func runStage[F core.Float](topology Topology, c *Coefficients, sections [2]Biquad, buf []F) {
	if topology == BiquadSections {
		applySectionsInto(sections, buf, buf)
		return
	}
	applyInto(c, buf, buf)
}
