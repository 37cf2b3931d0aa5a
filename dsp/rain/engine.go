package rain

import (
	"fmt"

	"github.com/cwbudde/algo-rain/dsp/core"
	"github.com/cwbudde/algo-rain/dsp/filter/crossover"
	"github.com/cwbudde/algo-rain/dsp/random"
	"github.com/cwbudde/algo-rain/internal/simdops"
)

// Engine renders rain buffers of sample type F for one validated Config.
// An Engine owns its random stream and is not safe for concurrent use;
// create one Engine per goroutine.
type Engine[F core.Float] struct {
	cfg     Config
	rng     *random.Stream
	limiter *crossover.Bandlimiter[F]
}

// New validates cfg and returns an Engine.
func New[F core.Float](cfg Config, opts ...Option) (*Engine[F], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	limiter, err := crossover.NewBandlimiter[F](cfg.HighpassCutoff, cfg.LowpassCutoff, cfg.SampleRate, cfg.Topology)
	if err != nil {
		return nil, fmt.Errorf("rain: %w", err)
	}
	return &Engine[F]{
		cfg:     cfg,
		rng:     applyOptions(opts).stream(),
		limiter: limiter,
	}, nil
}

// Config returns the engine configuration.
func (e *Engine[F]) Config() Config {
	return e.cfg
}

// Generate renders one band-limited buffer of Config.SampleCount samples
// scaled by OutputGain. Each call continues the engine's random stream, so
// consecutive calls produce different buffers.
func (e *Engine[F]) Generate() []F {
	out := e.Raw()
	e.limiter.ProcessInPlace(out)
	simdops.ScaleInPlace(out, F(e.cfg.OutputGain))
	return out
}

// Raw renders one buffer without band-limiting or output gain.
func (e *Engine[F]) Raw() []F {
	cfg := &e.cfg
	n := cfg.SampleCount()
	out := make([]F, n)

	var (
		d      droplet
		wind   gust
		fs     = cfg.SampleRate
		bgGain = cfg.backgroundGain()
		span   = jitterSpan(fs)
	)

	for i := range out {
		if !d.active {
			d.arm(e.rng, cfg)
			if cfg.Wind && !wind.active {
				wind.maybeStart(e.rng, fs, cfg.WindGustRate)
			}
		}

		var s float64
		if wind.active {
			s = wind.next(e.rng, fs) * bgGain
		} else {
			s = background(e.rng, i, d.frequency, fs, span) * bgGain
		}

		if d.active {
			s = d.render(s, i, fs)
		}

		out[i] = F(s)
	}

	return out
}

// Generate validates cfg and renders one band-limited buffer.
//
// Example:
//
//	samples, err := rain.Generate[float64](rain.DefaultConfig(), rain.WithSeed(3))
func Generate[F core.Float](cfg Config, opts ...Option) ([]F, error) {
	e, err := New[F](cfg, opts...)
	if err != nil {
		return nil, err
	}
	return e.Generate(), nil
}
