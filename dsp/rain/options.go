package rain

import "github.com/cwbudde/algo-rain/dsp/random"

const defaultSeed = 1

// Option configures an Engine.
type Option func(*options)

type options struct {
	seed int64
	src  random.Source
}

// WithSeed seeds the engine's random stream. The default seed is 1.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithSource draws from src instead of a seeded *rand.Rand. It takes
// precedence over WithSeed. src must not be shared with another engine.
func WithSource(src random.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

func applyOptions(opts []Option) options {
	o := options{seed: defaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) stream() *random.Stream {
	if o.src != nil {
		return random.FromSource(o.src)
	}
	return random.New(o.seed)
}
