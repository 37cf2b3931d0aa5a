package rain

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-rain/dsp/core"
)

// GenerateBatch renders one buffer per seed, running up to limit engines at
// once (limit <= 0 means no bound). Result i equals
// Generate[F](cfg, WithSeed(seeds[i])). On error or cancellation no buffers
// are returned.
func GenerateBatch[F core.Float](ctx context.Context, cfg Config, seeds []int64, limit int) ([][]F, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([][]F, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := New[F](cfg, WithSeed(seed))
			if err != nil {
				return err
			}
			out[i] = e.Generate()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
