// Package simdops binds the block operations the engine needs to the
// float32 and float64 kernels of github.com/tphakala/simd, so generic code
// can call one function table regardless of sample width.
package simdops

import (
	"github.com/cwbudde/algo-rain/dsp/core"
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated operations for type F.
type Ops[F core.Float] struct {
	// Scale multiplies each element by s: dst[i] = a[i] * s.
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		Scale: f32.Scale,
	}
	ops64 = Ops[float64]{
		Scale: f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F core.Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported type")
	}
}

// ScaleInPlace multiplies buf by gain. A unit gain is a no-op.
func ScaleInPlace[F core.Float](buf []F, gain F) {
	if gain == 1 || len(buf) == 0 {
		return
	}
	For[F]().Scale(buf, buf, gain)
}
