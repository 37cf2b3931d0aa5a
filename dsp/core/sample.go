package core

// Float is the set of sample widths the synthesis and filter code is
// instantiated for. Internal arithmetic runs in float64; F only decides how
// samples are stored.
type Float interface {
	float32 | float64
}

// ToFloat64 widens a sample buffer to float64. The result is a new slice.
func ToFloat64[F Float](src []F) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}
