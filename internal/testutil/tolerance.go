package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-rain/dsp/core"
)

// Sample mirrors core.Float so helpers accept either sample width without
// importing the dsp tree.
type Sample interface {
	float32 | float64
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[F Sample](t *testing.T, got, want []F, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireNearlyEqual fails t unless got and want agree within eps, absolute
// near zero and relative otherwise. Use it for values spanning many decades,
// such as stopband magnitudes.
func RequireNearlyEqual(t *testing.T, got, want, eps float64, what string) {
	t.Helper()
	if !core.NearlyEqual(got, want, eps) {
		t.Fatalf("%s: got %v, want %v (eps %v)", what, got, want, eps)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[F Sample](t *testing.T, data []F) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[F Sample](a, b []F) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
