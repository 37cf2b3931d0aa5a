package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleInPlace(t *testing.T) {
	buf64 := []float64{1, -2, 0.5, 4, 8, 16, 32, 64, 128}
	ScaleInPlace(buf64, 0.5)
	assert.Equal(t, []float64{0.5, -1, 0.25, 2, 4, 8, 16, 32, 64}, buf64)

	buf32 := []float32{1, -2, 0.5}
	ScaleInPlace(buf32, 2)
	assert.Equal(t, []float32{2, -4, 1}, buf32)
}

func TestScaleInPlaceUnityIsNoop(t *testing.T) {
	buf := []float64{1, 2, 3}
	ScaleInPlace(buf, 1)
	assert.Equal(t, []float64{1, 2, 3}, buf)
	ScaleInPlace([]float64{}, 3)
}

func TestForReturnsSameTable(t *testing.T) {
	assert.Same(t, For[float64](), For[float64]())
	assert.Same(t, For[float32](), For[float32]())
}
