package random

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := range 64 {
		require.Equal(t, a.Unit(), b.Unit(), "draw %d", i)
		require.Equal(t, a.Range(3500, 4000), b.Range(3500, 4000), "range draw %d", i)
	}
}

func TestStreamDifferentSeeds(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for range 16 {
		if a.Unit() != b.Unit() {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds produced identical draws")
}

func TestRangeBounds(t *testing.T) {
	s := New(7)
	for range 10000 {
		v := s.Range(1, 5)
		require.GreaterOrEqual(t, v, 1)
		require.Less(t, v, 5)
	}
}

func TestRangeEmptyInterval(t *testing.T) {
	s := New(7)
	assert.Equal(t, 4000, s.Range(4000, 4000))
	assert.Equal(t, 10, s.Range(10, 3))
}

func TestRangeEmptyIntervalConsumesNoDraw(t *testing.T) {
	a := New(9)
	b := New(9)

	_ = a.Range(5, 5)
	assert.Equal(t, b.Unit(), a.Unit())
}

func TestJitterBounds(t *testing.T) {
	s := New(3)
	for range 10000 {
		v := s.Jitter(441)
		require.GreaterOrEqual(t, v, -441)
		require.Less(t, v, 441)
	}
	assert.Equal(t, 0, s.Jitter(0))
}

func TestUnitBounds(t *testing.T) {
	s := New(11)
	for range 10000 {
		v := s.Unit()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestChance(t *testing.T) {
	s := New(5)
	for range 100 {
		require.False(t, s.Chance(0))
		require.True(t, s.Chance(1))
	}
}

func TestFromSource(t *testing.T) {
	a := FromSource(rand.New(rand.NewSource(99)))
	b := New(99)
	assert.Equal(t, b.Unit(), a.Unit())

	assert.NotNil(t, FromSource(nil))
}
