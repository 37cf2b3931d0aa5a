package level

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rain/internal/testutil"
)

const tolerance = 1e-10

func TestCalculateEmpty(t *testing.T) {
	s := Calculate[float64](nil)
	if s.Length != 0 {
		t.Fatalf("Length = %d, want 0", s.Length)
	}
	for name, v := range map[string]float64{
		"DC_dB": s.DC_dB, "RMS_dB": s.RMS_dB, "Peak_dB": s.Peak_dB, "CrestFactor_dB": s.CrestFactor_dB,
	} {
		if !math.IsInf(v, -1) {
			t.Errorf("%s = %v, want -Inf", name, v)
		}
	}
}

func TestCalculateSine(t *testing.T) {
	// 100 full cycles of a 480 Hz sine at 48 kHz.
	x := testutil.DeterministicSine(480, 48000, 0.5, 10000)
	s := Calculate(x)

	if s.Length != 10000 {
		t.Fatalf("Length = %d, want 10000", s.Length)
	}
	if math.Abs(s.DC) > tolerance {
		t.Errorf("DC = %g, want 0", s.DC)
	}
	if math.Abs(s.RMS-0.5/math.Sqrt2) > 1e-9 {
		t.Errorf("RMS = %g, want %g", s.RMS, 0.5/math.Sqrt2)
	}
	if math.Abs(s.Peak-0.5) > 1e-9 {
		t.Errorf("Peak = %g, want 0.5", s.Peak)
	}
	if math.Abs(s.CrestFactor-math.Sqrt2) > 1e-6 {
		t.Errorf("CrestFactor = %g, want sqrt(2)", s.CrestFactor)
	}
	if math.Abs(s.CrestFactor_dB-20*math.Log10(math.Sqrt2)) > 1e-5 {
		t.Errorf("CrestFactor_dB = %g", s.CrestFactor_dB)
	}
	if math.Abs(s.Variance-0.125) > 1e-9 {
		t.Errorf("Variance = %g, want 0.125", s.Variance)
	}
	if math.Abs(s.Skewness) > 1e-6 {
		t.Errorf("Skewness = %g, want 0", s.Skewness)
	}
	// Excess kurtosis of a sine is -1.5.
	if math.Abs(s.Kurtosis+1.5) > 1e-3 {
		t.Errorf("Kurtosis = %g, want -1.5", s.Kurtosis)
	}
	if s.Clipped != 0 {
		t.Errorf("Clipped = %d, want 0", s.Clipped)
	}
}

func TestCalculateExtremaAndClipping(t *testing.T) {
	x := []float32{0.25, -1.5, 0.5, 1, -0.25, 0.75}
	s := Calculate(x)

	if s.Max != 1 || s.MaxPos != 3 {
		t.Errorf("Max = %v at %d, want 1 at 3", s.Max, s.MaxPos)
	}
	if s.Min != -1.5 || s.MinPos != 1 {
		t.Errorf("Min = %v at %d, want -1.5 at 1", s.Min, s.MinPos)
	}
	if s.Peak != 1.5 {
		t.Errorf("Peak = %v, want 1.5", s.Peak)
	}
	if s.Clipped != 2 {
		t.Errorf("Clipped = %d, want 2", s.Clipped)
	}
	if s.ZeroCrossings != 4 {
		t.Errorf("ZeroCrossings = %d, want 4", s.ZeroCrossings)
	}
	wantEnergy := 0.0625 + 2.25 + 0.25 + 1 + 0.0625 + 0.5625
	if math.Abs(s.Energy-wantEnergy) > tolerance {
		t.Errorf("Energy = %v, want %v", s.Energy, wantEnergy)
	}
}

func TestCalculateConstant(t *testing.T) {
	x := []float64{0.5, 0.5, 0.5, 0.5, 0.5}
	s := Calculate(x)

	if math.Abs(s.DC-0.5) > tolerance {
		t.Errorf("DC = %v, want 0.5", s.DC)
	}
	if s.Variance != 0 || s.Skewness != 0 || s.Kurtosis != 0 {
		t.Errorf("moments = %v %v %v, want zeros", s.Variance, s.Skewness, s.Kurtosis)
	}
	if math.Abs(s.CrestFactor-1) > tolerance {
		t.Errorf("CrestFactor = %v, want 1", s.CrestFactor)
	}
	if s.ZeroCrossings != 0 {
		t.Errorf("ZeroCrossings = %d, want 0", s.ZeroCrossings)
	}
}

func TestCalculateShortBuffers(t *testing.T) {
	s := Calculate([]float64{1, -1})
	if s.Skewness != 0 || s.Kurtosis != 0 {
		t.Fatalf("short buffer moments = %v %v, want 0", s.Skewness, s.Kurtosis)
	}
	if math.IsNaN(s.Variance) || s.Variance != 1 {
		t.Fatalf("Variance = %v, want 1", s.Variance)
	}
}

func TestCalculateSilence(t *testing.T) {
	s := Calculate(make([]float32, 64))
	if s.CrestFactor != 0 || !math.IsInf(s.CrestFactor_dB, -1) {
		t.Fatalf("silence crest = %v (%v dB)", s.CrestFactor, s.CrestFactor_dB)
	}
	if !math.IsInf(s.RMS_dB, -1) {
		t.Fatalf("silence RMS_dB = %v", s.RMS_dB)
	}
}
