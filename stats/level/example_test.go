package level_test

import (
	"fmt"

	"github.com/cwbudde/algo-rain/stats/level"
)

func ExampleCalculate() {
	s := level.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f zc=%d clipped=%d\n", s.RMS, s.ZeroCrossings, s.Clipped)

	// Output:
	// rms=1.0 zc=3 clipped=4
}
