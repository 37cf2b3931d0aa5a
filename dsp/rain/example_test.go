package rain_test

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-rain/dsp/rain"
)

func ExampleGenerate() {
	cfg := rain.DefaultConfig()
	cfg.SampleRate = 8000
	cfg.Duration = time.Second
	cfg.MinDropFreq = 3500
	cfg.MaxDropFreq = 4000

	samples, err := rain.Generate[float32](cfg, rain.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}

	finite := true
	for _, v := range samples {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			finite = false
		}
	}
	fmt.Println(len(samples), finite)
	// Output: 8000 true
}

func ExampleConfig_Validate() {
	cfg := rain.DefaultConfig()
	cfg.RainIntensity = 1.5
	fmt.Println(cfg.Validate())
	// Output: rain: parameter out of range: RainIntensity must be (0, 1], got 1.5
}

func ExampleEnvelope() {
	for _, e := range []float64{0, 2, 4, 6, 8} {
		fmt.Printf("%.4f ", rain.Envelope(e, 8))
	}
	fmt.Println()
	// Output: 0.0000 0.1875 0.2500 0.1875 0.0000
}
