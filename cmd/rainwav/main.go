// Command rainwav renders a rain soundscape to a mono PCM WAV file.
//
// Usage:
//
//	rainwav [flags] output.wav
//
// Examples:
//
//	rainwav rain.wav                           # 10 s at 44.1 kHz, 16-bit
//	rainwav -duration 60s -intensity 0.3 heavy.wav
//	rainwav -legacy -bits 24 legacy.wav         # unfiltered generator with wind
//	rainwav -variants 4 -seed 10 take.wav       # take-10.wav .. take-13.wav
//	rainwav -fast -report -v rain.wav           # float32 engine, print levels
//	rainwav -gain-db -6 quiet.wav
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cwbudde/algo-rain/dsp/core"
	"github.com/cwbudde/algo-rain/dsp/filter/crossover"
	"github.com/cwbudde/algo-rain/dsp/rain"
)

const minRequiredArgs = 1

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// options holds everything parsed from the command line.
type options struct {
	cfg      rain.Config
	seed     int64
	bits     int
	fast     bool
	variants int
	report   bool
	verbose  bool
	output   string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("rainwav", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := rain.DefaultConfig()
	legacy := fs.Bool("legacy", false, "start from the unfiltered legacy preset (per-sample acceptance, wind)")
	rate := fs.Float64("rate", def.SampleRate, "sample rate in Hz")
	duration := fs.Duration("duration", def.Duration, "length of the rendering (1s to 1h)")
	intensity := fs.Float64("intensity", def.RainIntensity, "rain intensity in (0, 1]")
	background := fs.Float64("background", def.BackgroundIntensity, "background hiss level relative to droplets")
	minFreq := fs.Int("min-freq", def.MinDropFreq, "lowest droplet pitch in Hz")
	maxFreq := fs.Int("max-freq", def.MaxDropFreq, "highest droplet pitch in Hz (exclusive)")
	maxOsc := fs.Int("max-osc", def.MaxOscillationsPerDrop, "exclusive upper bound on oscillations per droplet")
	perSample := fs.Bool("per-sample", false, "use the legacy per-sample acceptance model")
	wind := fs.Bool("wind", false, "enable wind gusts")
	gustRate := fs.Float64("gust-rate", def.WindGustRate, "expected wind gusts per second")
	hp := fs.Float64("hp", def.HighpassCutoff, "highpass cutoff in Hz, 0 disables")
	lp := fs.Float64("lp", def.LowpassCutoff, "lowpass cutoff in Hz, 0 disables")
	sections := fs.Bool("sections", false, "realize the LR4 filters as cascaded biquads")
	gain := fs.Float64("gain", def.OutputGain, "output gain applied after filtering")
	gainDB := fs.Float64("gain-db", 0, "output gain in dB, overrides -gain")

	opts := &options{}
	fs.Int64Var(&opts.seed, "seed", 1, "random seed, 0 seeds from the clock")
	fs.IntVar(&opts.bits, "bits", 16, "PCM bit depth: 16, 24 or 32")
	fs.BoolVar(&opts.fast, "fast", false, "use the float32 engine")
	fs.IntVar(&opts.variants, "variants", 1, "render this many consecutive seeds concurrently")
	fs.BoolVar(&opts.report, "report", false, "print level and band statistics")
	fs.BoolVar(&opts.verbose, "v", false, "verbose output")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rainwav [flags] output.wav\n\n")
		fmt.Fprintf(stderr, "Renders a rain soundscape to a mono PCM WAV file.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	if fs.NArg() < minRequiredArgs {
		fs.Usage()
		return nil, errUsage
	}
	opts.output = fs.Arg(0)

	cfg := def
	if *legacy {
		cfg = rain.LegacyConfig()
	}

	// Explicit flags override the chosen preset.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rate":
			cfg.SampleRate = *rate
		case "duration":
			cfg.Duration = *duration
		case "intensity":
			cfg.RainIntensity = *intensity
		case "background":
			cfg.BackgroundIntensity = *background
		case "min-freq":
			cfg.MinDropFreq = *minFreq
		case "max-freq":
			cfg.MaxDropFreq = *maxFreq
		case "max-osc":
			cfg.MaxOscillationsPerDrop = *maxOsc
		case "per-sample":
			cfg.Acceptance = rain.AcceptDropRate
			if *perSample {
				cfg.Acceptance = rain.AcceptPerSample
			}
		case "wind":
			cfg.Wind = *wind
		case "gust-rate":
			cfg.WindGustRate = *gustRate
		case "hp":
			cfg.HighpassCutoff = *hp
		case "lp":
			cfg.LowpassCutoff = *lp
		case "sections":
			cfg.Topology = crossover.DirectForm
			if *sections {
				cfg.Topology = crossover.BiquadSections
			}
		case "gain":
			cfg.OutputGain = *gain
		}
	})
	if isSet(fs, "gain-db") {
		cfg.OutputGain = core.DBToLinear(*gainDB)
	}
	opts.cfg = cfg

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	if _, err := maxPCMValue(opts.bits); err != nil {
		return nil, err
	}
	if opts.variants < 1 {
		return nil, fmt.Errorf("variants must be >= 1, got %d", opts.variants)
	}
	return opts, nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	if err := opts.cfg.Validate(); err != nil {
		return err
	}

	if opts.verbose {
		cfg := opts.cfg
		log.Printf("Output: %s", opts.output)
		log.Printf("Format: %.0f Hz, %d-bit, %v", cfg.SampleRate, opts.bits, cfg.Duration)
		log.Printf("Rain: intensity %g (%s), background %g, drops %d..%d Hz, < %d oscillations",
			cfg.RainIntensity, cfg.Acceptance, cfg.BackgroundIntensity,
			cfg.MinDropFreq, cfg.MaxDropFreq, cfg.MaxOscillationsPerDrop)
		log.Printf("Filter: highpass %g Hz, lowpass %g Hz (%s), gain %g",
			cfg.HighpassCutoff, cfg.LowpassCutoff, cfg.Topology, cfg.OutputGain)
		if cfg.Wind {
			log.Printf("Wind: %g gusts/s", cfg.WindGustRate)
		}
		if opts.fast {
			log.Printf("Precision: float32 (fast mode)")
		} else {
			log.Printf("Precision: float64")
		}
	}

	if opts.fast {
		return render[float32](opts, stdout)
	}
	return render[float64](opts, stdout)
}

func render[F core.Float](opts *options, stdout io.Writer) error {
	seeds := make([]int64, opts.variants)
	for i := range seeds {
		seeds[i] = opts.seed + int64(i)
	}

	start := time.Now()
	buffers, err := rain.GenerateBatch[F](context.Background(), opts.cfg, seeds, 0)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for i, buf := range buffers {
		path := opts.output
		if len(buffers) > 1 {
			path = variantPath(opts.output, seeds[i])
		}
		if opts.verbose {
			log.Printf("Writing %s (seed %d)", path, seeds[i])
		}
		if err := writeWAV(path, buf, int(opts.cfg.SampleRate), opts.bits); err != nil {
			return err
		}

		fmt.Fprintf(stdout, "Rendered %s: %d samples, seed %d\n", filepath.Base(path), len(buf), seeds[i])
		if opts.report {
			if err := printReport(stdout, buf, opts.cfg); err != nil {
				return err
			}
		}
	}

	audioSeconds := opts.cfg.Duration.Seconds() * float64(len(buffers))
	fmt.Fprintf(stdout, "Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(), audioSeconds/elapsed.Seconds())
	return nil
}

// variantPath inserts the seed before the extension: rain.wav -> rain-7.wav.
func variantPath(path string, seed int64) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), seed, ext)
}
