// Command lrinfo prints the coefficients and frequency response of
// fourth-order Linkwitz-Riley filter sections.
//
// Usage:
//
//	lrinfo [flags] [cutoff-hz ...]
//
// Without arguments it prints the rain band-limiter pair (250 Hz and 16 kHz).
//
// Examples:
//
//	lrinfo
//	lrinfo -rate 48000 1000
//	lrinfo -sections -points 50,100,200 250
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-rain/dsp/filter/crossover"
)

var defaultCutoffs = []float64{250, 16000}

var defaultPoints = []float64{20, 50, 100, 250, 500, 1000, 2000, 4000, 8000, 16000, 20000}

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	sections := flag.Bool("sections", false, "also print the equivalent biquad sections")
	points := flag.String("points", "", "comma-separated response frequencies in Hz")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lrinfo [flags] [cutoff-hz ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints LR4 lowpass/highpass coefficients and their response.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the 250 Hz and 16 kHz pair.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lrinfo -rate 48000 1000\n")
		fmt.Fprintf(os.Stderr, "  lrinfo -sections -points 50,100,200 250\n")
	}
	flag.Parse()

	cutoffs, err := parseList(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(cutoffs) == 0 {
		cutoffs = defaultCutoffs
	}

	freqs := defaultPoints
	if *points != "" {
		freqs, err = parseList(strings.Split(*points, ","))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	for i, fc := range cutoffs {
		if i > 0 {
			fmt.Println()
		}
		if err := printCutoff(os.Stdout, fc, *rate, freqs, *sections); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func parseList(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

func printCutoff(w io.Writer, cutoff, sampleRate float64, freqs []float64, sections bool) error {
	lp, err := crossover.LowpassCoefficients(cutoff, sampleRate)
	if err != nil {
		return err
	}
	hp, err := crossover.HighpassCoefficients(cutoff, sampleRate)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "LR4 %g Hz @ %g Hz\n\n", cutoff, sampleRate)
	fmt.Fprintf(tw, "Coef\tLowpass\tHighpass\n")
	fmt.Fprintf(tw, "----\t-------\t--------\n")
	for _, row := range coefficientRows(lp, hp) {
		fmt.Fprintf(tw, "%s\t% .12e\t% .12e\n", row.name, row.lp, row.hp)
	}

	if sections {
		lpSec, err := crossover.Sections(lp)
		if err != nil {
			return err
		}
		hpSec, err := crossover.Sections(hp)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "\nSection\tb0\tb1\tb2\ta1\ta2\n")
		fmt.Fprintf(tw, "-------\t--\t--\t--\t--\t--\n")
		for i, s := range lpSec {
			fmt.Fprintf(tw, "lp%d\t% .9f\t% .9f\t% .9f\t% .9f\t% .9f\n", i+1, s.B0, s.B1, s.B2, s.A1, s.A2)
		}
		for i, s := range hpSec {
			fmt.Fprintf(tw, "hp%d\t% .9f\t% .9f\t% .9f\t% .9f\t% .9f\n", i+1, s.B0, s.B1, s.B2, s.A1, s.A2)
		}
	}

	fmt.Fprintf(tw, "\nFreq [Hz]\tLP [dB]\tHP [dB]\tLP+HP [dB]\tLP-HP phase [deg]\n")
	fmt.Fprintf(tw, "---------\t-------\t-------\t----------\t-----------------\n")
	for _, f := range freqs {
		if f <= 0 || f >= sampleRate/2 {
			continue
		}
		l, h := lp.Response(f), hp.Response(f)
		diff := (cmplx.Phase(l) - cmplx.Phase(h)) * 180 / math.Pi
		fmt.Fprintf(tw, "%g\t%.2f\t%.2f\t%.4f\t%.1f\n",
			f, toDB(cmplx.Abs(l)), toDB(cmplx.Abs(h)), toDB(cmplx.Abs(l+h)), wrapDegrees(diff))
	}

	return tw.Flush()
}

type coefficientRow struct {
	name   string
	lp, hp float64
}

func coefficientRows(lp, hp crossover.Coefficients) []coefficientRow {
	return []coefficientRow{
		{"a0", lp.A0, hp.A0},
		{"a1", lp.A1, hp.A1},
		{"a2", lp.A2, hp.A2},
		{"a3", lp.A3, hp.A3},
		{"a4", lp.A4, hp.A4},
		{"b1", lp.B1, hp.B1},
		{"b2", lp.B2, hp.B2},
		{"b3", lp.B3, hp.B3},
		{"b4", lp.B4, hp.B4},
	}
}

func toDB(mag float64) float64 {
	if mag == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(mag)
}

// wrapDegrees maps d into (-180, 180].
func wrapDegrees(d float64) float64 {
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}
	return d
}
