package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-rain/dsp/core"
	"github.com/cwbudde/algo-rain/dsp/rain"
	"github.com/cwbudde/algo-rain/measure/spectrum"
	"github.com/cwbudde/algo-rain/stats/level"
)

const (
	monoChannels    = 1
	wavFormatPCM    = 1
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

// maxPCMValue returns the largest positive integer sample for bits.
func maxPCMValue(bits int) (float64, error) {
	switch bits {
	case bitsPerSample16:
		return math.MaxInt16, nil
	case bitsPerSample24:
		return 1<<23 - 1, nil
	case bitsPerSample32:
		return math.MaxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d (use 16, 24 or 32)", bits)
	}
}

// quantize converts samples to integer PCM, clipping to [-1, 1].
func quantize[F core.Float](samples []F, bits int) ([]int, error) {
	maxVal, err := maxPCMValue(bits)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(samples))
	for i, v := range samples {
		x := core.Clamp(float64(v), -1, 1)
		out[i] = int(math.Round(x * maxVal))
	}
	return out, nil
}

// writeWAV writes samples as a mono PCM WAV file.
func writeWAV[F core.Float](path string, samples []F, sampleRate, bits int) (err error) {
	data, err := quantize(samples, bits)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bits, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
		SourceBitDepth: bits,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}

// printReport writes level statistics and the energy split across the
// filter bands.
func printReport[F core.Float](w io.Writer, samples []F, cfg rain.Config) error {
	s := level.Calculate(samples)

	psd, err := spectrum.Analyze(core.ToFloat64(samples), cfg.SampleRate)
	if err != nil {
		return err
	}

	type band struct {
		name   string
		lo, hi float64
	}
	var bands []band
	top := math.Inf(1)
	hp, lp := cfg.HighpassCutoff, cfg.LowpassCutoff
	if lp <= 0 || lp >= cfg.SampleRate/2 {
		lp = top
	}
	if hp > 0 {
		bands = append(bands, band{fmt.Sprintf("< %g Hz", hp), 0, hp})
	}
	bands = append(bands, band{"passband", hp, lp})
	if lp != top {
		bands = append(bands, band{fmt.Sprintf(">= %g Hz", lp), lp, top})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  RMS\t%.2f dBFS\n", s.RMS_dB)
	fmt.Fprintf(tw, "  Peak\t%.2f dBFS\n", s.Peak_dB)
	fmt.Fprintf(tw, "  Crest\t%.2f dB\n", s.CrestFactor_dB)
	fmt.Fprintf(tw, "  DC\t%.6f\n", s.DC)
	fmt.Fprintf(tw, "  Clipped\t%d\n", s.Clipped)
	for _, b := range bands {
		share, err := psd.BandEnergy(b.lo, b.hi)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "  Energy %s\t%.2f %%\n", b.name, 100*share)
	}
	return tw.Flush()
}
