package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rain/dsp/filter/crossover"
	"github.com/cwbudde/algo-rain/dsp/rain"
)

func TestQuantize(t *testing.T) {
	got, err := quantize([]float64{0, 0.5, -0.5, 1, -1, 1.7, -3}, 16)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 16384, -16384, 32767, -32767, 32767, -32767}, got)

	got24, err := quantize([]float32{1, -0.25}, 24)
	require.NoError(t, err)
	assert.Equal(t, []int{8388607, -2097152}, got24)

	_, err = quantize([]float64{0}, 12)
	require.Error(t, err)
}

func TestMaxPCMValue(t *testing.T) {
	for bits, want := range map[int]float64{16: 32767, 24: 8388607, 32: 2147483647} {
		got, err := maxPCMValue(bits)
		require.NoError(t, err)
		assert.Equal(t, want, got, "bits %d", bits)
	}
	_, err := maxPCMValue(8)
	assert.Error(t, err)
}

func TestWriteWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	samples := []float64{0, 0.25, 0.5, -0.5, -1, 1, 0.125, 0}
	require.NoError(t, writeWAV(path, samples, 8000, 16))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, uint32(8000), dec.SampleRate)
	assert.Equal(t, uint16(16), dec.BitDepth)
	assert.Equal(t, uint16(1), dec.NumChans)

	want, err := quantize(samples, 16)
	require.NoError(t, err)
	assert.Equal(t, want, buf.Data)
}

func TestVariantPath(t *testing.T) {
	assert.Equal(t, "out/rain-7.wav", variantPath("out/rain.wav", 7))
	assert.Equal(t, "rain-12", variantPath("rain", 12))
}

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags([]string{"out.wav"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, rain.DefaultConfig(), opts.cfg)
	assert.Equal(t, int64(1), opts.seed)
	assert.Equal(t, 16, opts.bits)
	assert.Equal(t, 1, opts.variants)
	assert.Equal(t, "out.wav", opts.output)
}

func TestParseFlagsLegacyOverride(t *testing.T) {
	opts, err := parseFlags([]string{"-legacy", "-intensity", "0.01", "-hp", "100", "-sections", "out.wav"}, io.Discard)
	require.NoError(t, err)

	want := rain.LegacyConfig()
	want.RainIntensity = 0.01
	want.HighpassCutoff = 100
	want.Topology = crossover.BiquadSections
	assert.Equal(t, want, opts.cfg)
}

func TestParseFlagsOverrides(t *testing.T) {
	opts, err := parseFlags([]string{
		"-rate", "8000", "-duration", "2s", "-per-sample", "-wind", "-gust-rate", "0.5",
		"-min-freq", "3500", "-max-freq", "4000", "-max-osc", "3", "-gain", "0.5",
		"-seed", "9", "-bits", "24", "-fast", "out.wav",
	}, io.Discard)
	require.NoError(t, err)

	cfg := opts.cfg
	assert.Equal(t, 8000.0, cfg.SampleRate)
	assert.Equal(t, 2*time.Second, cfg.Duration)
	assert.Equal(t, rain.AcceptPerSample, cfg.Acceptance)
	assert.True(t, cfg.Wind)
	assert.Equal(t, 0.5, cfg.WindGustRate)
	assert.Equal(t, 3500, cfg.MinDropFreq)
	assert.Equal(t, 4000, cfg.MaxDropFreq)
	assert.Equal(t, 3, cfg.MaxOscillationsPerDrop)
	assert.Equal(t, 0.5, cfg.OutputGain)
	assert.Equal(t, int64(9), opts.seed)
	assert.Equal(t, 24, opts.bits)
	assert.True(t, opts.fast)
}

func TestParseFlagsGainDB(t *testing.T) {
	opts, err := parseFlags([]string{"-gain", "0.9", "-gain-db", "-20", "out.wav"}, io.Discard)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, opts.cfg.OutputGain, 1e-12)
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := parseFlags(nil, io.Discard)
	assert.True(t, errors.Is(err, errUsage))

	_, err = parseFlags([]string{"-nope", "out.wav"}, io.Discard)
	assert.True(t, errors.Is(err, errUsage))

	_, err = parseFlags([]string{"-bits", "20", "out.wav"}, io.Discard)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-variants", "0", "out.wav"}, io.Discard)
	assert.Error(t, err)
}

func TestRunWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.wav")
	var out bytes.Buffer

	err := run([]string{"-rate", "8000", "-duration", "1s", "-report", path}, &out)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(16000))
	assert.Contains(t, out.String(), "Rendered rain.wav: 8000 samples, seed 1")
	assert.Contains(t, out.String(), "Energy < 250 Hz")
}

func TestRunVariants(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	err := run([]string{"-rate", "8000", "-duration", "1s", "-fast", "-variants", "2", "-seed", "5",
		filepath.Join(dir, "take.wav")}, &out)
	require.NoError(t, err)

	for _, name := range []string{"take-5.wav", "take-6.wav"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	err := run([]string{"-intensity", "1.5", path}, io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rain.ErrOutOfRange))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
