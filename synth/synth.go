// Package synth renders chord sequences as additive sine waves and
// encodes them as mono 16-bit PCM WAV files.
//
// A chord is an ordered list of frequencies in Hz sounding simultaneously.
// Each chord in a sequence carries a duration in seconds (default 1.0) and
// a per-note weight vector (default uniform 1/n). The rendered signal is
// the concatenation of every chord's weighted sine sum, sampled at
// 44100 Hz.
package synth

import (
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
)

const (
	// DefaultSampleRate is the fixed output sample rate in samples/sec.
	DefaultSampleRate = 44100

	// DefaultAmplitude scales unit-amplitude samples before quantization;
	// a full-scale sine peaks at DefaultAmplitude/2 = 4000 PCM counts.
	DefaultAmplitude = 8000.0

	// DefaultFilename is used by WriteFile when no path is given.
	DefaultFilename = "my_chord.wav"
)

// Synthesizer renders chord sequences. All output parameters (sample
// rate, amplitude scale, mono 16-bit PCM) are fixed.
type Synthesizer struct {
	logger     *zap.Logger
	sampleRate int
	amplitude  float64
}

// NewSynthesizer returns a Synthesizer logging diagnostics to logger.
// A nil logger disables diagnostics.
func NewSynthesizer(logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{
		logger:     logger,
		sampleRate: DefaultSampleRate,
		amplitude:  DefaultAmplitude,
	}
}

// validate checks every input length before any synthesis work so that a
// failing call never produces partial output.
func (s *Synthesizer) validate(chords [][]float64, durations []float64, weights [][]float64) error {
	if len(chords) == 0 {
		return ErrNoChords
	}
	for i, freqs := range chords {
		if len(freqs) == 0 {
			return fmt.Errorf("%w: chord %d is empty", ErrEmptyChord, i)
		}
	}
	if durations != nil {
		if len(durations) != len(chords) {
			return fmt.Errorf("%w: %d durations for %d chords", ErrLengthMismatch, len(durations), len(chords))
		}
		for i, d := range durations {
			if d <= 0 {
				return fmt.Errorf("%w: chord %d has duration %g", ErrInvalidDuration, i, d)
			}
		}
	}
	if weights != nil {
		if len(weights) != len(chords) {
			return fmt.Errorf("%w: %d weight lists for %d chords", ErrLengthMismatch, len(weights), len(chords))
		}
		for i, w := range weights {
			if w != nil && len(w) != len(chords[i]) {
				return fmt.Errorf("%w: chord %d has %d notes but %d weights", ErrLengthMismatch, i, len(chords[i]), len(w))
			}
		}
	}
	return nil
}

// Samples computes the raw (pre-quantization) sample buffer for a chord
// sequence.
//
// durations may be nil, meaning 1.0 second per chord; given durations
// must all be positive. weights may be nil,
// and any inner slice may be nil, meaning uniform 1/n per note of that
// chord. The sample count of each chord is the sample rate times its
// duration, truncated toward zero.
func (s *Synthesizer) Samples(chords [][]float64, durations []float64, weights [][]float64) ([]float64, error) {
	if err := s.validate(chords, durations, weights); err != nil {
		return nil, err
	}

	counts := s.sampleCounts(chords, durations)
	total := 0
	for _, n := range counts {
		total += n
	}

	rate := float64(s.sampleRate)
	buf := make([]float64, 0, total)
	for i, freqs := range chords {
		w := chordWeights(freqs, weights, i)
		for x := 0; x < counts[i]; x++ {
			var v float64
			for j, freq := range freqs {
				v += w[j] * math.Sin(2*math.Pi*freq*float64(x)/rate)
			}
			buf = append(buf, v)
		}
	}

	s.logger.Debug("sine wave has been computed",
		zap.Int("chords", len(chords)),
		zap.Int("samples", len(buf)))
	return buf, nil
}

// Quantize converts raw samples to signed 16-bit PCM values, rounding
// half away from zero and clamping to the representable range. Weighted
// sums above unit amplitude therefore pin at full scale instead of
// wrapping.
func (s *Synthesizer) Quantize(samples []float64) []int {
	out := make([]int, len(samples))
	step := len(samples) / 10
	for i, v := range samples {
		if step > 0 && i%step == 0 {
			s.logger.Debug("quantize progress",
				zap.Float64("percent", float64(i)*100.0/float64(len(samples))),
				zap.Int("sample", i),
				zap.Int("total", len(samples)))
		}
		q := math.Round(v * s.amplitude / 2)
		if q > math.MaxInt16 {
			q = math.MaxInt16
		} else if q < math.MinInt16 {
			q = math.MinInt16
		}
		out[i] = int(q)
	}
	return out
}

// Encode renders the chord sequence and writes the complete WAV stream
// to w. See Samples for the durations/weights conventions.
func (s *Synthesizer) Encode(w io.WriteSeeker, chords [][]float64, durations []float64, weights [][]float64) error {
	data, err := s.Samples(chords, durations, weights)
	if err != nil {
		return err
	}
	return s.encodePCM16(w, s.Quantize(data))
}

// WriteFile renders the chord sequence into a WAV file at path, or at
// DefaultFilename when path is empty. Validation happens before the file
// is created, so no file appears on invalid input.
func (s *Synthesizer) WriteFile(path string, chords [][]float64, durations []float64, weights [][]float64) error {
	data, err := s.Samples(chords, durations, weights)
	if err != nil {
		return err
	}
	if path == "" {
		path = DefaultFilename
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := s.encodePCM16(f, s.Quantize(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	s.logger.Debug("save complete", zap.String("path", path))
	return nil
}

// sampleCounts truncates sampleRate*duration toward zero for each chord.
func (s *Synthesizer) sampleCounts(chords [][]float64, durations []float64) []int {
	counts := make([]int, len(chords))
	for i := range chords {
		d := 1.0
		if durations != nil {
			d = durations[i]
		}
		counts[i] = int(float64(s.sampleRate) * d)
	}
	return counts
}

// chordWeights resolves the effective weight vector of chord i, filling
// in uniform 1/n when the caller supplied none.
func chordWeights(freqs []float64, weights [][]float64, i int) []float64 {
	if weights != nil && weights[i] != nil {
		return weights[i]
	}
	w := make([]float64, len(freqs))
	for j := range w {
		w[j] = 1.0 / float64(len(freqs))
	}
	return w
}
