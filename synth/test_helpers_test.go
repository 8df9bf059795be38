package synth

import (
	"math"
	"path/filepath"
	"testing"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/vinodronold/chord-generator/internal/wavio"
)

// renderFile writes a chord sequence to a temp WAV file and returns its path.
func renderFile(t *testing.T, name string, chords [][]float64, durations []float64, weights [][]float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	s := NewSynthesizer(nil)
	if err := s.WriteFile(path, chords, durations, weights); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// decodeFile reads a rendered WAV back for verification.
func decodeFile(t *testing.T, path string) ([]float64, wavio.Info) {
	t.Helper()
	samples, info, err := wavio.ReadMono(path)
	if err != nil {
		t.Fatalf("ReadMono(%s): %v", path, err)
	}
	return samples, info
}

// binMagnitudes returns spectrum magnitudes of the first fftSize samples,
// Hann-windowed to keep leakage away from neighboring peaks.
func binMagnitudes(t *testing.T, samples []float64, fftSize int) []float64 {
	t.Helper()
	if len(samples) < fftSize {
		t.Fatalf("need %d samples for FFT, have %d", fftSize, len(samples))
	}

	plan, err := algofft.NewPlanReal64(fftSize)
	if err != nil {
		t.Fatalf("fft plan: %v", err)
	}

	buf := make([]float64, fftSize)
	for i := range buf {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(fftSize-1))
		buf[i] = samples[i] * w
	}
	spec := make([]complex128, fftSize/2+1)
	plan.Forward(spec, buf)

	mags := make([]float64, len(spec))
	for k, c := range spec {
		mags[k] = math.Hypot(real(c), imag(c))
	}
	return mags
}

// peakBin returns the bin with the largest magnitude in [lo, hi].
func peakBin(mags []float64, lo, hi int) int {
	best := lo
	for k := lo; k <= hi && k < len(mags); k++ {
		if mags[k] > mags[best] {
			best = k
		}
	}
	return best
}
