// Package note resolves musical note names ("A4", "C#6", "Bb2") to
// frequencies in Hz using 12-tone equal temperament tuned to A4 = 440 Hz.
package note

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

// semitonesFromC is the distance of each natural pitch class above C,
// before any accidental adjustment.
var semitonesFromC = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Grammar: uppercase letter, optional accidental, non-negative octave.
// The match is fully anchored so trailing garbage is rejected.
var noteNameRe = regexp.MustCompile(`^([A-G])([#b]?)([0-9]+)$`)

// Resolver maps note names to frequencies. The zero value is usable; the
// constructor only wires the diagnostics logger.
type Resolver struct {
	logger *zap.Logger
}

// NewResolver returns a Resolver logging diagnostics to logger.
// A nil logger disables diagnostics.
func NewResolver(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{logger: logger}
}

// Frequency returns the frequency in Hz of the named note.
//
// An empty name is the soft "missing input" case: it logs a warning and
// returns ok=false with a nil error, and the caller must handle the
// absent value explicitly. A non-empty name that does not match the
// grammar fails with ErrInvalidFormat.
//
// The octave is unbounded above; the letter must be uppercase and the
// flat accidental lowercase, e.g. "Bb2".
func (r *Resolver) Frequency(name string) (hz float64, ok bool, err error) {
	if name == "" {
		r.log().Warn("no note passed to Frequency, returning no value")
		return 0, false, nil
	}

	m := noteNameRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
	}

	shift := semitonesFromC[m[1][0]]
	switch m[2] {
	case "#":
		shift++
	case "b":
		shift--
	}
	// Wrap into [0,12) with a true mathematical modulo so Cb lands on 11.
	shift = ((shift % 12) + 12) % 12

	octave, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
	}

	return KeyFrequency(keyNumber(shift, octave)), true, nil
}

// keyNumber places a pitch on the piano key numbering where key 1 = A0
// and key 49 = A4. The +4 shifts the C-based semitone count onto the
// A-based key count.
func keyNumber(semitoneShift, octave int) float64 {
	return float64(4 + semitoneShift + (octave-1)*12)
}

// KeyFrequency converts a (possibly fractional) piano key number to Hz
// relative to key 49 = A4 = 440 Hz.
func KeyFrequency(key float64) float64 {
	return 440.0 * math.Pow(2, (key-49)/12)
}

func (r *Resolver) log() *zap.Logger {
	if r.logger == nil {
		return zap.NewNop()
	}
	return r.logger
}
