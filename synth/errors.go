package synth

import "errors"

var (
	// ErrNoChords reports an empty chord sequence.
	ErrNoChords = errors.New("at least one chord is required")

	// ErrEmptyChord reports a chord with no notes in it.
	ErrEmptyChord = errors.New("every chord must contain at least one frequency")

	// ErrInvalidDuration reports a chord duration that is zero or negative.
	ErrInvalidDuration = errors.New("every duration must be positive")

	// ErrLengthMismatch reports durations or weights whose length
	// disagrees with the chord sequence, or a per-chord weight list whose
	// length disagrees with that chord's note count.
	ErrLengthMismatch = errors.New("durations and weights must be specified for each chord")
)
