package note

import "errors"

var (
	// ErrInvalidFormat reports a note name that does not match the
	// Letter[Accidental]Octave grammar, e.g. "A#6" or "D4".
	ErrInvalidFormat = errors.New("note name must be of the form \"A#6\" or \"D4\"")
)
