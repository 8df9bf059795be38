package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vinodronold/chord-generator/note"
)

// parseChords parses comma-separated chords, each a space-separated list
// of note names or raw frequencies in Hz, e.g. "A5 C#6 E6,880 1100 1320".
func parseChords(s string, r *note.Resolver) ([][]float64, error) {
	var chords [][]float64
	for _, group := range strings.Split(s, ",") {
		fields := strings.Fields(group)
		if len(fields) == 0 {
			return nil, fmt.Errorf("empty chord in %q", s)
		}
		freqs := make([]float64, 0, len(fields))
		for _, tok := range fields {
			if hz, err := strconv.ParseFloat(tok, 64); err == nil {
				if hz <= 0 {
					return nil, fmt.Errorf("frequency must be positive, got %q", tok)
				}
				freqs = append(freqs, hz)
				continue
			}
			hz, ok, err := r.Frequency(tok)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("empty note name in chord %q", group)
			}
			freqs = append(freqs, hz)
		}
		chords = append(chords, freqs)
	}
	return chords, nil
}

// parseDurations parses comma-separated per-chord durations in seconds.
func parseDurations(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	durations := make([]float64, len(parts))
	for i, p := range parts {
		d, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("duration must be positive, got %q", p)
		}
		durations[i] = d
	}
	return durations, nil
}

// parseWeights parses comma-separated per-chord weight lists. A "-" (or
// empty) entry keeps that chord at uniform weights, e.g.
// "-,0.1 0.1 0.1 0.4 0.3,-".
func parseWeights(s string) ([][]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	weights := make([][]float64, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "-" {
			continue
		}
		fields := strings.Fields(p)
		w := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid weight %q: %w", f, err)
			}
			w[j] = v
		}
		weights[i] = w
	}
	return weights, nil
}
