package main

import (
	"errors"
	"math"
	"testing"

	"github.com/vinodronold/chord-generator/note"
)

func TestParseChords(t *testing.T) {
	r := note.NewResolver(nil)

	chords, err := parseChords("A4,880 1100.5,A5 C#6 E6", r)
	if err != nil {
		t.Fatal(err)
	}
	if len(chords) != 3 {
		t.Fatalf("expected 3 chords, got %d", len(chords))
	}
	if len(chords[0]) != 1 || math.Abs(chords[0][0]-440.0) > 1e-6 {
		t.Errorf("chord 0: expected [440], got %v", chords[0])
	}
	if len(chords[1]) != 2 || chords[1][0] != 880.0 || chords[1][1] != 1100.5 {
		t.Errorf("chord 1: expected [880 1100.5], got %v", chords[1])
	}
	if len(chords[2]) != 3 {
		t.Errorf("chord 2: expected 3 notes, got %v", chords[2])
	}
	if math.Abs(chords[2][0]-880.0) > 1e-6 {
		t.Errorf("chord 2 note 0: expected A5=880, got %v", chords[2][0])
	}
}

func TestParseChordsErrors(t *testing.T) {
	r := note.NewResolver(nil)

	tests := []struct {
		name  string
		input string
	}{
		{"invalid note", "H4"},
		{"trailing comma", "A4,"},
		{"negative frequency", "-440"},
		{"zero frequency", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseChords(tt.input, r); err == nil {
				t.Fatalf("parseChords(%q) should fail", tt.input)
			}
		})
	}

	_, err := parseChords("H4", r)
	if !errors.Is(err, note.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestParseDurations(t *testing.T) {
	durations, err := parseDurations("1, 1.5 ,2")
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 1.5, 2}
	if len(durations) != len(want) {
		t.Fatalf("expected %v, got %v", want, durations)
	}
	for i := range want {
		if durations[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, durations)
		}
	}

	if got, err := parseDurations(""); err != nil || got != nil {
		t.Fatalf("empty input should yield nil, got %v, %v", got, err)
	}
	if _, err := parseDurations("1,-2"); err == nil {
		t.Fatal("negative duration should fail")
	}
	if _, err := parseDurations("abc"); err == nil {
		t.Fatal("non-numeric duration should fail")
	}
}

func TestParseWeights(t *testing.T) {
	weights, err := parseWeights("-,0.1 0.1 0.1 0.4 0.3,-")
	if err != nil {
		t.Fatal(err)
	}
	if len(weights) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(weights))
	}
	if weights[0] != nil || weights[2] != nil {
		t.Errorf("\"-\" entries should stay nil, got %v and %v", weights[0], weights[2])
	}
	if len(weights[1]) != 5 || weights[1][3] != 0.4 {
		t.Errorf("expected [0.1 0.1 0.1 0.4 0.3], got %v", weights[1])
	}

	if got, err := parseWeights(""); err != nil || got != nil {
		t.Fatalf("empty input should yield nil, got %v, %v", got, err)
	}
	if _, err := parseWeights("0.5 x"); err == nil {
		t.Fatal("non-numeric weight should fail")
	}
}
