package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vinodronold/chord-generator/internal/wavio"
	"github.com/vinodronold/chord-generator/note"
	"github.com/vinodronold/chord-generator/synth"
)

func main() {
	// Command-line flags
	chordsFlag := flag.String("chords", "", "Comma-separated chords, each a space-separated list of note names (\"A5 C#6 E6\") or raw frequencies in Hz. Empty renders the default progression")
	durationsFlag := flag.String("durations", "", "Comma-separated per-chord durations in seconds (default 1s each)")
	weightsFlag := flag.String("weights", "", "Comma-separated per-chord weight lists, \"-\" for uniform, e.g. \"-,0.1 0.1 0.1 0.4 0.3,-\"")
	output := flag.String("output", synth.DefaultFilename, "Output WAV file path")
	verify := flag.Bool("verify", false, "Re-read the written file and report its format")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	chords, durations, weights := defaultProgression()
	if *chordsFlag != "" {
		resolver := note.NewResolver(logger)
		chords, err = parseChords(*chordsFlag, resolver)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -chords: %v\n", err)
			os.Exit(1)
		}
		durations, err = parseDurations(*durationsFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -durations: %v\n", err)
			os.Exit(1)
		}
		weights, err = parseWeights(*weightsFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -weights: %v\n", err)
			os.Exit(1)
		}
	}

	s := synth.NewSynthesizer(logger)
	if err := s.WriteFile(*output, chords, durations, weights); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("Successfully wrote %s (%d chords)\n", *output, len(chords))

	if *verify {
		_, info, err := wavio.ReadMono(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error verifying %s: %v\n", *output, err)
			os.Exit(1)
		}
		fmt.Printf("Verified %s: %d frames, %d channel(s), %d-bit, %d Hz\n",
			*output, info.Frames, info.NumChannels, info.BitDepth, info.SampleRate)
	}
}

// defaultProgression is the canned A-major progression rendered when no
// -chords flag is given: A5 major, the same chord with an added F#6
// emphasized, then Ab5/B5/E6/Ab6 held for two seconds.
func defaultProgression() ([][]float64, []float64, [][]float64) {
	chords := [][]float64{
		{880.0, 1100.0, 1320.0, 1760.0},
		{880.0, 1100.0, 1320.0, 1479.98, 1760.0},
		{830.609, 987.767, 1320.0, 1661.22},
	}
	durations := []float64{1, 1, 2}
	weights := [][]float64{nil, {0.1, 0.1, 0.1, 0.4, 0.3}, nil}
	return chords, durations, weights
}
