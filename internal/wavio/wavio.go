// Package wavio reads WAV files back for verification.
package wavio

import (
	"fmt"
	"os"

	"github.com/cwbudde/wav"
)

// Info describes a decoded WAV file.
type Info struct {
	SampleRate  int
	NumChannels int
	BitDepth    int
	Frames      int
}

// ReadMono decodes a WAV file and returns its samples mixed down to mono
// (channel-averaged per frame) together with the declared format. Samples
// are expressed as PCM counts at the file's bit depth, e.g. a full-scale
// 16-bit peak reads as 32767. The decoder yields normalized floats in
// [-1, 1], so the mixdown rescales by 2^(bitDepth-1).
func ReadMono(path string) ([]float64, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Info{}, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, Info{}, fmt.Errorf("invalid wav file: %s", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, Info{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, Info{}, fmt.Errorf("invalid wav buffer: %s", path)
	}

	ch := buf.Format.NumChannels
	frames := len(buf.Data) / ch
	scale := float64(int(1) << (dec.BitDepth - 1))
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < ch; c++ {
			sum += float64(buf.Data[i*ch+c])
		}
		out[i] = sum / float64(ch) * scale
	}

	info := Info{
		SampleRate:  buf.Format.SampleRate,
		NumChannels: ch,
		BitDepth:    int(dec.BitDepth),
		Frames:      frames,
	}
	return out, info, nil
}
