package synth

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// encodePCM16 writes frames as a mono 16-bit uncompressed PCM WAV stream.
// Every frame must already be within the signed 16-bit range; Quantize
// guarantees this.
func (s *Synthesizer) encodePCM16(w io.WriteSeeker, frames []int) error {
	enc := wav.NewEncoder(w, s.sampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			SampleRate:  s.sampleRate,
			NumChannels: 1,
		},
		Data:           frames,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write pcm frames: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav header: %w", err)
	}
	return nil
}
