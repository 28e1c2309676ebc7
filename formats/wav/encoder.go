// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/titandata/audio"
	"github.com/ik5/titandata/utils"
)

const bitDepth = 16

// Write encodes samples as a mono 16-bit PCM WAV. Values outside [-1, 1]
// are clamped.
func Write(w io.WriteSeeker, sampleRate int, samples audio.Waveform) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}
	for i, s := range samples {
		buf.Data[i] = int(utils.Float32ToInt16(s))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}

// WriteFile creates (or truncates) path and writes samples to it.
func WriteFile(path string, sampleRate int, samples audio.Waveform) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Write(f, sampleRate, samples); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
