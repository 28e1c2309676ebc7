// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample model and the low-level buffer
// primitives shared by the rest of the module.
//
// # Waveform
//
// A Waveform is one channel of float32 samples in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Waveforms are plain slices. Helpers that transform a waveform (Clamp,
// Normalize, Fit) always return a new slice and leave the receiver alone.
//
// # Sources and decoders
//
// Format decoders produce a Source, a stream of interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadAll drains a Source into memory. Training crops are short, so the
// rest of the pipeline works on whole buffers rather than streams.
//
// # Registry
//
// The registry maps file extensions to decoders, case-insensitively:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("clean/utt_0001.WAV")
//
// # Channel mixing and resampling
//
// Downmix averages interleaved channels into a mono Waveform. Resample
// changes the sample rate with Catmull-Rom cubic interpolation and applies
// a one-pole low-pass before downsampling:
//
//	mono, _ := audio.Downmix(interleaved, src.Channels())
//	mono, _ = audio.Resample(mono, src.SampleRate(), 16000)
//
// # Error Handling
//
// ReadAll treats io.EOF as the normal end of stream. Any other read error is
// wrapped and returned; an empty stream yields ErrEmptyStream.
package audio
