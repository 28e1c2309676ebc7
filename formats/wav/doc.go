// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM (plain or WAVE_FORMAT_EXTENSIBLE) at 8, 16,
// 24 or 32 bits, any channel count and any sample rate. Samples come back
// as interleaved float32 in [-1, 1]:
//
//	f, _ := os.Open("speech.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//	samples, err := audio.ReadAll(src)
//
// Compressed and IEEE float files are rejected with ErrUnsupportedEncoding.
//
// # Encoding
//
// Generated pairs are stored as mono 16-bit PCM:
//
//	err := wav.WriteFile("000001_noisy.wav", 16000, noisy)
//
// Write does the same for any io.WriteSeeker; the encoder seeks back to
// patch the RIFF and data sizes on close.
package wav
