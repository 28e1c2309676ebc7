// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always yields 16-bit stereo, so every Source from this package
// reports two channels even for mono files; audio.Downmix folds them back:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if errors.Is(err, mp3.ErrInvalidStream) {
//	    // not MP3
//	}
//	interleaved, _ := audio.ReadAll(src)
//	mono, _ := audio.Downmix(interleaved, src.Channels())
//
// Decoding only.
package mp3
