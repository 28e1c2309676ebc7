// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files through
// github.com/go-audio/aiff.
//
// Big-endian integer PCM at 16, 24 or 32 bits is supported, with any
// channel count and sample rate:
//
//	src, err := aiff.Decoder{}.Decode(f)
//	switch {
//	case errors.Is(err, aiff.ErrNotAiffFile):
//	    // wrong container
//	case errors.Is(err, aiff.ErrUnsupportedBitDepth):
//	    // 8-bit or odd sizes
//	}
//
// Samples are normalized to [-1, 1] by the bit depth's full scale.
package aiff
