// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis through github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float natively, so samples pass through unscaled. Reads
// are trimmed to whole frames, which keeps channel interleaving intact when
// callers hand in odd-sized buffers.
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	interleaved, err := audio.ReadAll(src)
package vorbis
