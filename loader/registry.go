// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"github.com/ik5/titandata/audio"
	"github.com/ik5/titandata/formats/aiff"
	"github.com/ik5/titandata/formats/mp3"
	"github.com/ik5/titandata/formats/vorbis"
	"github.com/ik5/titandata/formats/wav"
)

// DefaultRegistry maps every supported extension to its decoder.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}
