// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math/rand/v2"

	"github.com/ik5/titandata/audio"
)

// DefaultHumFrequency is the mains frequency used when none is configured.
const DefaultHumFrequency = 50.0

// NoiseKind selects one of the noise sources a training sample can carry.
type NoiseKind int

const (
	// Real is a recorded noise clip supplied by the loader.
	Real NoiseKind = iota
	// Pink noise has a 1/f power spectrum.
	Pink
	// Brown noise has a 1/f² power spectrum.
	Brown
	// MainsHum is a 50/60Hz tone with odd harmonics.
	MainsHum
	// TransientClick is silence with a few full-scale digital pops.
	TransientClick
)

var kindNames = [...]string{
	Real:           "real",
	Pink:           "pink",
	Brown:          "brown",
	MainsHum:       "mains_hum",
	TransientClick: "transient_click",
}

func (k NoiseKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("NoiseKind(%d)", int(k))
	}
	return kindNames[k]
}

// Synth generates procedural noise at a fixed sample rate.
type Synth struct {
	SampleRate   int
	HumFrequency float64
}

// New returns a Synth for sampleRate with the default 50Hz hum.
func New(sampleRate int) Synth {
	return Synth{
		SampleRate:   sampleRate,
		HumFrequency: DefaultHumFrequency,
	}
}

// Pick draws a procedural noise kind: pink 40%, brown 30%, mains hum 20%,
// clicks 10%. It consumes exactly one float from rng.
func Pick(rng *rand.Rand) NoiseKind {
	r := rng.Float64()
	switch {
	case r < 0.4:
		return Pink
	case r < 0.7:
		return Brown
	case r < 0.9:
		return MainsHum
	default:
		return TransientClick
	}
}

// Generate produces length samples of the given procedural kind.
func (s Synth) Generate(rng *rand.Rand, kind NoiseKind, length int) (audio.Waveform, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	switch kind {
	case Pink:
		return ColoredNoise(rng, length, PinkExponent), nil
	case Brown:
		return ColoredNoise(rng, length, BrownExponent), nil
	case MainsHum:
		freq := s.HumFrequency
		if freq <= 0 {
			freq = DefaultHumFrequency
		}
		return s.MainsHum(length, freq, true), nil
	case TransientClick:
		return TransientClicks(rng, length), nil
	case Real:
		return nil, ErrNotProcedural
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}
