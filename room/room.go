// SPDX-License-Identifier: EPL-2.0

package room

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/titandata/audio"
)

// decay60dB is ln(1000): the exponent at which amplitude has fallen 60dB.
const decay60dB = 6.907755278982137

// Simulator holds the room parameter ranges.
type Simulator struct {
	SampleRate   int
	MinRT60      float64 // seconds
	MaxRT60      float64 // seconds
	MaxIRSeconds float64 // cap on impulse response length
	TailGain     float64 // level of the reverberant tail relative to the direct path
}

// New returns a Simulator for small to medium rooms (RT60 0.2s to 0.8s).
func New(sampleRate int) Simulator {
	return Simulator{
		SampleRate:   sampleRate,
		MinRT60:      0.2,
		MaxRT60:      0.8,
		MaxIRSeconds: 1.0,
		TailGain:     0.3,
	}
}

// ImpulseResponse draws a room: RT60, then pre-delay, then the tail samples.
func (s Simulator) ImpulseResponse(rng *rand.Rand) audio.Waveform {
	sr := float64(s.SampleRate)
	rt60 := s.MinRT60 + rng.Float64()*(s.MaxRT60-s.MinRT60)
	if rt60 <= 0 {
		rt60 = 1 / sr
	}

	length := int(math.Min(rt60, s.MaxIRSeconds) * sr)
	length = max(length, 1)

	predelay := int((0.001 + rng.Float64()*0.009) * sr)

	ir := make(audio.Waveform, length)
	ir[0] = 1
	for n := predelay + 1; n < length; n++ {
		env := math.Exp(-decay60dB * float64(n) / (rt60 * sr))
		ir[n] = float32(s.TailGain * rng.NormFloat64() * env)
	}
	return ir
}

// Apply reverberates signal with the given probability, consuming one
// uniform draw for the decision. When the room is skipped a copy of signal
// is returned; signal itself is never modified.
func (s Simulator) Apply(rng *rand.Rand, signal audio.Waveform, probability float64) audio.Waveform {
	if rng.Float64() >= probability {
		return signal.Clone()
	}
	return s.Reverberate(rng, signal)
}

// Reverberate convolves signal with a freshly drawn room. The output keeps
// the input's length and peak (capped at 1).
func (s Simulator) Reverberate(rng *rand.Rand, signal audio.Waveform) audio.Waveform {
	wet := Convolve(signal, s.ImpulseResponse(rng))

	outPeak := wet.Peak()
	if outPeak == 0 {
		return wet
	}

	g := math.Min(signal.Peak(), 1) / outPeak
	for i := range wet {
		wet[i] = float32(float64(wet[i]) * g)
	}
	return wet
}
