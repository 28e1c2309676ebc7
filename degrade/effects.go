// SPDX-License-Identifier: EPL-2.0

package degrade

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/titandata/audio"
)

// HardClip clamps the signal at a random fraction of its own peak, like an
// overdriven preamp.
type HardClip struct {
	MinThreshold float64
	MaxThreshold float64
}

func DefaultHardClip() HardClip { return HardClip{MinThreshold: 0.3, MaxThreshold: 0.8} }

func (HardClip) Name() string { return "hard_clip" }

func (c HardClip) Apply(rng *rand.Rand, w audio.Waveform) audio.Waveform {
	th := float32(uniform(rng, c.MinThreshold, c.MaxThreshold) * w.Peak())
	out := make(audio.Waveform, len(w))
	for i, v := range w {
		out[i] = min(max(v, -th), th)
	}
	return out
}

// Quantize reduces resolution to a random bit depth using mid-tread
// rounding to 2^(bits-1) levels per polarity.
type Quantize struct {
	MinBits int
	MaxBits int
}

func DefaultQuantize() Quantize { return Quantize{MinBits: 4, MaxBits: 8} }

func (Quantize) Name() string { return "quantize" }

func (q Quantize) Apply(rng *rand.Rand, w audio.Waveform) audio.Waveform {
	bits := max(uniformInt(rng, q.MinBits, q.MaxBits), 1)
	levels := math.Exp2(float64(bits - 1))

	out := make(audio.Waveform, len(w))
	for i, v := range w {
		out[i] = float32(math.Round(float64(v)*levels) / levels)
	}
	return out
}

// SampleHold lowers the effective sample rate by repeating every
// factor-th sample.
type SampleHold struct {
	MinFactor int
	MaxFactor int
}

func (SampleHold) Name() string { return "sample_hold" }

func (s SampleHold) Apply(rng *rand.Rand, w audio.Waveform) audio.Waveform {
	factor := max(uniformInt(rng, s.MinFactor, s.MaxFactor), 1)

	out := make(audio.Waveform, len(w))
	for i := range w {
		out[i] = w[i-i%factor]
	}
	return out
}
