// SPDX-License-Identifier: EPL-2.0

package degrade

import (
	"math/rand/v2"

	"github.com/ik5/titandata/audio"
)

// Effect is a single randomized degradation stage.
type Effect interface {
	Name() string
	// Apply returns a degraded copy of w with the same length.
	Apply(rng *rand.Rand, w audio.Waveform) audio.Waveform
}

// Degrader applies its Effects in order.
type Degrader struct {
	Effects []Effect
}

// New builds a Degrader. Without effects the chain is
// HardClip -> Quantize -> BandLimit.
func New(sampleRate int, effects ...Effect) Degrader {
	if len(effects) == 0 {
		effects = DefaultChain(sampleRate)
	}
	return Degrader{Effects: effects}
}

// DefaultChain returns the stock clip, quantize and band-limit stages.
func DefaultChain(sampleRate int) []Effect {
	return []Effect{
		DefaultHardClip(),
		DefaultQuantize(),
		DefaultBandLimit(sampleRate),
	}
}

// ApplyBrutal runs every effect in order. The result is not clamped.
func (d Degrader) ApplyBrutal(rng *rand.Rand, w audio.Waveform) audio.Waveform {
	out := w.Clone()
	for _, e := range d.Effects {
		out = e.Apply(rng, out)
	}
	return out
}

// Names lists the chain's effect names in order.
func (d Degrader) Names() []string {
	names := make([]string, len(d.Effects))
	for i, e := range d.Effects {
		names[i] = e.Name()
	}
	return names
}

// uniform draws from [lo, hi); a degenerate range returns lo without
// consuming randomness.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// uniformInt draws from [lo, hi] inclusive.
func uniformInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
