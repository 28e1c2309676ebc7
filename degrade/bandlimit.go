// SPDX-License-Identifier: EPL-2.0

package degrade

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
	"github.com/ik5/titandata/audio"
)

// butterworthQ gives a maximally flat second-order response.
const butterworthQ = 1 / math.Sqrt2

// BandLimit narrows the signal to a telephone-like passband: a
// second-order high-pass at a random low cutoff, then a second-order
// low-pass at a random high cutoff.
type BandLimit struct {
	SampleRate int
	MinLowCut  float64 // Hz
	MaxLowCut  float64
	MinHighCut float64
	MaxHighCut float64
}

func DefaultBandLimit(sampleRate int) BandLimit {
	return BandLimit{
		SampleRate: sampleRate,
		MinLowCut:  200,
		MaxLowCut:  400,
		MinHighCut: 2500,
		MaxHighCut: 3800,
	}
}

func (BandLimit) Name() string { return "band_limit" }

func (b BandLimit) Apply(rng *rand.Rand, w audio.Waveform) audio.Waveform {
	low := uniform(rng, b.MinLowCut, b.MaxLowCut)
	high := uniform(rng, b.MinHighCut, b.MaxHighCut)

	nyquist := float64(b.SampleRate) / 2
	high = math.Min(high, 0.95*nyquist)
	low = math.Min(low, 0.5*high)

	hp, lp := b.sections(low, high)

	out := make(audio.Waveform, len(w))
	for i, v := range w {
		out[i] = float32(lp.ProcessSample(hp.ProcessSample(float64(v))))
	}
	return out
}

// sections returns fresh high-pass and low-pass stages for the cutoffs.
func (b BandLimit) sections(low, high float64) (*biquad.Section, *biquad.Section) {
	sr := float64(b.SampleRate)
	return biquad.NewSection(design.Highpass(low, butterworthQ, sr)),
		biquad.NewSection(design.Lowpass(high, butterworthQ, sr))
}
