// SPDX-License-Identifier: EPL-2.0

// Package mix combines clean speech and noise at a target signal-to-noise
// ratio.
//
// Levels are measured as RMS over the whole buffer and the noise is scaled
// linearly, so the realized SNR equals the target as long as nothing clips
// the result afterwards. Mix never clamps; callers that limit the output to
// [-1, 1] will see the realized SNR drift slightly at extreme targets.
package mix

import (
	"fmt"
	"math"

	"github.com/ik5/titandata/audio"
)

// Epsilon guards every level division.
const Epsilon = 1e-9

// RMS returns ||w||₂ / (√N + ε). An empty waveform has zero RMS.
func RMS(w audio.Waveform) float64 {
	if len(w) == 0 {
		return 0
	}

	var sum float64
	for _, s := range w {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum) / (math.Sqrt(float64(len(w))) + Epsilon)
}

// Scale returns the gain that brings noise to snrDB below clean.
// It is 0 when the noise is effectively silent.
func Scale(clean, noise audio.Waveform, snrDB float64) float64 {
	noiseRMS := RMS(noise)
	if noiseRMS < Epsilon {
		return 0
	}

	targetNoiseRMS := RMS(clean) / DBToLinear(snrDB)
	return targetNoiseRMS / (noiseRMS + Epsilon)
}

// Mix returns clean + noise scaled so that the noise sits snrDB below the
// clean signal. When the noise is effectively silent (RMS < 1e-9) a copy of
// clean is returned instead of amplifying numerical dust.
func Mix(clean, noise audio.Waveform, snrDB float64) (audio.Waveform, error) {
	if len(clean) != len(noise) {
		return nil, fmt.Errorf("%w: clean %d, noise %d", ErrLengthMismatch, len(clean), len(noise))
	}

	scale := Scale(clean, noise, snrDB)
	if scale == 0 {
		return clean.Clone(), nil
	}

	out := make(audio.Waveform, len(clean))
	for i := range clean {
		out[i] = float32(float64(clean[i]) + float64(noise[i])*scale)
	}
	return out, nil
}

// SNR returns the realized signal-to-noise ratio of mixed against clean, in dB.
func SNR(clean, mixed audio.Waveform) (float64, error) {
	if len(clean) != len(mixed) {
		return 0, fmt.Errorf("%w: clean %d, mixed %d", ErrLengthMismatch, len(clean), len(mixed))
	}

	residual := make(audio.Waveform, len(clean))
	for i := range clean {
		residual[i] = mixed[i] - clean[i]
	}
	return LinearToDB(RMS(clean) / (RMS(residual) + Epsilon)), nil
}

// DBToLinear converts decibels to an amplitude ratio.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts an amplitude ratio to decibels.
func LinearToDB(x float64) float64 {
	return 20 * math.Log10(x+Epsilon)
}
