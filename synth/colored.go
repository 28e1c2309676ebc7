// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/ik5/titandata/audio"
	"github.com/mjibson/go-dsp/fft"
)

// Spectral exponents for ColoredNoise.
const (
	PinkExponent  = 1.0
	BrownExponent = 2.0
)

// ColoredNoise shapes white Gaussian noise in the frequency domain so its
// power falls off as 1/f^exponent.
//
// It draws length/2+1 complex bins (one more when length is odd), all real
// parts first and then all imaginary parts, divides bin k (1-indexed) by
// k^(exponent/2) and runs an inverse real FFT normalized by 1/n. For odd
// lengths the transform yields one extra sample, which is dropped. The
// result is not renormalized; mixing sets the level.
func ColoredNoise(rng *rand.Rand, length int, exponent float64) audio.Waveform {
	uneven := length % 2
	bins := length/2 + 1 + uneven

	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range re {
		re[k] = rng.NormFloat64()
	}
	for k := range im {
		im[k] = rng.NormFloat64()
	}

	spectrum := make([]complex128, bins)
	for k := range spectrum {
		g := math.Pow(float64(k+1), exponent/2)
		spectrum[k] = complex(re[k]/g, im[k]/g)
	}

	signal := inverseRealFFT(spectrum)

	out := make(audio.Waveform, length)
	for i := range out {
		out[i] = float32(signal[i])
	}
	return out
}

// inverseRealFFT treats half as the non-negative frequency bins of a
// Hermitian spectrum and returns the 2*(len(half)-1) real time samples.
// Imaginary parts of the DC and Nyquist bins are ignored.
func inverseRealFFT(half []complex128) []float64 {
	n := 2 * (len(half) - 1)
	full := make([]complex128, n)

	full[0] = complex(real(half[0]), 0)
	for k := 1; k < len(half)-1; k++ {
		full[k] = half[k]
		full[n-k] = cmplx.Conj(half[k])
	}
	full[n/2] = complex(real(half[len(half)-1]), 0)

	// go-dsp scales the inverse transform by 1/n
	timeDomain := fft.IFFT(full)

	out := make([]float64, n)
	for i, v := range timeDomain {
		out[i] = real(v)
	}
	return out
}
