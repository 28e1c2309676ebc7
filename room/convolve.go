// SPDX-License-Identifier: EPL-2.0

package room

import (
	"math/bits"

	"github.com/ik5/titandata/audio"
	"github.com/mjibson/go-dsp/fft"
)

// Convolve returns the first len(signal) samples of the linear convolution
// of signal and ir.
func Convolve(signal, ir audio.Waveform) audio.Waveform {
	out := make(audio.Waveform, len(signal))
	if len(signal) == 0 || len(ir) == 0 {
		return out
	}

	size := nextPow2(len(signal) + len(ir) - 1)

	x := make([]float64, size)
	for i, v := range signal {
		x[i] = float64(v)
	}
	h := make([]float64, size)
	for i, v := range ir {
		h[i] = float64(v)
	}

	X := fft.FFTReal(x)
	H := fft.FFTReal(h)
	for k := range X {
		X[k] *= H[k]
	}
	y := fft.IFFT(X)

	for i := range out {
		out[i] = float32(real(y[i]))
	}
	return out
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
