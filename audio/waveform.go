// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Waveform is a single channel of float32 samples, nominally in [-1, 1].
type Waveform []float32

// Clone returns a copy of w that shares no memory with it.
func (w Waveform) Clone() Waveform {
	if w == nil {
		return nil
	}
	out := make(Waveform, len(w))
	copy(out, w)
	return out
}

// Peak returns the largest absolute sample value.
func (w Waveform) Peak() float64 {
	var peak float64
	for _, s := range w {
		if a := math.Abs(float64(s)); a > peak {
			peak = a
		}
	}
	return peak
}

// Clamp returns a copy of w with every sample limited to [-1, 1].
func (w Waveform) Clamp() Waveform {
	out := make(Waveform, len(w))
	for i, s := range w {
		switch {
		case s > 1:
			out[i] = 1
		case s < -1:
			out[i] = -1
		default:
			out[i] = s
		}
	}
	return out
}

// Normalize returns a copy of w divided by its peak (plus 1e-9), so a
// non-silent waveform peaks at 1.
func (w Waveform) Normalize() Waveform {
	g := 1 / (w.Peak() + 1e-9)
	out := make(Waveform, len(w))
	for i, s := range w {
		out[i] = float32(float64(s) * g)
	}
	return out
}

// Fit returns a copy of w of exactly length samples, starting at offset.
// Samples past the end of w are zero.
func (w Waveform) Fit(length, offset int) Waveform {
	out := make(Waveform, length)
	if offset < 0 || offset >= len(w) {
		return out
	}
	copy(out, w[offset:])
	return out
}
