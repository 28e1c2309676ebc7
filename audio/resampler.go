// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/titandata/utils"

// Resample converts a mono waveform from srcRate to dstRate using cubic
// (Catmull-Rom) interpolation. When downsampling, a one-pole low-pass
// filter runs over the input first as a basic anti-aliasing stage.
//
// The output holds len(w) * dstRate / srcRate samples. Equal rates return
// a copy.
func Resample(w Waveform, srcRate, dstRate int) (Waveform, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if srcRate == dstRate || len(w) == 0 {
		return w.Clone(), nil
	}

	in := w
	ratio := float64(srcRate) / float64(dstRate)
	if ratio > 1.0 {
		in = lowPass(w, 0.5)
	}

	outLen := int(int64(len(w)) * int64(dstRate) / int64(srcRate))
	out := make(Waveform, outLen)
	last := len(in) - 1

	at := func(i int) float32 {
		if i < 0 {
			return in[0]
		}
		if i > last {
			return in[last]
		}
		return in[i]
	}

	for i := range outLen {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := float32(pos - float64(idx))
		out[i] = utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
	}

	return out, nil
}

// lowPass runs y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with x[0] to
// avoid a warm-up transient.
func lowPass(w Waveform, alpha float32) Waveform {
	out := make(Waveform, len(w))
	state := w[0]
	for i, x := range w {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}
	return out
}
