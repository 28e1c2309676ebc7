// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/titandata/audio"
)

// MainsHum renders electrical hum at baseFreq. With harmonics the 3rd (0.5)
// and 5th (0.2) harmonics are added. The sum is scaled by 0.1.
//
// Sample times run from 0 to length/SampleRate inclusive, evenly spaced
// over length points.
func (s Synth) MainsHum(length int, baseFreq float64, harmonics bool) audio.Waveform {
	out := make(audio.Waveform, length)
	if length == 0 {
		return out
	}

	duration := float64(length) / float64(s.SampleRate)
	step := 0.0
	if length > 1 {
		step = duration / float64(length-1)
	}

	w := 2 * math.Pi * baseFreq
	for i := range out {
		t := float64(i) * step
		v := math.Sin(w * t)
		if harmonics {
			v += 0.5 * math.Sin(3*w*t)
			v += 0.2 * math.Sin(5*w*t)
		}
		out[i] = float32(0.1 * v)
	}
	return out
}
