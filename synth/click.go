// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math/rand/v2"

	"github.com/ik5/titandata/audio"
)

// ClickAmplitude is the magnitude of every transient click.
const ClickAmplitude = 0.8

// TransientClicks places 1 to 5 single-sample pops of ±0.8 at random
// positions in silence. A later click may land on an earlier one and
// overwrite it.
func TransientClicks(rng *rand.Rand, length int) audio.Waveform {
	out := make(audio.Waveform, length)

	count := rng.IntN(5) + 1
	for range count {
		idx := rng.IntN(length)
		if rng.IntN(2) == 0 {
			out[idx] = -ClickAmplitude
		} else {
			out[idx] = ClickAmplitude
		}
	}
	return out
}
