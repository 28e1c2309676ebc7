// SPDX-License-Identifier: EPL-2.0

package titandata

import (
	"fmt"
	"math"
)

// Curriculum holds the difficulty knobs that may change during training.
type Curriculum struct {
	SNRMin        float64 // dB
	SNRMax        float64 // dB
	ProbRealNoise float64 // chance of recorded noise when a noise source exists
	ProbRoom      float64 // chance of reverberation
}

// DefaultCurriculum is 0 to 20dB SNR, half real noise, half reverberant.
func DefaultCurriculum() Curriculum {
	return Curriculum{
		SNRMin:        0,
		SNRMax:        20,
		ProbRealNoise: 0.5,
		ProbRoom:      0.5,
	}
}

// Validate rejects an inverted SNR range, non-finite bounds and
// probabilities outside [0, 1].
func (c Curriculum) Validate() error {
	if math.IsNaN(c.SNRMin) || math.IsNaN(c.SNRMax) || math.IsInf(c.SNRMin, 0) || math.IsInf(c.SNRMax, 0) {
		return fmt.Errorf("%w: SNR range (%v, %v) is not finite", ErrInvalidCurriculum, c.SNRMin, c.SNRMax)
	}
	if c.SNRMin > c.SNRMax {
		return fmt.Errorf("%w: SNR min %v exceeds max %v", ErrInvalidCurriculum, c.SNRMin, c.SNRMax)
	}
	if !isProbability(c.ProbRealNoise) {
		return fmt.Errorf("%w: real noise probability %v", ErrInvalidCurriculum, c.ProbRealNoise)
	}
	if !isProbability(c.ProbRoom) {
		return fmt.Errorf("%w: room probability %v", ErrInvalidCurriculum, c.ProbRoom)
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
