// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages interleaved multi-channel samples into one channel.
// A trailing partial frame is dropped.
func Downmix(interleaved []float32, channels int) (Waveform, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	if channels == 1 {
		out := make(Waveform, len(interleaved))
		copy(out, interleaved)
		return out, nil
	}

	frames := len(interleaved) / channels
	out := make(Waveform, frames)

	switch channels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 1
			out[f] = (interleaved[idx] + interleaved[idx+1]) * 0.5
		}
	default:
		invChannels := float32(1.0) / float32(channels)
		for f := range frames {
			sum := float32(0)
			base := f * channels
			for c := range channels {
				sum += interleaved[base+c]
			}
			out[f] = sum * invChannels
		}
	}

	return out, nil
}
