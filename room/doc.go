// SPDX-License-Identifier: EPL-2.0

// Package room simulates reverberant capture by convolving speech with a
// synthetic room impulse response.
//
// The impulse response is a unit direct path followed, after a short
// pre-delay, by a Gaussian noise tail that decays by 60dB over the room's
// RT60. Convolution runs in the frequency domain (go-dsp FFT) and the
// result is cut back to the input length.
//
//	sim := room.New(16000)
//	wet := sim.Apply(rng, dry, 0.5) // reverberant half of the time
package room
