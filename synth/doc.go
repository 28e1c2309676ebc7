// SPDX-License-Identifier: EPL-2.0

// Package synth generates procedural noise for training-pair synthesis.
//
// Generators:
//   - ColoredNoise: pink (1/f) and brown (1/f²) noise by spectral shaping
//   - Synth.MainsHum: 50/60Hz hum with 3rd and 5th harmonics
//   - TransientClicks: sparse single-sample digital pops
//
// All randomness comes from the *rand.Rand passed in, so a seeded source
// reproduces the same noise. Generators never fail for lengths >= 1.
//
//	s := synth.New(16000)
//	rng := rand.New(rand.NewPCG(1, 2))
//	noise, _ := s.Generate(rng, synth.Pick(rng), 32000)
package synth
