// SPDX-License-Identifier: EPL-2.0

// Package degrade simulates a poor capture chain: a cheap microphone, a
// narrow telephone line, a starved converter.
//
// A Degrader runs an ordered list of Effects. Each effect draws its own
// parameters from the caller's *rand.Rand, so a chain is reproducible for a
// seeded source. Effects never change the waveform length and never modify
// their input.
//
//	d := degrade.New(16000)
//	rough := d.ApplyBrutal(rng, noisy)
//
// Custom chains are plain slices:
//
//	d := degrade.New(16000, degrade.SampleHold{MinFactor: 2, MaxFactor: 3}, degrade.DefaultQuantize())
package degrade
