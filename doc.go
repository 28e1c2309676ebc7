// SPDX-License-Identifier: EPL-2.0

// Package titandata generates (noisy, clean) speech pairs for training
// denoising models.
//
// Every pair starts from a clean speech crop, optionally places it in a
// simulated room, adds either recorded or procedural noise at a random SNR,
// and occasionally runs the noisy side through a degraded capture chain:
//
//	cleanPool, _ := loader.NewPool(loader.New(16000, 32000), "corpus/clean")
//	noisePool, _ := loader.NewPool(loader.New(16000, 32000), "corpus/noise")
//
//	gen, err := titandata.New(cleanPool, noisePool, titandata.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	pair, err := gen.Sample(rand.New(rand.NewPCG(seed, 0)))
//
// # Reproducibility
//
// All randomness comes from the *rand.Rand handed to Sample, drawn in a
// fixed order: the clean crop, the room gate (and room), the real-noise gate
// (only when a noise source exists), the procedural kind and its samples,
// the SNR, the degradation gate (and chain). Equal seeds over equal corpora
// give identical pairs.
//
// # Curriculum
//
// Difficulty (SNR range, real noise share, reverb share) can change during
// training with SetCurriculum. Each Sample reads one immutable snapshot, so
// concurrent callers never see a half-applied update.
//
// # Subpackages
//
//   - synth: pink, brown, mains hum and click noise
//   - room: impulse responses and FFT convolution
//   - degrade: clip, quantize, band-limit and sample-and-hold effects
//   - mix: RMS and SNR-targeted mixing
//   - loss: SI-SDR + L1 training objective
//   - loader: file discovery, decoding and random crops
//   - formats/*: WAV, MP3, Ogg Vorbis and AIFF decoders, WAV writer
package titandata
