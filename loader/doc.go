// SPDX-License-Identifier: EPL-2.0

// Package loader turns directories of recordings into fixed-length mono
// crops for the generator.
//
// Files are discovered with Scan, decoded through an audio.Registry (WAV,
// MP3, Ogg Vorbis and AIFF by default), folded to mono, resampled, then
// randomly cropped or zero-padded:
//
//	l := loader.New(16000, 32000)
//	files, err := loader.Scan("corpus/clean")
//	crop := l.RandomCrop(rng, files)
//
// A broken file is retried with another pick. When every attempt fails the
// loader returns quiet Gaussian noise and logs a warning, so one unreadable
// file never stops a training run.
package loader
