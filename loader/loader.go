// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/ik5/titandata/audio"
	"github.com/sirupsen/logrus"
)

const (
	maxAttempts = 3
	fallbackStd = 0.01
)

// Loader decodes files into mono waveforms of a fixed rate and length.
type Loader struct {
	Registry   *audio.Registry
	SampleRate int
	Length     int // samples per crop
	Logger     logrus.FieldLogger
}

// New returns a Loader using DefaultRegistry and the standard logrus logger.
func New(sampleRate, length int) *Loader {
	return &Loader{
		Registry:   DefaultRegistry(),
		SampleRate: sampleRate,
		Length:     length,
		Logger:     logrus.StandardLogger(),
	}
}

// Load decodes path, folds it to mono and resamples it to l.SampleRate.
// The whole file is returned; no cropping happens here.
func (l *Loader) Load(path string) (audio.Waveform, error) {
	dec, err := l.Registry.ForPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	interleaved, err := audio.ReadAll(src)
	if errors.Is(err, audio.ErrEmptyStream) {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	mono, err := audio.Downmix(interleaved, src.Channels())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if src.SampleRate() == l.SampleRate {
		return mono, nil
	}
	out, err := audio.Resample(mono, src.SampleRate(), l.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("resampling %s: %w", path, err)
	}
	return out, nil
}

// RandomCrop picks a file uniformly and returns a crop of exactly l.Length
// samples. Longer recordings are cropped at a uniform offset, shorter ones
// are zero-padded at the end. Up to three picks are tried; after that the
// result is Gaussian noise (std 0.01). An empty file list returns nil.
func (l *Loader) RandomCrop(rng *rand.Rand, files []string) audio.Waveform {
	if len(files) == 0 {
		return nil
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		path := files[rng.IntN(len(files))]

		w, err := l.Load(path)
		if err != nil {
			l.logger().WithFields(logrus.Fields{
				"path":    path,
				"attempt": attempt,
				"error":   err,
			}).Debug("Skipping unreadable file")
			continue
		}
		return l.crop(rng, w)
	}

	l.logger().WithFields(logrus.Fields{
		"files":    len(files),
		"attempts": maxAttempts,
	}).Warn("No readable file found, substituting low-level noise")

	out := make(audio.Waveform, l.Length)
	for i := range out {
		out[i] = float32(rng.NormFloat64() * fallbackStd)
	}
	return out
}

func (l *Loader) crop(rng *rand.Rand, w audio.Waveform) audio.Waveform {
	if len(w) > l.Length {
		return w.Fit(l.Length, rng.IntN(len(w)-l.Length+1))
	}
	return w.Fit(l.Length, 0)
}

func (l *Loader) logger() logrus.FieldLogger {
	if l.Logger == nil {
		return logrus.StandardLogger()
	}
	return l.Logger
}
