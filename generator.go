// SPDX-License-Identifier: EPL-2.0

package titandata

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"github.com/ik5/titandata/audio"
	"github.com/ik5/titandata/degrade"
	"github.com/ik5/titandata/mix"
	"github.com/ik5/titandata/room"
	"github.com/ik5/titandata/synth"
	"github.com/sirupsen/logrus"
)

// DegradeProbability is the share of pairs whose noisy side goes through
// the degradation chain.
const DegradeProbability = 0.2

// WaveformSource hands out fixed-length crops. A nil result means nothing
// could be produced.
type WaveformSource interface {
	RandomCrop(rng *rand.Rand) audio.Waveform
}

// Options configures a Generator. Zero fields take the DefaultOptions value.
type Options struct {
	SampleRate   int         // Hz
	Duration     float64     // seconds per pair
	EpochSize    int         // nominal pairs per epoch
	HumFrequency float64     // Hz, mains hum base frequency
	Curriculum   *Curriculum // nil means DefaultCurriculum
	Logger       logrus.FieldLogger
}

// DefaultOptions is 2s pairs at 16kHz, 10000 per epoch, 50Hz hum.
func DefaultOptions() Options {
	c := DefaultCurriculum()
	return Options{
		SampleRate:   16000,
		Duration:     2.0,
		EpochSize:    10000,
		HumFrequency: synth.DefaultHumFrequency,
		Curriculum:   &c,
		Logger:       logrus.StandardLogger(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.SampleRate == 0 {
		o.SampleRate = def.SampleRate
	}
	if o.Duration == 0 {
		o.Duration = def.Duration
	}
	if o.EpochSize == 0 {
		o.EpochSize = def.EpochSize
	}
	if o.HumFrequency == 0 {
		o.HumFrequency = def.HumFrequency
	}
	if o.Curriculum == nil {
		o.Curriculum = def.Curriculum
	}
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	return o
}

// Pair is one training example.
type Pair struct {
	Noisy audio.Waveform
	Clean audio.Waveform

	SNR      float64         // target SNR in dB
	Noise    synth.NoiseKind // Real for recorded noise
	Reverb   bool
	Degraded bool
}

// Generator produces training pairs. It is safe for concurrent use as long
// as each goroutine passes its own *rand.Rand.
type Generator struct {
	clean WaveformSource
	noise WaveformSource

	synth    synth.Synth
	room     room.Simulator
	degrader degrade.Degrader

	length     int
	epochSize  int
	curriculum atomic.Pointer[Curriculum]
	logger     logrus.FieldLogger
}

// New builds a Generator. noise may be nil, in which case all noise is
// procedural. A source reporting Len() == 0 counts as absent.
func New(clean, noise WaveformSource, opts Options) (*Generator, error) {
	if clean == nil {
		return nil, ErrNoCleanSource
	}

	opts = opts.withDefaults()
	if opts.SampleRate < 0 || opts.Duration < 0 || opts.EpochSize < 0 || opts.HumFrequency < 0 {
		return nil, fmt.Errorf("%w: sample rate %d, duration %v, epoch size %d, hum %v",
			ErrInvalidOptions, opts.SampleRate, opts.Duration, opts.EpochSize, opts.HumFrequency)
	}
	length := int(float64(opts.SampleRate) * opts.Duration)
	if length < 1 {
		return nil, fmt.Errorf("%w: %d Hz x %vs is under one sample", ErrInvalidOptions, opts.SampleRate, opts.Duration)
	}
	if err := opts.Curriculum.Validate(); err != nil {
		return nil, err
	}

	if sized, ok := noise.(interface{ Len() int }); ok && sized.Len() == 0 {
		noise = nil
	}

	s := synth.New(opts.SampleRate)
	s.HumFrequency = opts.HumFrequency

	g := &Generator{
		clean:     clean,
		noise:     noise,
		synth:     s,
		room:      room.New(opts.SampleRate),
		degrader:  degrade.New(opts.SampleRate),
		length:    length,
		epochSize: opts.EpochSize,
		logger:    opts.Logger,
	}
	c := *opts.Curriculum
	g.curriculum.Store(&c)

	g.logger.WithFields(logrus.Fields{
		"sample_rate": opts.SampleRate,
		"length":      length,
		"real_noise":  noise != nil,
		"hum_hz":      opts.HumFrequency,
	}).Debug("Generator ready")

	return g, nil
}

// Len is the nominal number of pairs per epoch.
func (g *Generator) Len() int { return g.epochSize }

// Length is the number of samples in every waveform of a pair.
func (g *Generator) Length() int { return g.length }

// Curriculum returns a copy of the active curriculum.
func (g *Generator) Curriculum() Curriculum {
	return *g.curriculum.Load()
}

// SetCurriculum validates c and swaps it in atomically. On error the
// previous curriculum stays active.
func (g *Generator) SetCurriculum(c Curriculum) error {
	if err := c.Validate(); err != nil {
		return err
	}
	g.curriculum.Store(&c)

	g.logger.WithFields(logrus.Fields{
		"snr_min":         c.SNRMin,
		"snr_max":         c.SNRMax,
		"prob_real_noise": c.ProbRealNoise,
		"prob_room":       c.ProbRoom,
	}).Info("Curriculum updated")
	return nil
}

// Sample builds one pair. See the package documentation for the draw order.
func (g *Generator) Sample(rng *rand.Rand) (Pair, error) {
	cur := g.Curriculum()

	clean := g.clean.RandomCrop(rng)
	if clean == nil {
		return Pair{}, ErrNoCleanAudio
	}
	clean = g.fit(clean).Normalize()

	var p Pair
	if rng.Float64() < cur.ProbRoom {
		clean = g.room.Reverberate(rng, clean)
		p.Reverb = true
	}

	noise, kind, err := g.drawNoise(rng, cur)
	if err != nil {
		return Pair{}, err
	}
	p.Noise = kind

	p.SNR = cur.SNRMin + rng.Float64()*(cur.SNRMax-cur.SNRMin)
	noisy, err := mix.Mix(clean, noise, p.SNR)
	if err != nil {
		return Pair{}, fmt.Errorf("mixing %s noise: %w", kind, err)
	}

	if rng.Float64() < DegradeProbability {
		noisy = g.degrader.ApplyBrutal(rng, noisy)
		p.Degraded = true
	}

	p.Noisy = noisy.Clamp()
	p.Clean = clean.Clamp()

	g.logger.WithFields(logrus.Fields{
		"noise":    p.Noise,
		"snr":      p.SNR,
		"reverb":   p.Reverb,
		"degraded": p.Degraded,
	}).Trace("Pair generated")

	return p, nil
}

// drawNoise returns recorded noise when the gate allows it and the source
// delivers, procedural noise otherwise.
func (g *Generator) drawNoise(rng *rand.Rand, cur Curriculum) (audio.Waveform, synth.NoiseKind, error) {
	if g.noise != nil && rng.Float64() < cur.ProbRealNoise {
		if w := g.noise.RandomCrop(rng); w != nil {
			return g.fit(w), synth.Real, nil
		}
		g.logger.Warn("Noise source returned nothing, using procedural noise")
	}

	kind := synth.Pick(rng)
	w, err := g.synth.Generate(rng, kind, g.length)
	if err != nil {
		return nil, kind, fmt.Errorf("generating %s noise: %w", kind, err)
	}
	return w, kind, nil
}

func (g *Generator) fit(w audio.Waveform) audio.Waveform {
	if len(w) == g.length {
		return w
	}
	return w.Fit(g.length, 0)
}
