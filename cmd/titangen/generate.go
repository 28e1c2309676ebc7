// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/titandata"
	"github.com/ik5/titandata/formats/wav"
	"github.com/ik5/titandata/loader"
	"github.com/sirupsen/logrus"
)

// GenerateCmd writes Count pairs as %06d_noisy.wav / %06d_clean.wav.
type GenerateCmd struct {
	Clean string `required:"" type:"existingdir" help:"Directory of clean speech"`
	Noise string `type:"path" help:"Directory of recorded noise (optional)"`
	Out   string `short:"o" required:"" type:"path" help:"Output directory"`

	Count uint64 `short:"n" default:"0" help:"Pairs to write; 0 writes one epoch"`
	Seed  uint64 `default:"1" help:"Base random seed"`

	SampleRate    int     `default:"${sample_rate}" help:"Output sample rate in Hz"`
	Duration      float64 `default:"${duration}" help:"Seconds per pair"`
	EpochSize     int     `default:"${epoch_size}" help:"Pairs per epoch"`
	SNRMin        float64 `name:"snr-min" default:"${snr_min}" help:"Lowest SNR in dB"`
	SNRMax        float64 `name:"snr-max" default:"${snr_max}" help:"Highest SNR in dB"`
	ProbRealNoise float64 `default:"${prob_real_noise}" help:"Chance of recorded noise"`
	ProbRoom      float64 `default:"${prob_room}" help:"Chance of reverberation"`
	HumFreq       float64 `default:"${hum_freq}" help:"Mains hum in Hz; 0 detects from the local timezone"`
	Workers       int     `short:"j" default:"${workers}" help:"Parallel workers"`
}

func (c *GenerateCmd) Run(rc *runContext) error {
	log := rc.logger

	hum := c.HumFreq
	if hum <= 0 {
		hum = rc.cfg.HumFrequency()
	}

	length := int(float64(c.SampleRate) * c.Duration)
	l := loader.New(c.SampleRate, length)
	l.Logger = log

	cleanPool, err := loader.NewPool(l, c.Clean)
	if err != nil {
		return fmt.Errorf("scanning clean: %w", err)
	}
	if cleanPool.Len() == 0 {
		return fmt.Errorf("%s: %w", c.Clean, loader.ErrNoSamples)
	}

	var noise titandata.WaveformSource
	if c.Noise != "" {
		noisePool, err := loader.NewPool(l, c.Noise)
		if err != nil {
			return fmt.Errorf("scanning noise: %w", err)
		}
		noise = noisePool
		log.WithField("files", noisePool.Len()).Info("Noise pool loaded")
	}

	gen, err := titandata.New(cleanPool, noise, titandata.Options{
		SampleRate:   c.SampleRate,
		Duration:     c.Duration,
		EpochSize:    c.EpochSize,
		HumFrequency: hum,
		Curriculum: &titandata.Curriculum{
			SNRMin:        c.SNRMin,
			SNRMax:        c.SNRMax,
			ProbRealNoise: c.ProbRealNoise,
			ProbRoom:      c.ProbRoom,
		},
		Logger: log,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	count := c.Count
	if count == 0 {
		count = uint64(gen.Len())
	}
	workers := max(c.Workers, 1)

	log.WithFields(logrus.Fields{
		"clean_files": cleanPool.Len(),
		"pairs":       count,
		"workers":     workers,
		"hum_hz":      hum,
		"out":         c.Out,
	}).Info("Generating")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	written, err := c.run(ctx, gen, count, workers, log)
	log.WithFields(logrus.Fields{
		"pairs":   written,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("Done")
	return err
}

// run fans pair indices out to workers. Every pair draws from its own PCG
// stream keyed by (seed, index), so output does not depend on the worker
// count or on scheduling.
func (c *GenerateCmd) run(ctx context.Context, gen *titandata.Generator, count uint64, workers int, log logrus.FieldLogger) (uint64, error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	jobs := make(chan uint64)
	var written atomic.Uint64
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := c.writePair(gen, idx, log); err != nil {
					cancel(err)
					return
				}
				written.Add(1)
			}
		}()
	}

feed:
	for i := range count {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	err := context.Cause(ctx)
	if errors.Is(err, context.Canceled) {
		log.Warn("Interrupted")
		err = nil
	}
	return written.Load(), err
}

func (c *GenerateCmd) writePair(gen *titandata.Generator, idx uint64, log logrus.FieldLogger) error {
	p, err := gen.Sample(rand.New(rand.NewPCG(c.Seed, idx)))
	if err != nil {
		return fmt.Errorf("pair %d: %w", idx, err)
	}

	noisy := filepath.Join(c.Out, fmt.Sprintf("%06d_noisy.wav", idx))
	clean := filepath.Join(c.Out, fmt.Sprintf("%06d_clean.wav", idx))
	if err := wav.WriteFile(noisy, c.SampleRate, p.Noisy); err != nil {
		return err
	}
	if err := wav.WriteFile(clean, c.SampleRate, p.Clean); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"pair":     idx,
		"noise":    p.Noise,
		"snr":      fmt.Sprintf("%.1f", p.SNR),
		"reverb":   p.Reverb,
		"degraded": p.Degraded,
	}).Debug("Pair written")
	return nil
}
