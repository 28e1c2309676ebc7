// SPDX-License-Identifier: EPL-2.0

// Package config loads generator defaults from TITAN_* environment variables.
package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/ik5/titandata/mains"
	"github.com/sirupsen/logrus"
)

// Config holds runtime defaults. CLI flags override every field.
type Config struct {
	SampleRate int     // Hz
	Duration   float64 // seconds per crop
	EpochSize  int

	// Curriculum
	SNRMin        float64 // dB
	SNRMax        float64 // dB
	ProbRealNoise float64
	ProbRoom      float64

	HumFreq float64 // Hz, 0 detects from the timezone

	Workers  int
	LogLevel string
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		SampleRate: envInt("TITAN_SAMPLE_RATE", 16000),
		Duration:   envFloat("TITAN_DURATION", 2.0),
		EpochSize:  envInt("TITAN_EPOCH_SIZE", 10000),

		SNRMin:        envFloat("TITAN_SNR_MIN", 0),
		SNRMax:        envFloat("TITAN_SNR_MAX", 20),
		ProbRealNoise: envFloat("TITAN_PROB_REAL_NOISE", 0.5),
		ProbRoom:      envFloat("TITAN_PROB_ROOM", 0.5),

		HumFreq: envFloat("TITAN_HUM_FREQ", 0),

		Workers:  envInt("TITAN_WORKERS", runtime.NumCPU()),
		LogLevel: envStr("TITAN_LOG_LEVEL", "info"),
	}
}

// HumFrequency returns HumFreq, or the local mains frequency when unset.
func (c Config) HumFrequency() float64 {
	if c.HumFreq > 0 {
		return c.HumFreq
	}
	return mains.Frequency()
}

// Level parses LogLevel, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
