// SPDX-License-Identifier: EPL-2.0

// Command titangen writes noisy/clean WAV training pairs and scores
// enhanced audio against a reference.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/ik5/titandata/config"
	"github.com/sirupsen/logrus"
)

var version = "0.0.1"

// Globals are shared by every subcommand.
type Globals struct {
	LogLevel string      `help:"Log level (trace, debug, info, warn, error)" default:"${log_level}"`
	Version  VersionFlag `short:"v" help:"Show version information"`
}

// VersionFlag prints the version and exits.
type VersionFlag bool

func (v VersionFlag) BeforeApply(app *kong.Kong) error {
	fmt.Fprintln(app.Stdout, "titangen", version)
	app.Exit(0)
	return nil
}

// CLI defines the command-line interface
type CLI struct {
	Globals

	Generate GenerateCmd `cmd:"" help:"Generate training pairs into a directory"`
	Score    ScoreCmd    `cmd:"" help:"Score a prediction against a clean target"`
}

func main() {
	cfg := config.Load()

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("titangen"),
		kong.Description("Procedural denoising dataset generator"),
		kong.UsageOnError(),
		kong.Vars{
			"log_level":       cfg.LogLevel,
			"sample_rate":     strconv.Itoa(cfg.SampleRate),
			"duration":        ftoa(cfg.Duration),
			"epoch_size":      strconv.Itoa(cfg.EpochSize),
			"snr_min":         ftoa(cfg.SNRMin),
			"snr_max":         ftoa(cfg.SNRMax),
			"prob_real_noise": ftoa(cfg.ProbRealNoise),
			"prob_room":       ftoa(cfg.ProbRoom),
			"hum_freq":        ftoa(cfg.HumFreq),
			"workers":         strconv.Itoa(cfg.Workers),
		},
	)

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(cli.LogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(cfg.Level())
		logger.WithField("level", cli.LogLevel).Warn("Unknown log level, using default")
	}

	err := ctx.Run(&runContext{cfg: cfg, logger: logger})
	ctx.FatalIfErrorf(err)
}

type runContext struct {
	cfg    config.Config
	logger *logrus.Logger
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
