// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/titandata/audio"
	"github.com/ik5/titandata/loader"
	"github.com/ik5/titandata/loss"
	"github.com/sirupsen/logrus"
)

// ScoreCmd compares an enhanced file with its clean reference.
type ScoreCmd struct {
	Pred       string `required:"" type:"existingfile" help:"Enhanced audio"`
	Target     string `required:"" type:"existingfile" help:"Clean reference audio"`
	SampleRate int    `default:"${sample_rate}" help:"Rate both files are resampled to"`
}

func (c *ScoreCmd) Run(rc *runContext) error {
	l := loader.New(c.SampleRate, 0)
	l.Logger = rc.logger

	pred, err := l.Load(c.Pred)
	if err != nil {
		return err
	}
	target, err := l.Load(c.Target)
	if err != nil {
		return err
	}

	if len(pred) != len(target) {
		n := min(len(pred), len(target))
		rc.logger.WithFields(logrus.Fields{
			"pred":   len(pred),
			"target": len(target),
		}).Warn("Lengths differ, truncating to the shorter file")
		pred, target = pred[:n], target[:n]
	}

	return score(os.Stdout, loss.DefaultConfig(), pred, target)
}

func score(w io.Writer, cfg loss.Config, pred, target audio.Waveform) error {
	p, err := loss.FromRows(pred)
	if err != nil {
		return err
	}
	t, err := loss.FromRows(target)
	if err != nil {
		return err
	}

	elems, err := cfg.Elements(p, t)
	if err != nil {
		return err
	}
	e := elems[0]

	fmt.Fprintf(w, "si-sdr: %.2f dB\n", e.SISDR)
	fmt.Fprintf(w, "l1:     %.5f\n", e.L1)
	fmt.Fprintf(w, "active: %v\n", e.Active)
	fmt.Fprintf(w, "loss:   %.4f\n", e.Loss)
	return nil
}
