// SPDX-License-Identifier: EPL-2.0

package loss

import (
	"fmt"
	"math"
)

// Config holds the loss weights and numerical guards.
type Config struct {
	Alpha            float64 // weight of -SI-SDR on active elements
	Beta             float64 // weight of L1 on active elements
	Eps              float64
	SilenceThreshold float64 // mean(target²) at or below this is silence
	SilenceL1Weight  float64 // weight of L1 on silent elements
}

func DefaultConfig() Config {
	return Config{
		Alpha:            1.0,
		Beta:             0.1,
		Eps:              1e-8,
		SilenceThreshold: 1e-5,
		SilenceL1Weight:  10.0,
	}
}

// Element is the per-batch-element breakdown of the loss.
type Element struct {
	SISDR  float64 // dB
	L1     float64
	Energy float64 // mean(target²) before centering
	Active bool
	Loss   float64
}

// Compute returns the batch-mean hybrid loss using DefaultConfig.
func Compute(pred, target Tensor) (float64, error) {
	return DefaultConfig().Compute(pred, target)
}

// Compute returns the mean over the batch of each element's loss: for an
// active target, Alpha·(-SI-SDR) + Beta·L1; for a silent one, only
// SilenceL1Weight·L1, since SI-SDR is meaningless without target energy.
func (c Config) Compute(pred, target Tensor) (float64, error) {
	elems, err := c.Elements(pred, target)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, e := range elems {
		sum += e.Loss
	}
	return sum / float64(len(elems)), nil
}

// Elements evaluates every batch element.
func (c Config) Elements(pred, target Tensor) ([]Element, error) {
	p, t, err := pair(pred, target)
	if err != nil {
		return nil, err
	}

	out := make([]Element, len(p))
	for b := range p {
		e := Element{
			SISDR:  c.sisdr(p[b], t[b]),
			L1:     meanAbsDiff(p[b], t[b]),
			Energy: meanSquare(t[b]),
		}
		e.Active = e.Energy > c.SilenceThreshold
		if e.Active {
			e.Loss = c.Alpha*(-e.SISDR) + c.Beta*e.L1
		} else {
			e.Loss = c.SilenceL1Weight * e.L1
		}
		out[b] = e
	}
	return out, nil
}

// SISDR returns the scale-invariant signal-to-distortion ratio in dB for
// each batch element.
func (c Config) SISDR(pred, target Tensor) ([]float64, error) {
	p, t, err := pair(pred, target)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(p))
	for b := range p {
		out[b] = c.sisdr(p[b], t[b])
	}
	return out, nil
}

// sisdr removes the DC offset from both signals, projects the prediction
// onto the target and compares the projection with the residual.
func (c Config) sisdr(pred, target []float32) float64 {
	p := centered(pred)
	t := centered(target)

	var dot, targetEnergy float64
	for i := range p {
		dot += p[i] * t[i]
		targetEnergy += t[i] * t[i]
	}
	alpha := dot / (targetEnergy + c.Eps)

	var signal, noise float64
	for i := range p {
		s := alpha * t[i]
		e := p[i] - s
		signal += s * s
		noise += e * e
	}

	return 10 * math.Log10(signal/(noise+c.Eps)+c.Eps)
}

func pair(pred, target Tensor) ([][]float32, [][]float32, error) {
	p, err := pred.rows()
	if err != nil {
		return nil, nil, fmt.Errorf("prediction: %w", err)
	}
	t, err := target.rows()
	if err != nil {
		return nil, nil, fmt.Errorf("target: %w", err)
	}
	if len(p) != len(t) || len(p[0]) != len(t[0]) {
		return nil, nil, fmt.Errorf("%w: [%d, %d] vs [%d, %d]", ErrShapeMismatch, len(p), len(p[0]), len(t), len(t[0]))
	}
	return p, t, nil
}

func centered(x []float32) []float64 {
	var mean float64
	for _, v := range x {
		mean += float64(v)
	}
	mean /= float64(len(x))

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v) - mean
	}
	return out
}

func meanAbsDiff(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(float64(a[i]) - float64(b[i]))
	}
	return sum / float64(len(a))
}

func meanSquare(x []float32) float64 {
	var sum float64
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	return sum / float64(len(x))
}
