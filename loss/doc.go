// SPDX-License-Identifier: EPL-2.0

// Package loss implements a scale-invariant reconstruction loss for
// denoising models.
//
// Each batch element is centered (DC removed) and scored with SI-SDR:
//
//	alpha  = <pred, target> / (||target||² + eps)
//	s      = alpha · target
//	e      = pred - s
//	SI-SDR = 10·log10(||s||² / (||e||² + eps) + eps)
//
// Elements whose target is near silent (mean(target²) <= 1e-5) skip SI-SDR,
// which is unstable there, and pay 10·L1 instead, so emitting noise over
// silence is penalized directly. Active elements cost -SI-SDR + 0.1·L1.
// The reported loss is the batch mean.
//
// Inputs are shaped [batch, time] or [batch, 1, time]; any other shape is
// rejected with ErrShape.
package loss
