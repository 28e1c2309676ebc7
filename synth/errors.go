// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrNotProcedural = errors.New("real noise is supplied by the loader, not synthesized")
	ErrUnknownKind   = errors.New("unknown noise kind")
	ErrInvalidLength = errors.New("length must be at least 1")
)
