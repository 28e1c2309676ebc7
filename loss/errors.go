// SPDX-License-Identifier: EPL-2.0

package loss

import "errors"

var (
	ErrShape         = errors.New("unsupported tensor shape")
	ErrShapeMismatch = errors.New("prediction and target shapes differ")
	ErrDataSize      = errors.New("tensor data does not match its shape")
	ErrEmptyBatch    = errors.New("empty batch")
)
