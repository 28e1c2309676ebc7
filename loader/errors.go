// SPDX-License-Identifier: EPL-2.0

package loader

import "errors"

var (
	ErrNotDirectory = errors.New("not a directory")
	ErrNoSamples    = errors.New("decoded file has no samples")
)
