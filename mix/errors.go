// SPDX-License-Identifier: EPL-2.0

package mix

import "errors"

var ErrLengthMismatch = errors.New("waveform lengths differ")
