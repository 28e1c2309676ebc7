// SPDX-License-Identifier: EPL-2.0

package titandata

import "errors"

var (
	// ErrNoCleanSource is returned by New when no clean source is given.
	ErrNoCleanSource = errors.New("clean waveform source is required")

	// ErrNoCleanAudio is returned by Sample when the clean source yields nothing.
	ErrNoCleanAudio = errors.New("clean source returned no audio")

	ErrInvalidCurriculum = errors.New("invalid curriculum")
	ErrInvalidOptions    = errors.New("invalid generator options")
)
