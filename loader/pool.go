// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"math/rand/v2"

	"github.com/ik5/titandata/audio"
)

// Pool is a fixed file list bound to a Loader. It satisfies the
// generator's waveform source.
type Pool struct {
	Loader *Loader
	Files  []string
}

// NewPool scans dir with the default extensions.
func NewPool(l *Loader, dir string) (*Pool, error) {
	files, err := Scan(dir)
	if err != nil {
		return nil, err
	}
	return &Pool{Loader: l, Files: files}, nil
}

func (p *Pool) RandomCrop(rng *rand.Rand) audio.Waveform {
	return p.Loader.RandomCrop(rng, p.Files)
}

// Len is the number of files in the pool.
func (p *Pool) Len() int { return len(p.Files) }
