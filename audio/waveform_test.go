// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"slices"
	"testing"
)

func TestWaveform_Clone(t *testing.T) {
	t.Parallel()

	w := Waveform{0.1, 0.2}
	c := w.Clone()
	c[0] = 1

	if w[0] != 0.1 {
		t.Error("Clone() shares memory with the original")
	}
	if Waveform(nil).Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
}

func TestWaveform_Peak(t *testing.T) {
	t.Parallel()

	if got := (Waveform{0.1, -0.7, 0.3}).Peak(); math.Abs(got-0.7) > 1e-6 {
		t.Errorf("Peak() = %v, want 0.7", got)
	}
	if got := (Waveform{}).Peak(); got != 0 {
		t.Errorf("Peak() of empty = %v, want 0", got)
	}
}

func TestWaveform_Clamp(t *testing.T) {
	t.Parallel()

	w := Waveform{-2, -1, 0.5, 1, 3}
	got := w.Clamp()

	want := Waveform{-1, -1, 0.5, 1, 1}
	if !slices.Equal(got, want) {
		t.Errorf("Clamp() = %v, want %v", got, want)
	}
	if w[0] != -2 {
		t.Error("Clamp() mutated its receiver")
	}
}

func TestWaveform_Normalize(t *testing.T) {
	t.Parallel()

	got := Waveform{0.25, -0.5}.Normalize()
	if math.Abs(got.Peak()-1) > 1e-6 {
		t.Errorf("Normalize() peak = %v, want 1", got.Peak())
	}

	silent := Waveform{0, 0}.Normalize()
	if silent.Peak() != 0 {
		t.Errorf("Normalize() of silence peak = %v, want 0", silent.Peak())
	}
}

func TestWaveform_Fit(t *testing.T) {
	t.Parallel()

	w := Waveform{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		length int
		offset int
		want   Waveform
	}{
		{"crop from start", 3, 0, Waveform{1, 2, 3}},
		{"crop with offset", 3, 2, Waveform{3, 4, 5}},
		{"pad", 7, 0, Waveform{1, 2, 3, 4, 5, 0, 0}},
		{"offset runs off end", 4, 3, Waveform{4, 5, 0, 0}},
		{"offset out of range", 2, 9, Waveform{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := w.Fit(tt.length, tt.offset); !slices.Equal(got, tt.want) {
				t.Errorf("Fit(%d, %d) = %v, want %v", tt.length, tt.offset, got, tt.want)
			}
		})
	}
}
