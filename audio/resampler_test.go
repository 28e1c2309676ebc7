// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/titandata/internal/audiotest"
)

func TestResample_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inLen   int
		srcRate int
		dstRate int
		wantLen int
	}{
		{"same rate", 1000, 16000, 16000, 1000},
		{"44.1k to 16k", 44100, 44100, 16000, 16000},
		{"8k to 16k", 8000, 8000, 16000, 16000},
		{"48k to 16k", 4800, 48000, 16000, 1600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := Waveform(audiotest.Sine(tt.srcRate, tt.inLen, 440, 0.5))
			out, err := Resample(in, tt.srcRate, tt.dstRate)
			if err != nil {
				t.Fatalf("Resample() error = %v", err)
			}
			if len(out) != tt.wantLen {
				t.Errorf("Resample() len = %d, want %d", len(out), tt.wantLen)
			}
		})
	}
}

func TestResample_ConstantSignal(t *testing.T) {
	t.Parallel()

	in := make(Waveform, 4410)
	for i := range in {
		in[i] = 0.5
	}

	for _, dst := range []int{8000, 16000, 96000} {
		out, err := Resample(in, 44100, dst)
		if err != nil {
			t.Fatalf("Resample(%d) error = %v", dst, err)
		}
		for i, s := range out {
			if math.Abs(float64(s-0.5)) > 1e-4 {
				t.Fatalf("Resample(%d)[%d] = %v, want 0.5", dst, i, s)
			}
		}
	}
}

func TestResample_PreservesToneAmplitude(t *testing.T) {
	t.Parallel()

	// A 200Hz tone is far below both Nyquist limits
	in := Waveform(audiotest.Sine(8000, 8000, 200, 0.8))
	out, err := Resample(in, 8000, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	inRMS := audiotest.RMS(in)
	outRMS := audiotest.RMS(out)
	if math.Abs(outRMS-inRMS)/inRMS > 0.02 {
		t.Errorf("RMS changed from %v to %v", inRMS, outRMS)
	}
}

func TestResample_InvalidRate(t *testing.T) {
	t.Parallel()

	if _, err := Resample(Waveform{1}, 0, 16000); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Resample(src=0) error = %v, want ErrInvalidRate", err)
	}
	if _, err := Resample(Waveform{1}, 16000, -1); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Resample(dst=-1) error = %v, want ErrInvalidRate", err)
	}
}

func BenchmarkResample_44kTo16k(b *testing.B) {
	in := Waveform(audiotest.Sine(44100, 44100, 440, 0.5))

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Resample(in, 44100, 16000)
	}
}
