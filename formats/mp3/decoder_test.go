// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/titandata/audio"
)

// mockMP3Reader serves 16-bit little-endian PCM in chunks of at most
// maxRead bytes.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	offset     int
	maxRead    int
	err        error
}

func newMockReader(sampleRate, maxRead int, samples ...int16) *mockMP3Reader {
	b := new(bytes.Buffer)
	binary.Write(b, binary.LittleEndian, samples)
	return &mockMP3Reader{sampleRate: sampleRate, data: b.Bytes(), maxRead: maxRead}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}
	end := len(m.data)
	if m.maxRead > 0 {
		end = min(end, m.offset+m.maxRead)
	}
	n := copy(buf, m.data[m.offset:end])
	m.offset += n
	return n, nil
}

func newTestSource(dec mp3Reader) *source {
	return &source{dec: dec, sampleRate: dec.SampleRate(), buf: make([]byte, 64)}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("This is not MP3 data")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrInvalidStream) {
				t.Errorf("Decode() error = %v, want ErrInvalidStream", err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockReader(44100, 0))
	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 32 {
		t.Errorf("BufSize() = %d, want 32", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}
	want := []float32{0, 0.5, 32767.0 / 32768, -0.5, -1, 0.25, -0.25, 0}

	tests := []struct {
		name    string
		maxRead int
	}{
		{"single read", 0},
		{"fragmented decoder", 6},
		{"one byte at a time", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newTestSource(newMockReader(8000, tt.maxRead, samples...))
			got, err := audio.ReadAll(src)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("ReadAll() len = %d, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSource_ReadSamples_EmptyDst(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockReader(8000, 0, 1, 2))
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockReader(8000, 0, 1, 2))
	dst := make([]float32, 8)

	n, err := src.ReadSamples(dst)
	if n != 2 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v; want 2, nil", n, err)
	}
	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() after end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	src := newTestSource(&mockMP3Reader{sampleRate: 8000, err: boom})

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want wrapped %v", err, boom)
	}
}

func TestSource_BufferGrows(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockReader(8000, 0, make([]int16, 100)...))
	dst := make([]float32, 100)

	n, _ := src.ReadSamples(dst)
	if n != 100 {
		t.Errorf("ReadSamples() n = %d, want 100", n)
	}
	if src.BufSize() < 100 {
		t.Errorf("BufSize() = %d, want >= 100 after growth", src.BufSize())
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 8192)
	for i := range samples {
		samples[i] = int16(i)
	}
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src := newTestSource(newMockReader(44100, 0, samples...))
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
