// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/titandata/audio"
	"github.com/ik5/titandata/formats/wav"
)

func Example_roundTrip() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "pair.wav")
	if err := wav.WriteFile(path, 16000, audio.Waveform{0, 0.5, -0.5, 0}); err != nil {
		fmt.Println(err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Println(err)
		return
	}
	samples, err := audio.ReadAll(src)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, %d channel(s), %d samples\n", src.SampleRate(), src.Channels(), len(samples))
	fmt.Printf("%.3f\n", samples[1])
	// Output:
	// 16000 Hz, 1 channel(s), 4 samples
	// 0.500
}
