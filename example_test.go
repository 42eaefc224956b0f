// SPDX-License-Identifier: EPL-2.0

package linresample_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/linresample"
	"github.com/ik5/linresample/formats"
	"github.com/ik5/linresample/formats/wav"
)

// Example_basicUsage decodes a WAV file and resamples it to mono 16-bit PCM.
func Example_basicUsage() {
	samples := []int16{100, -100, 200, -200, 300, -300}
	wavData := new(bytes.Buffer)
	if err := wav.WriteWAV16(wavData, 8000, samples); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(wavData.Bytes()))
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	// two blocks of four cover six samples at the same rate
	pcm16, rate, err := linresample.ResampleToMono16(src, 8000, 4)
	if err != nil {
		fmt.Printf("resample error: %v\n", err)
		return
	}

	fmt.Printf("Processed %d samples at %d Hz\n", len(pcm16), rate)
	fmt.Println("Padding:", pcm16[6:])
	// Output:
	// Processed 8 samples at 8000 Hz
	// Padding: [0 0]
}

// Example_downsample resamples one second of 44.1kHz audio to 8kHz.
func Example_downsample() {
	samples := make([]int16, 44100)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	wavData := new(bytes.Buffer)
	if err := wav.WriteWAV16(wavData, 44100, samples); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(wavData.Bytes()))
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	out, err := linresample.ResampleToMono(src, 8000, 256)
	if err != nil {
		fmt.Printf("resample error: %v\n", err)
		return
	}

	fmt.Printf("Downsampled 44100 samples to %d in %d blocks\n", len(out), len(out)/256)
	// Output:
	// Downsampled 44100 samples to 8192 in 32 blocks
}

// Example_registry picks a decoder from a file name.
func Example_registry() {
	reg := formats.NewRegistry()
	fmt.Println("Formats:", reg.Formats())

	dec, err := formats.ForPath(reg, "voice.WAV")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("voice.WAV: %T\n", dec)

	if _, err := formats.ForPath(reg, "notes.txt"); errors.Is(err, formats.ErrUnsupportedFormat) {
		fmt.Println("notes.txt:", err)
	}
	// Output:
	// Formats: [aif aiff flac mp3 ogg wav]
	// voice.WAV: wav.Decoder
	// notes.txt: unsupported audio format: txt
}

// Example_errorHandling shows how decode failures surface.
func Example_errorHandling() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("not an audio file")))
	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Not a valid WAV file")
	}
	// Output: Not a valid WAV file
}
