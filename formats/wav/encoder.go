// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/linresample/utils"
)

// Encode writes mono as an integer PCM WAV of bitDepth bits, copying every
// sample into each of channels channels. Samples are clamped to [-1, 1].
//
// The encoder seeks back to patch the header sizes, so w must be seekable;
// use WritePCM for pipes and buffers.
func Encode(w io.WriteSeeker, sampleRate, bitDepth, channels int, mono []float32) error {
	if err := checkLayout(bitDepth, channels); err != nil {
		return err
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, pcmFormat)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(mono)*channels),
		SourceBitDepth: bitDepth,
	}
	for i, x := range mono {
		v := utils.FloatToInt(x, bitDepth)
		for c := range channels {
			buf.Data[i*channels+c] = v
		}
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

func checkLayout(bitDepth, channels int) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: got %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if channels < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}
	return nil
}
