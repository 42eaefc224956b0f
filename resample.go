// SPDX-License-Identifier: EPL-2.0

package linresample

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/linresample/audio"
	"github.com/ik5/linresample/utils"
)

// ResampleToMono16 reads all of src, folds it to mono, resamples it to
// targetRate in blocks of blockSize samples and returns the result as 16-bit
// PCM along with its sample rate.
//
// src is not closed. The returned length is a multiple of blockSize.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	pcm16, rate, err := linresample.ResampleToMono16(src, 8000, 256)
//	if err != nil {
//	    panic(err)
//	}
func ResampleToMono16(src audio.Source, targetRate int, blockSize int) ([]int16, int, error) {
	buffer, err := audio.Load(src)
	if err != nil {
		return nil, targetRate, fmt.Errorf("%w", err)
	}

	resampler := audio.NewResampler(buffer, targetRate, blockSize)
	if err := resampler.Validate(); err != nil {
		return nil, targetRate, fmt.Errorf("%w", err)
	}

	pcm16 := make([]int16, 0, outputLen(buffer, targetRate, blockSize))
	buf := make([]float32, blockSize)

	for {
		n, err := resampler.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(x))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}

// ResampleToMono is ResampleToMono16 without the integer conversion.
func ResampleToMono(src audio.Source, targetRate int, blockSize int) ([]float32, error) {
	buffer, err := audio.Load(src)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	out, err := audio.ResampleAll(buffer, float64(targetRate), blockSize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return out, nil
}

// outputLen is the sample count the block loop will produce for buffer.
func outputLen(buffer *audio.SourceBuffer, targetRate, blockSize int) int {
	if buffer.Len() == 0 {
		return 0
	}

	// samples consumed per block
	step := buffer.SampleRate / float64(targetRate) * float64(blockSize)
	blocks := int(float64(buffer.Len())/step) + 1

	return blocks * blockSize
}
