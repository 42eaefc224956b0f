// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ResampleAll runs the block loop over src until its playhead has consumed
// the whole source, and returns every produced block back to back.
//
// The output length is always a multiple of blockSize: the final block is
// kept whole, including the silence past the end of the source. src.Playhead
// is advanced; resampling starts from wherever it currently is.
//
// Example:
//
//	src := audio.NewSourceBuffer(44100, samples)
//	out, err := audio.ResampleAll(src, 22050, 256)
func ResampleAll(src *SourceBuffer, targetRate float64, blockSize int) ([]float32, error) {
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}

	engine := NewEngine(blockSize)
	block := engine.NewOutputBlock(targetRate)
	if err := engine.Validate(src, block); err != nil {
		logrus.WithFields(logrus.Fields{
			"function":    "ResampleAll",
			"source_rate": src.SampleRate,
			"target_rate": targetRate,
			"block_size":  blockSize,
			"error":       err.Error(),
		}).Error("Resample validation failed")
		return nil, err
	}

	ratio := src.SampleRate / targetRate
	out := make([]float32, 0, estimateBlocks(src, ratio, blockSize)*blockSize)

	// ties the start and finish entries of one session together
	session := uuid.NewString()

	logrus.WithFields(logrus.Fields{
		"function":    "ResampleAll",
		"session":     session,
		"source_rate": src.SampleRate,
		"target_rate": targetRate,
		"ratio":       ratio,
		"block_size":  blockSize,
		"playhead":    src.Playhead,
	}).Debug("Starting block resampling")

	blocks := 0
	for !src.Done() {
		engine.Resample(src, block)
		out = append(out, block.Slots...)
		blocks++
	}

	logrus.WithFields(logrus.Fields{
		"function": "ResampleAll",
		"session":  session,
		"blocks":   blocks,
		"samples":  len(out),
		"playhead": src.Playhead,
	}).Debug("Block resampling finished")

	return out, nil
}

// estimateBlocks is the number of blocks the loop in ResampleAll will run.
func estimateBlocks(src *SourceBuffer, ratio float64, blockSize int) int {
	remaining := float64(src.Len()) - src.Playhead
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining / (ratio * float64(blockSize))))
}
