// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/linresample/utils"
)

// Engine fills output blocks from a SourceBuffer by linear interpolation.
//
// It keeps one fractional source position per output slot, allocated once by
// NewEngine, so Resample does not allocate. The read position itself lives on
// the SourceBuffer, which lets any engine resume any source.
//
// An Engine is not safe for concurrent use. Use one Engine per goroutine.
type Engine struct {
	positions []float64
}

// NewEngine returns an engine for blocks of exactly blockSize slots.
func NewEngine(blockSize int) *Engine {
	if blockSize < 0 {
		blockSize = 0
	}

	return &Engine{
		positions: make([]float64, blockSize),
	}
}

// BlockSize is the output block length this engine was built for.
func (e *Engine) BlockSize() int { return len(e.positions) }

// NewOutputBlock allocates a block that matches the engine's block size.
func (e *Engine) NewOutputBlock(sampleRate float64) OutputBlock {
	return NewOutputBlock(sampleRate, len(e.positions))
}

// Validate checks the inputs Resample does not check itself.
func (e *Engine) Validate(src *SourceBuffer, out OutputBlock) error {
	switch {
	case len(e.positions) == 0:
		return ErrInvalidBlockSize
	case len(out.Slots) != len(e.positions):
		return fmt.Errorf("%w: block has %d slots, engine expects %d",
			ErrBlockSizeMismatch, len(out.Slots), len(e.positions))
	case !validRate(src.SampleRate):
		return fmt.Errorf("%w: source rate %v", ErrInvalidSampleRate, src.SampleRate)
	case !validRate(out.SampleRate):
		return fmt.Errorf("%w: output rate %v", ErrInvalidSampleRate, out.SampleRate)
	case !(src.Playhead >= 0):
		return fmt.Errorf("%w: %v", ErrNegativePlayhead, src.Playhead)
	}

	return nil
}

// Resample writes every slot of out and moves src.Playhead to the position
// the next call must start from.
//
// out must not be longer than BlockSize; a longer block panics. Positions
// outside the source read as silence. No input is validated here, see Validate.
func (e *Engine) Resample(src *SourceBuffer, out OutputBlock) {
	if len(out.Slots) == 0 {
		return
	}

	// source samples consumed per output sample
	ratio := src.SampleRate / out.SampleRate

	positions := e.positions[:len(out.Slots)]
	for i := range positions {
		positions[i] = src.Playhead + float64(i)*ratio
	}

	for i, pos := range positions {
		out.Slots[i] = interpolateAt(src, pos)
	}

	src.Playhead = positions[len(positions)-1] + ratio
}

// interpolateAt reads src at a fractional position.
func interpolateAt(src *SourceBuffer, pos float64) float32 {
	before := math.Floor(pos)
	after := math.Ceil(pos)

	y0 := src.At(int(before))
	if before == after {
		return y0
	}
	y1 := src.At(int(after))

	return float32(utils.Lerp(
		utils.Point{X: before, Y: float64(y0)},
		utils.Point{X: after, Y: float64(y1)},
		pos,
	))
}

func validRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 1)
}
