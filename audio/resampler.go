// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Resampler exposes a SourceBuffer at another sample rate as a mono Source.
//
// Output is produced one engine block at a time and handed out across
// ReadSamples calls of any length. The last block carries the silence the
// engine pads past the end of the source.
type Resampler struct {
	src     *SourceBuffer
	engine  *Engine
	block   OutputBlock
	pending []float32
	dstRate int
}

// NewResampler reads src at dstRate using blocks of blockSize samples.
func NewResampler(src *SourceBuffer, dstRate int, blockSize int) *Resampler {
	engine := NewEngine(blockSize)

	return &Resampler{
		src:     src,
		engine:  engine,
		block:   engine.NewOutputBlock(float64(dstRate)),
		dstRate: dstRate,
	}
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return 1 }
func (r *Resampler) BufSize() int    { return r.engine.BlockSize() }

// Close drops any block not yet read.
func (r *Resampler) Close() error {
	r.pending = nil
	return nil
}

// Validate reports whether the source and target rate can be resampled.
func (r *Resampler) Validate() error {
	return r.engine.Validate(r.src, r.block)
}

func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	written := 0
	for written < len(dst) {
		if len(r.pending) == 0 {
			if r.src.Done() || r.engine.BlockSize() == 0 {
				break
			}
			r.engine.Resample(r.src, r.block)
			r.pending = r.block.Slots
		}

		n := copy(dst[written:], r.pending)
		r.pending = r.pending[n:]
		written += n
	}

	if len(r.pending) == 0 && (r.src.Done() || r.engine.BlockSize() == 0) {
		return written, io.EOF
	}
	return written, nil
}
