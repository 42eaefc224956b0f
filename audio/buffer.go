// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// SourceBuffer is a fully materialized mono signal together with the read
// position the Engine resumes from.
//
// Playhead is a fractional index into Samples. The Engine advances it on every
// call; callers own it and may inspect or reset it between calls.
type SourceBuffer struct {
	SampleRate float64
	Samples    []float32
	Playhead   float64
}

// NewSourceBuffer wraps samples recorded at sampleRate with the playhead at 0.
func NewSourceBuffer(sampleRate float64, samples []float32) *SourceBuffer {
	return &SourceBuffer{
		SampleRate: sampleRate,
		Samples:    samples,
	}
}

// Len is the number of source samples.
func (b *SourceBuffer) Len() int { return len(b.Samples) }

// At returns the sample at index i, or silence when i is outside the buffer.
func (b *SourceBuffer) At(i int) float32 {
	if i < 0 || i >= len(b.Samples) {
		return 0
	}
	return b.Samples[i]
}

// Done reports whether the playhead has consumed the whole source.
func (b *SourceBuffer) Done() bool {
	return b.Playhead >= float64(len(b.Samples))
}

// Duration of the source at its own sample rate.
func (b *SourceBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.Samples)) / b.SampleRate * float64(time.Second))
}

// OutputBlock is a fixed-size run of output slots at the target sample rate.
type OutputBlock struct {
	SampleRate float64
	Slots      []float32
}

// NewOutputBlock allocates size zeroed slots at sampleRate.
func NewOutputBlock(sampleRate float64, size int) OutputBlock {
	return OutputBlock{
		SampleRate: sampleRate,
		Slots:      make([]float32, size),
	}
}

func (o OutputBlock) Len() int { return len(o.Slots) }
