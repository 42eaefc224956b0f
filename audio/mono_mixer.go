// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds an interleaved multi-channel Source into a single channel by
// averaging each frame. ReadSamples counts frames, which for mono are samples.
type MonoMixer struct {
	src      Source
	channels int
	tmp      []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src:      src,
		channels: src.Channels(),
		tmp:      make([]float32, 0, 8192),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.channels <= 1 {
		return m.src.ReadSamples(dst)
	}

	needed := len(dst) * m.channels
	if cap(m.tmp) < needed {
		m.tmp = make([]float32, needed)
	}
	m.tmp = m.tmp[:needed]

	n, err := m.src.ReadSamples(m.tmp)
	// a trailing partial frame is dropped
	frames := n / m.channels
	if frames == 0 {
		return 0, err
	}

	switch m.channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		inv := 1 / float32(m.channels)
		for f := range frames {
			frame := m.tmp[f*m.channels : (f+1)*m.channels]
			var sum float32
			for _, v := range frame {
				sum += v
			}
			dst[f] = sum * inv
		}
	}

	return frames, err
}
