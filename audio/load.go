// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const (
	defaultLoadBufSize = 4096
	maxEmptyReads      = 100
)

// Load drains src into memory as a mono SourceBuffer at the source's own
// sample rate. Multi-channel sources are averaged down with a MonoMixer.
// src is not closed.
func Load(src Source) (*SourceBuffer, error) {
	mono := NewMonoMixer(src)

	size := src.BufSize()
	if size <= 0 {
		size = defaultLoadBufSize
	}
	buf := make([]float32, size)

	var samples []float32
	empty := 0
	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
			empty = 0
		} else {
			empty++
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loading source: %w", err)
		}
		if empty >= maxEmptyReads {
			return nil, fmt.Errorf("loading source: %w", io.ErrNoProgress)
		}
	}

	buffer := NewSourceBuffer(float64(src.SampleRate()), samples)

	logrus.WithFields(logrus.Fields{
		"function":    "Load",
		"sample_rate": src.SampleRate(),
		"channels":    src.Channels(),
		"samples":     buffer.Len(),
		"duration":    buffer.Duration().String(),
	}).Debug("Source loaded")

	return buffer, nil
}
