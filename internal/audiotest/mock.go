// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic sources for tests.
// The types satisfy audio.Source without importing it.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates interleaved frames from a waveform function.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // frames to generate
	generated    int // frames generated so far
	waveform     func(sample int, channel int) float32
	closed       bool
}

// NewMockSource creates a source of totalSamples frames.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewSliceSource plays back interleaved samples as given.
func NewSliceSource(sampleRate, channels int, interleaved []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(interleaved)/channels, func(sample int, channel int) float32 {
		return interleaved[sample*channels+channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	written := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return written, io.EOF
	}
	return written, nil
}

// ErrorSource yields n frames of silence, then fails with err.
type ErrorSource struct {
	*MockSource
	err error
}

// NewErrorSource creates a mono source that fails after n samples.
func NewErrorSource(sampleRate, n int, err error) *ErrorSource {
	return &ErrorSource{
		MockSource: NewMockSource(sampleRate, 1, n, func(int, int) float32 { return 0 }),
		err:        err,
	}
}

func (e *ErrorSource) ReadSamples(dst []float32) (int, error) {
	n, err := e.MockSource.ReadSamples(dst)
	if err == io.EOF {
		return n, e.err
	}
	return n, err
}

// StalledSource never produces data and never reports EOF.
type StalledSource struct {
	SampleRateHz int
}

func (s StalledSource) SampleRate() int                    { return s.SampleRateHz }
func (s StalledSource) Channels() int                      { return 1 }
func (s StalledSource) BufSize() int                       { return 16 }
func (s StalledSource) Close() error                       { return nil }
func (s StalledSource) ReadSamples([]float32) (int, error) { return 0, nil }
