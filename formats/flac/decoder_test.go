// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"
)

// mockFrameParser replays prepared frames, then reports io.EOF or err
type mockFrameParser struct {
	frames []*frame.Frame
	err    error
}

func (m *mockFrameParser) ParseNext() (*frame.Frame, error) {
	if len(m.frames) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}
	f := m.frames[0]
	m.frames = m.frames[1:]
	return f, nil
}

func newFrame(channels ...[]int32) *frame.Frame {
	f := &frame.Frame{}
	for _, samples := range channels {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: samples})
	}
	return f
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not FLAC data")))
	if !errors.Is(err, ErrNotFlacFile) {
		t.Errorf("Decode() error = %v, want %v", err, ErrNotFlacFile)
	}
}

func TestSource_ReadSamples_Interleaves(t *testing.T) {
	t.Parallel()

	dec := &mockFrameParser{frames: []*frame.Frame{
		newFrame([]int32{16384, -16384}, []int32{0, 8192}),
	}}
	s := &source{dec: dec, sampleRate: 44100, channels: 2, bitDepth: 16}

	buf := make([]float32, 8)
	n, err := s.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	want := []float32{0.5, 0, -0.5, 0.25}
	if n != len(want) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(want))
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}

	n, err = s.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadSamples_SpansFrames(t *testing.T) {
	t.Parallel()

	dec := &mockFrameParser{frames: []*frame.Frame{
		newFrame([]int32{1, 2, 3}),
		newFrame([]int32{4, 5}),
	}}
	s := &source{dec: dec, sampleRate: 8000, channels: 1, bitDepth: 8}

	var got []float32
	buf := make([]float32, 2)
	for {
		n, err := s.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != 5 {
		t.Fatalf("read %d samples, want 5", len(got))
	}
	for i, v := range got {
		want := float32(i+1) / 128
		if v != want {
			t.Errorf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	s := &source{dec: &mockFrameParser{err: boom}, channels: 1, bitDepth: 16}

	_, err := s.ReadSamples(make([]float32, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_ReadSamples_MissingSubframe(t *testing.T) {
	t.Parallel()

	dec := &mockFrameParser{frames: []*frame.Frame{newFrame([]int32{1})}}
	s := &source{dec: dec, channels: 2, bitDepth: 16}

	if _, err := s.ReadSamples(make([]float32, 4)); err == nil {
		t.Error("ReadSamples() error = nil, want error for missing subframe")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := &source{dec: &mockFrameParser{}, sampleRate: 96000, channels: 2, bitDepth: 24}
	if s.SampleRate() != 96000 || s.Channels() != 2 || s.BufSize() != 8192 {
		t.Errorf("metadata = (%d, %d, %d), want (96000, 2, 8192)", s.SampleRate(), s.Channels(), s.BufSize())
	}
	if n, err := s.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
