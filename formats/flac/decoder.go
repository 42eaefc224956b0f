// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/linresample/audio"
	"github.com/ik5/linresample/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        frameParser
	sampleRate int
	channels   int
	bitDepth   int

	// decoded samples of the current frame not yet handed out
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 * s.channels }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.nextFrame(); err != nil {
				if errors.Is(err, io.EOF) {
					s.eof = true
					break
				}
				return written, err
			}
			continue
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if written == 0 && s.eof {
		return 0, io.EOF
	}
	return written, nil
}

// nextFrame decodes one frame and interleaves its subframes into pending.
func (s *source) nextFrame() error {
	f, err := s.dec.ParseNext()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("reading flac frame: %w", err)
	}
	if len(f.Subframes) < s.channels {
		return fmt.Errorf("reading flac frame: %d subframes for %d channels", len(f.Subframes), s.channels)
	}

	frames := len(f.Subframes[0].Samples)
	need := frames * s.channels
	if cap(s.pending) < need {
		s.pending = make([]float32, need)
	}
	s.pending = s.pending[:need]

	for ch := range s.channels {
		samples := f.Subframes[ch].Samples
		for i := 0; i < frames && i < len(samples); i++ {
			s.pending[i*s.channels+ch] = utils.IntToFloat(int(samples[i]), s.bitDepth)
		}
	}

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels < 1 {
		return nil, ErrNotFlacFile
	}
	if info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	return &source{
		dec:        stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
