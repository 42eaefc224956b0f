// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/linresample/audio"
	"github.com/ik5/linresample/utils"
)

const (
	// go-mp3 always decodes to interleaved stereo 16-bit little-endian PCM
	channels       = 2
	bitDepth       = 16
	bytesPerSample = 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte

	// low byte of a sample split across two reads
	odd    byte
	hasOdd bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	start := 0
	if s.hasOdd {
		s.buf[0] = s.odd
		s.hasOdd = false
		start = 1
	}

	n, err := s.dec.Read(s.buf[start:])
	n += start

	samples := n / bytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = utils.IntToFloat(int(v), bitDepth)
	}
	if n%bytesPerSample != 0 {
		s.odd = s.buf[n-1]
		s.hasOdd = true
	}

	switch {
	case errors.Is(err, io.EOF):
		return samples, io.EOF
	case err != nil:
		return samples, fmt.Errorf("reading mp3: %w", err)
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
