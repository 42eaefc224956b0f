// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/linresample/utils"
)

const headerSize = 44

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.  samples must be int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if err := writeHeader(w, sampleRate, 16, 1, len(samples)); err != nil {
		return err
	}

	return writeChunked(w, len(samples), 2, func(dst []byte, i int) {
		binary.LittleEndian.PutUint16(dst, uint16(samples[i]))
	})
}

// WritePCM writes mono as a canonical 44-byte-header WAV to any writer, with
// each sample duplicated into channels channels. Unlike Encode it needs no
// seeking, since the data size is known up front.
func WritePCM(w io.Writer, sampleRate, bitDepth, channels int, mono []float32) error {
	if err := checkLayout(bitDepth, channels); err != nil {
		return err
	}
	if err := writeHeader(w, sampleRate, bitDepth, channels, len(mono)); err != nil {
		return err
	}

	width := bitDepth / 8
	frame := make([]byte, width)

	return writeChunked(w, len(mono), width*channels, func(dst []byte, i int) {
		putSample(frame, utils.FloatToInt(mono[i], bitDepth))
		for c := range channels {
			copy(dst[c*width:], frame)
		}
	})
}

func putSample(dst []byte, v int) {
	switch len(dst) {
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(int16(v)))
	case 3:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(int32(v)))
	}
}

func writeHeader(w io.Writer, sampleRate, bitDepth, channels, frames int) error {
	bytesPerSample := bitDepth / 8
	blockAlign := channels * bytesPerSample
	dataSize := uint32(frames * blockAlign)

	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(bitDepth))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// writeChunked encodes count frames of frameSize bytes through put and writes
// them in chunks of at most chunkFrames frames.
func writeChunked(w io.Writer, count, frameSize int, put func(dst []byte, i int)) error {
	const chunkFrames = 8192
	if count == 0 {
		return nil
	}

	buf := make([]byte, min(count, chunkFrames)*frameSize)
	for start := 0; start < count; start += chunkFrames {
		end := min(start+chunkFrames, count)
		chunk := buf[:(end-start)*frameSize]

		for i := start; i < end; i++ {
			off := (i - start) * frameSize
			put(chunk[off:off+frameSize], i)
		}

		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
