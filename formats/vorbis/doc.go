// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, which decodes straight to
// interleaved float32 in [-1.0, 1.0], so no sample conversion happens here.
// Reads are trimmed to whole frames; a destination smaller than one frame
// fails with audio.ErrInvalidDstSize.
//
// # Example: Vorbis to WAV Conversion
//
//	oggFile, _ := os.Open("input.ogg")
//	source, _ := vorbis.Decoder{}.Decode(oggFile)
//
//	pcm16, rate, _ := linresample.ResampleToMono16(source, 16000, 256)
//
//	wavFile, _ := os.Create("output.wav")
//	wav.WriteWAV16(wavFile, rate, pcm16)
package vorbis
