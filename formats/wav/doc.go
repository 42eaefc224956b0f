// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Reading and seekable writing go through github.com/go-audio/wav. Integer
// PCM at 16, 24 and 32 bits is supported, with any channel count and sample
// rate.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//
// The decoder returns an audio.Source with samples normalized by the full
// scale of the file's bit depth.
//
// # Writing WAV Files
//
// Encode writes normalized mono samples to a seekable file and duplicates
// them into as many channels as requested:
//
//	file, _ := os.Create("resampled.wav")
//	err := wav.Encode(file, 22050, 24, 2, samples)
//
// WritePCM produces the same bytes for writers that cannot seek, such as
// stdout, and WriteWAV16 writes mono 16-bit PCM that is already quantized.
package wav
