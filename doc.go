// SPDX-License-Identifier: EPL-2.0

// Package linresample converts audio from one sample rate to another by
// linear interpolation at a fractional playhead, one fixed-size block at a
// time, with no seams between blocks.
//
// # Supported Formats
//
// Input is decoded by the format subpackages, all reachable through
// formats.NewRegistry:
//   - WAV (16, 24 and 32-bit PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//   - FLAC via formats/flac
//
// # Quick Start
//
//	file, _ := os.Open("audio.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	// 8kHz mono, 16-bit PCM, produced in blocks of 256 samples
//	samples, rate, _ := linresample.ResampleToMono16(src, 8000, 256)
//
// # Building Blocks
//
// The audio subpackage holds the pieces these helpers are made of:
//
//	buffer, _ := audio.Load(src)            // mono, at the source rate
//	engine := audio.NewEngine(256)
//	block := engine.NewOutputBlock(16000)
//	for !buffer.Done() {
//	    engine.Resample(buffer, block)
//	    // consume block.Slots
//	}
//
// The output always has a whole number of blocks. The last one carries
// silence past the end of the source.
//
// # Writing WAV Files
//
//	file, _ := os.Create("output.wav")
//	wav.WriteWAV16(file, rate, samples)
package linresample
