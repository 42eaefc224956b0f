// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
// # Supported Formats
//
//   - PCM 8, 16, 24 and 32-bit
//   - Mono and multi-channel
//   - Any sample rate
//
// AIFF-C (compressed) files are rejected.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder returns an audio.Source whose samples are normalized by the
// full scale of the file's bit depth. Readers that cannot seek are read into
// memory first.
//
// # Errors
//
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: Sample size other than 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
package aiff
