// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the stream lacks a valid FLAC signature or STREAMINFO block
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedBitDepth indicates a sample size outside 4 to 32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
)
