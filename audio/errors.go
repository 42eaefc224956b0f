// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("destination buffer smaller than one frame")
	ErrInvalidBlockSize  = errors.New("block size must be positive")
	ErrBlockSizeMismatch = errors.New("output block does not match engine block size")
	ErrInvalidSampleRate = errors.New("sample rate must be positive and finite")
	ErrNegativePlayhead  = errors.New("playhead must be non-negative")
)
