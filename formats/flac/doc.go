// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding on top of
// github.com/mewkiz/flac.
//
// Frames are decoded one at a time and their subframes interleaved into
// [L0, R0, L1, R1, ...] order, normalized by the stream's bit depth.
package flac
