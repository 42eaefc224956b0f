// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into an audio.Registry.
package formats

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/linresample/audio"
	"github.com/ik5/linresample/formats/aiff"
	"github.com/ik5/linresample/formats/flac"
	"github.com/ik5/linresample/formats/mp3"
	"github.com/ik5/linresample/formats/vorbis"
	"github.com/ik5/linresample/formats/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// NewRegistry returns a registry keyed by lower case file extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// ForPath picks a decoder from the extension of path.
func ForPath(reg *audio.Registry, path string) (audio.Decoder, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return dec, nil
}
