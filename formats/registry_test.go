// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/linresample/formats/aiff"
	"github.com/ik5/linresample/formats/flac"
	"github.com/ik5/linresample/formats/wav"
)

func TestNewRegistry_Formats(t *testing.T) {
	t.Parallel()

	got := NewRegistry().Formats()
	want := []string{"aif", "aiff", "flac", "mp3", "ogg", "wav"}
	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestForPath(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	tests := []struct {
		path    string
		want    any
		wantErr bool
	}{
		{"speech.wav", wav.Decoder{}, false},
		{"/tmp/MUSIC.WAV", wav.Decoder{}, false},
		{"take.aif", aiff.Decoder{}, false},
		{"album/track.flac", flac.Decoder{}, false},
		{"notes.txt", nil, true},
		{"noextension", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			dec, err := ForPath(reg, tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("ForPath(%q) error = %v, want %v", tt.path, err, ErrUnsupportedFormat)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForPath(%q) error = %v", tt.path, err)
			}
			if dec != tt.want {
				t.Errorf("ForPath(%q) = %T, want %T", tt.path, dec, tt.want)
			}
		})
	}
}
