// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3, which always decodes to
// interleaved stereo 16-bit PCM. The source therefore reports two channels
// even for mono files; run it through audio.Load or audio.MonoMixer to fold
// it back down.
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buffer, err := audio.Load(source)
package mp3
