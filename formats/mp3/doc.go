// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always emits interleaved stereo 16-bit PCM, so every Source from
// this package reports two channels even for mono files; the left channel
// carries the original signal in that case.
//
//	src, err := mp3.Decoder{}.Decode(r)
package mp3
