// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(r)
//
// Samples come out interleaved at the stream's native rate and channel
// count. Ogg files carrying Opus rather than Vorbis are rejected; see the
// opus package for those.
package vorbis
