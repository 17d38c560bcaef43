// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE audio.
//
// Decoding goes through github.com/go-audio/wav, so files with extra chunks
// (LIST, JUNK, fact) are accepted. Samples may be 8, 16, 24 or 32-bit
// integer PCM or 32-bit IEEE float:
//
//	src, err := wav.Decoder{}.Decode(r)
//
// Encoding covers one layout: EncodeMono16 and WriteWAV16 produce the
// canonical 44-byte header followed by mono 16-bit little-endian PCM. The
// header layout is described by Header, which can also be parsed back with
// ParseHeader.
//
//	data, err := wav.EncodeMono16(22050, samples)
//	// len(data) == wav.HeaderSize + 2*len(samples)
package wav
