// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the length of the canonical RIFF/WAVE header.
const HeaderSize = 44

const (
	FormatPCM        = 1
	FormatIEEEFloat  = 3
	FormatExtensible = 0xFFFE

	fmtChunkSize = 16
)

// Header is the canonical 44-byte header. All integers are little-endian
// on the wire:
//
//	offset size field
//	0      4    "RIFF"
//	4      4    RIFF chunk size = 36 + DataSize
//	8      4    "WAVE"
//	12     4    "fmt "
//	16     4    fmt chunk size = 16
//	20     2    audio format = 1 (PCM)
//	22     2    NumChannels
//	24     4    SampleRate
//	28     4    byte rate = SampleRate * BlockAlign
//	32     2    block align = NumChannels * BitsPerSample / 8
//	34     2    BitsPerSample
//	36     4    "data"
//	40     4    DataSize
type Header struct {
	NumChannels   uint16
	SampleRate    uint32
	BitsPerSample uint16
	DataSize      uint32
}

// Mono16Header describes frames mono 16-bit samples at sampleRate.
func Mono16Header(sampleRate, frames int) Header {
	return Header{
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		BitsPerSample: 16,
		DataSize:      uint32(frames * 2),
	}
}

func (h Header) BlockAlign() uint16 { return h.NumChannels * (h.BitsPerSample / 8) }
func (h Header) ByteRate() uint32   { return h.SampleRate * uint32(h.BlockAlign()) }
func (h Header) RIFFSize() uint32   { return 36 + h.DataSize }

// Frames is the number of sample frames the data chunk holds.
func (h Header) Frames() int {
	if h.BlockAlign() == 0 {
		return 0
	}
	return int(h.DataSize) / int(h.BlockAlign())
}

// Put writes the header into b, which must hold at least HeaderSize bytes.
func (h Header) Put(b []byte) {
	_ = b[HeaderSize-1]

	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], h.RIFFSize())
	copy(b[8:12], "WAVE")

	copy(b[12:16], "fmt ")
	binary.LittleEndian.PutUint32(b[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(b[20:22], FormatPCM)
	binary.LittleEndian.PutUint16(b[22:24], h.NumChannels)
	binary.LittleEndian.PutUint32(b[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(b[28:32], h.ByteRate())
	binary.LittleEndian.PutUint16(b[32:34], h.BlockAlign())
	binary.LittleEndian.PutUint16(b[34:36], h.BitsPerSample)

	copy(b[36:40], "data")
	binary.LittleEndian.PutUint32(b[40:44], h.DataSize)
}

// MarshalBinary returns the 44 header bytes.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)
	h.Put(b)

	return b, nil
}

// ParseHeader reads a canonical header: fmt at offset 12 and data at 36.
// Files with other chunk layouts are rejected with ErrUnsupportedWavLayout;
// use Decoder for those.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(b))
	}

	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return Header{}, ErrNotWavFile
	}

	if string(b[12:16]) != "fmt " || string(b[36:40]) != "data" {
		return Header{}, ErrUnsupportedWavLayout
	}

	if f := binary.LittleEndian.Uint16(b[20:22]); f != FormatPCM {
		return Header{}, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, f)
	}

	return Header{
		NumChannels:   binary.LittleEndian.Uint16(b[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(b[24:28]),
		BitsPerSample: binary.LittleEndian.Uint16(b[34:36]),
		DataSize:      binary.LittleEndian.Uint32(b[40:44]),
	}, nil
}
