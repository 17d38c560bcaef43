// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAV builds a canonical PCM WAV file with interleaved int16 samples.
func WAV(sampleRate, channels int, samples []int16) []byte {
	return WAVWithFormat(1, sampleRate, channels, 16, samples)
}

// WAVWithFormat builds a WAV file with an arbitrary format tag and bit
// depth. Sample payload is always written as int16 values.
func WAVWithFormat(format uint16, sampleRate, channels, bits int, samples []int16) []byte {
	payload := new(bytes.Buffer)
	binary.Write(payload, binary.LittleEndian, samples)

	return WAVBytes(format, sampleRate, channels, bits, payload.Bytes())
}

// WAVBytes builds a WAV file around an already encoded data chunk.
func WAVBytes(format uint16, sampleRate, channels, bits int, data []byte) []byte {
	buf := new(bytes.Buffer)
	dataSize := uint32(len(data))

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, format)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*bits/8))
	binary.Write(buf, binary.LittleEndian, uint16(channels*bits/8))
	binary.Write(buf, binary.LittleEndian, uint16(bits))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(data)

	return buf.Bytes()
}

// Tone returns n int16 samples of a repeating square-ish pattern.
func Tone(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		if (i/8)%2 == 0 {
			out[i] = 8000
		} else {
			out[i] = -8000
		}
	}
	return out
}
