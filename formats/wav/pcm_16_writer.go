// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// EncodeMono16 returns a complete mono 16-bit PCM WAV file: the 44-byte
// header followed by samples in little-endian order. The result is always
// HeaderSize + 2*len(samples) bytes.
func EncodeMono16(sampleRate int, samples []int16) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	out := make([]byte, HeaderSize+2*len(samples))
	Mono16Header(sampleRate, len(samples)).Put(out)

	pcm := out[HeaderSize:]
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(s))
	}

	return out, nil
}

// WriteWAV16 streams a mono 16-bit PCM WAV at sampleRate to w.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	var header [HeaderSize]byte
	Mono16Header(sampleRate, len(samples)).Put(header[:])

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write WAV header: %w", err)
	}

	const chunk = 8192
	buf := make([]byte, 2*min(len(samples), chunk))

	for i := 0; i < len(samples); i += chunk {
		part := samples[i:min(i+chunk, len(samples))]
		b := buf[:2*len(part)]

		for j, s := range part {
			binary.LittleEndian.PutUint16(b[2*j:], uint16(s))
		}

		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("write WAV samples: %w", err)
		}
	}

	return nil
}
