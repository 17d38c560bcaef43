// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audtrim/audio"
)

// pcmReader is the part of gowav.Decoder the source needs; tests fake it.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	convert    func(int) float32
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil {
		return 0, fmt.Errorf("read WAV PCM: %w", err)
	}

	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = s.convert(v)
	}

	return n, nil
}

// Sniff reports whether head starts a RIFF container of form type WAVE.
func Sniff(head []byte) bool {
	return len(head) >= 12 && bytes.HasPrefix(head, []byte("RIFF")) && string(head[8:12]) == "WAVE"
}

// intSamples scales signed integer PCM of the given width to [-1, 1).
func intSamples(bits int) func(int) float32 {
	scale := float32(int64(1) << (bits - 1))
	return func(v int) float32 { return float32(v) / scale }
}

// go-audio/wav hands back 8-bit samples unsigned, centred on 128.
func uint8Samples(v int) float32 { return float32(v-128) / 128 }

// go-audio/wav reads 32-bit words as int32; float data keeps its bits.
func float32Samples(v int) float32 { return math.Float32frombits(uint32(int32(v))) }

// Decoder reads RIFF/WAVE files with integer PCM samples of 8, 16, 24 or 32
// bits, or 32-bit IEEE float. Chunks other than fmt and data are skipped.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading WAV data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()

	var convert func(int) float32
	switch f := dec.WavAudioFormat; f {
	case FormatPCM, FormatExtensible:
		switch dec.BitDepth {
		case 8:
			convert = uint8Samples
		case 16, 24, 32:
			convert = intSamples(int(dec.BitDepth))
		default:
			return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
		}
	case FormatIEEEFloat:
		if dec.BitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, dec.BitDepth)
		}
		convert = float32Samples
	default:
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, f)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		convert:    convert,
	}, nil
}
