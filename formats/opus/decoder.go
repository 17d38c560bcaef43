// SPDX-License-Identifier: EPL-2.0

package opus

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pion/webrtc/v4/pkg/media/oggreader"
	hopus "gopkg.in/hraban/opus.v2"

	"github.com/ik5/audtrim/audio"
)

// SampleRate is the rate libopus always decodes to, whatever the
// input rate recorded in the header.
const SampleRate = 48000

// maxChannels bounds the layouts the decoder accepts (mapping family 1).
const maxChannels = 8

// opusReader is the part of opus.Stream the source needs; tests fake it.
type opusReader interface {
	ReadFloat32([]float32) (int, error)
	Close() error
}

type source struct {
	dec      opusReader
	channels int
}

func (s *source) SampleRate() int { return SampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 5760 * s.channels } // 120 ms at 48 kHz

func (s *source) Close() error {
	if err := s.dec.Close(); err != nil {
		return fmt.Errorf("close Opus stream: %w", err)
	}

	return nil
}

// ReadSamples decodes into dst. The underlying stream counts samples per
// channel; the result is converted back to interleaved values.
func (s *source) ReadSamples(dst []float32) (int, error) {
	usable := len(dst) - len(dst)%s.channels
	if usable == 0 {
		return 0, nil
	}

	n, err := s.dec.ReadFloat32(dst[:usable])
	if err != nil && err != io.EOF {
		return n * s.channels, fmt.Errorf("read Opus packets: %w", err)
	}

	return n * s.channels, err
}

// Header describes an Ogg Opus identification header.
type Header struct {
	Channels   int
	InputRate  int
	PreSkip    int
	MappingFam int
}

// ReadHeader parses the OpusHead page at the start of data.
func ReadHeader(data []byte) (Header, error) {
	_, hdr, err := oggreader.NewWith(bytes.NewReader(data))
	if err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrNotOpusFile, err)
	}

	return Header{
		Channels:   int(hdr.Channels),
		InputRate:  int(hdr.SampleRate),
		PreSkip:    int(hdr.PreSkip),
		MappingFam: int(hdr.ChannelMap),
	}, nil
}

// Sniff reports whether head starts an Ogg stream carrying Opus.
func Sniff(head []byte) bool {
	return bytes.HasPrefix(head, []byte("OggS")) && bytes.Contains(head[:min(len(head), 64)], []byte("OpusHead"))
}

type Decoder struct{}

// Decode reads the whole input, validates its Opus header and hands the
// bytes to libopusfile. Output is always 48 kHz.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read Opus data: %w", err)
	}

	hdr, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	if hdr.Channels < 1 || hdr.Channels > maxChannels {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, hdr.Channels)
	}

	stream, err := hopus.NewStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotOpusFile, err)
	}

	return &source{dec: stream, channels: hdr.Channels}, nil
}
