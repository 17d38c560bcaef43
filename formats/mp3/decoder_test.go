// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// fakeMP3 serves int16 samples as little-endian bytes, like gomp3.Decoder.
type fakeMP3 struct {
	rate    int
	samples []int16
	err     error
}

func (m *fakeMP3) SampleRate() int { return m.rate }

func (m *fakeMP3) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.samples) == 0 {
		return 0, io.EOF
	}

	n := min(len(buf)/2, len(m.samples))
	for i := range n {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(m.samples[i]))
	}
	m.samples = m.samples[n:]

	return 2 * n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"text":  []byte("This is not MP3 data"),
		"empty": nil,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrNotMP3File) {
				t.Errorf("Decode() error = %v, want ErrNotMP3File", err)
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeMP3{rate: 44100, samples: []int16{0, 16384, -16384, -32768}},
		sampleRate: 44100,
		buf:        make([]byte, 16),
	}

	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Errorf("metadata = %d Hz x %d ch, want 44100 x 2", src.SampleRate(), src.Channels())
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = (%d, %v), want (4, nil)", n, err)
	}

	want := []float32{0, 0.5, -0.5, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_GrowsBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeMP3{samples: make([]int16, 1000)}, buf: make([]byte, 4)}

	n, err := src.ReadSamples(make([]float32, 1000))
	if n != 1000 || err != nil {
		t.Fatalf("ReadSamples() = (%d, %v), want (1000, nil)", n, err)
	}
	if src.BufSize() < 1000 {
		t.Errorf("BufSize() = %d, want >= 1000", src.BufSize())
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeMP3{err: io.ErrUnexpectedEOF}, buf: make([]byte, 16)}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		head []byte
		want bool
	}{
		{"id3", []byte("ID3\x04\x00"), true},
		{"mpeg1 layer3 sync", []byte{0xFF, 0xFB, 0x90, 0x64}, true},
		{"mpeg2 layer3 sync", []byte{0xFF, 0xF3, 0x48, 0xC4}, true},
		{"layer2 sync", []byte{0xFF, 0xFD, 0x90, 0x64}, false},
		{"riff", []byte("RIFF"), false},
		{"short", []byte{0xFF}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sniff(tt.head); got != tt.want {
				t.Errorf("Sniff(% x) = %v, want %v", tt.head, got, tt.want)
			}
		})
	}
}
