// SPDX-License-Identifier: EPL-2.0

package opus

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

var crcTable = func() (t [256]uint32) {
	for i := range t {
		r := uint32(i) << 24
		for range 8 {
			if r&0x80000000 != 0 {
				r = r<<1 ^ 0x04c11db7
			} else {
				r <<= 1
			}
		}
		t[i] = r
	}
	return t
}()

// idPage builds a beginning-of-stream Ogg page holding an OpusHead packet.
func idPage(channels uint8, rate uint32, preSkip uint16) []byte {
	payload := make([]byte, 19)
	copy(payload, "OpusHead")
	payload[8] = 1
	payload[9] = channels
	binary.LittleEndian.PutUint16(payload[10:], preSkip)
	binary.LittleEndian.PutUint32(payload[12:], rate)

	page := make([]byte, 27, 28+len(payload))
	copy(page, "OggS")
	page[5] = 0x02
	binary.LittleEndian.PutUint32(page[14:], 0x5EED)
	page[26] = 1
	page = append(page, byte(len(payload)))
	page = append(page, payload...)

	var crc uint32
	for _, b := range page {
		crc = crc<<8 ^ crcTable[byte(crc>>24)^b]
	}
	binary.LittleEndian.PutUint32(page[22:], crc)

	return page
}

type fakeStream struct {
	chans  int
	frames int
	err    error
	closed bool
}

func (f *fakeStream) ReadFloat32(pcm []float32) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.frames == 0 {
		return 0, io.EOF
	}

	n := min(len(pcm)/f.chans, f.frames)
	for i := range n * f.chans {
		pcm[i] = 0.25
	}
	f.frames -= n

	return n, nil
}

func (f *fakeStream) Close() error {
	f.closed = true
	return nil
}

func TestReadHeader(t *testing.T) {
	t.Parallel()

	hdr, err := ReadHeader(idPage(2, 44100, 312))
	if err != nil {
		t.Fatalf("ReadHeader() error = %v", err)
	}

	want := Header{Channels: 2, InputRate: 44100, PreSkip: 312}
	if hdr != want {
		t.Errorf("ReadHeader() = %+v, want %+v", hdr, want)
	}
}

func TestReadHeader_Corrupt(t *testing.T) {
	t.Parallel()

	page := idPage(1, 48000, 0)
	page[len(page)-1] ^= 0xFF

	if _, err := ReadHeader(page); !errors.Is(err, ErrNotOpusFile) {
		t.Errorf("ReadHeader() error = %v, want ErrNotOpusFile", err)
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"garbage", []byte("not an ogg stream at all, sorry"), ErrNotOpusFile},
		{"empty", nil, ErrNotOpusFile},
		{"too many channels", idPage(9, 48000, 0), ErrUnsupportedChannels},
		{"zero channels", idPage(0, 48000, 0), ErrUnsupportedChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	stream := &fakeStream{chans: 2, frames: 3}
	src := &source{dec: stream, channels: 2}

	if src.SampleRate() != SampleRate {
		t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), SampleRate)
	}

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if n != 4 || err != nil {
		t.Fatalf("ReadSamples() = (%d, %v), want (4, nil)", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 2 || err != nil {
		t.Fatalf("ReadSamples() = (%d, %v), want (2, nil)", n, err)
	}

	if n, err = src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = (%d, %v), want (0, io.EOF)", n, err)
	}

	if err := src.Close(); err != nil || !stream.closed {
		t.Errorf("Close() = %v, closed = %v", err, stream.closed)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("invalid packet")
	src := &source{dec: &fakeStream{chans: 1, err: boom}, channels: 1}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSniff(t *testing.T) {
	t.Parallel()

	if !Sniff(idPage(1, 48000, 0)) {
		t.Error("Sniff(OpusHead page) = false")
	}

	vorbis := append([]byte("OggS\x00\x02"), make([]byte, 22)...)
	vorbis = append(vorbis, "\x01vorbis"...)
	if Sniff(vorbis) {
		t.Error("Sniff(vorbis page) = true")
	}
}
