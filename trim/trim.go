// SPDX-License-Identifier: EPL-2.0

package trim

import (
	"fmt"
	"io"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/formats/wav"
	"github.com/ik5/audtrim/utils"
)

// Prefix is prepended to the original file name of an export.
const Prefix = "trimmed-"

// ErrEmptyRegion is returned when a region maps to no frames.
var ErrEmptyRegion = audio.ErrEmptyRegion

// File is a finished export ready to be handed to a download or upload.
type File struct {
	Name       string
	Data       []byte
	SampleRate int
	Frames     int
}

// Frames maps region onto buf and reports the half-open frame range that
// an export would cover. End overshoot is clamped to the buffer length.
func Frames(buf *audio.Buffer, region audio.Region) (start, end int, err error) {
	start, end = region.Frames(buf.SampleRate(), buf.FrameCount())
	if end <= start {
		return 0, 0, fmt.Errorf("%w: %v maps to frames [%d,%d)", ErrEmptyRegion, region, start, end)
	}

	return start, end, nil
}

// Samples quantizes channel 0 of buf over region to 16-bit PCM.
// Other channels are ignored.
func Samples(buf *audio.Buffer, region audio.Region) ([]int16, error) {
	start, end, err := Frames(buf, region)
	if err != nil {
		return nil, err
	}

	return utils.Quantize16(nil, buf.Channel(0)[start:end]), nil
}

// Export encodes the selected part of channel 0 as a mono 16-bit WAV at the
// buffer's sample rate. The result is 44 + 2*frames bytes and depends only
// on its inputs.
func Export(buf *audio.Buffer, region audio.Region) ([]byte, error) {
	samples, err := Samples(buf, region)
	if err != nil {
		return nil, err
	}

	return wav.EncodeMono16(buf.SampleRate(), samples)
}

// Write streams the same bytes Export would return to w.
func Write(w io.Writer, buf *audio.Buffer, region audio.Region) (int, error) {
	samples, err := Samples(buf, region)
	if err != nil {
		return 0, err
	}

	if err := wav.WriteWAV16(w, buf.SampleRate(), samples); err != nil {
		return 0, err
	}

	return len(samples), nil
}

// ExportFile is Export plus the download name derived from original.
func ExportFile(original string, buf *audio.Buffer, region audio.Region) (*File, error) {
	data, err := Export(buf, region)
	if err != nil {
		return nil, err
	}

	return &File{
		Name:       FileName(original),
		Data:       data,
		SampleRate: buf.SampleRate(),
		Frames:     (len(data) - wav.HeaderSize) / 2,
	}, nil
}

// FileName returns the suggested download name. The original extension is
// kept as is, even though the payload is always WAV.
func FileName(original string) string {
	return Prefix + original
}
