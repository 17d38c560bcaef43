// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads ReadAll tolerates.
const maxEmptyReads = 100

// Buffer is a fully decoded PCM clip held in memory, one slice per channel.
//
// A Buffer is never mutated after construction; callers that need a
// different clip build a new one.
type Buffer struct {
	sampleRate int
	channels   [][]float32
}

// NewBuffer validates and wraps deinterleaved channel data.
// The channel slices are retained, not copied.
func NewBuffer(sampleRate int, channels [][]float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	frames := len(channels[0])
	for i, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d",
				ErrChannelLength, i+1, len(ch), frames)
		}
	}

	return &Buffer{sampleRate: sampleRate, channels: channels}, nil
}

func (b *Buffer) SampleRate() int   { return b.sampleRate }
func (b *Buffer) ChannelCount() int { return len(b.channels) }
func (b *Buffer) FrameCount() int   { return len(b.channels[0]) }

// Channel returns the samples of channel i. The slice must not be modified.
func (b *Buffer) Channel(i int) []float32 { return b.channels[i] }

// Duration in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.FrameCount()) / float64(b.sampleRate)
}

// Slice returns a buffer sharing memory with b that covers the frames
// selected by r.
func (b *Buffer) Slice(r Region) (*Buffer, error) {
	start, end := r.Frames(b.sampleRate, b.FrameCount())
	if end <= start {
		return nil, fmt.Errorf("%w: frames [%d,%d)", ErrEmptyRegion, start, end)
	}

	channels := make([][]float32, len(b.channels))
	for i, ch := range b.channels {
		channels[i] = ch[start:end:end]
	}

	return &Buffer{sampleRate: b.sampleRate, channels: channels}, nil
}

// Source replays the buffer as an interleaved stream.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf   *Buffer
	frame int
}

func (s *bufferSource) SampleRate() int { return s.buf.sampleRate }
func (s *bufferSource) Channels() int   { return len(s.buf.channels) }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := len(s.buf.channels)
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := s.buf.FrameCount() - s.frame
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)
	for f := range frames {
		for c, ch := range s.buf.channels {
			dst[f*channels+c] = ch[s.frame+f]
		}
	}
	s.frame += frames

	if s.frame >= s.buf.FrameCount() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}

// ReadAll drains src into a Buffer, deinterleaving as it goes.
// A trailing partial frame is dropped. ctx is checked between reads.
func ReadAll(ctx context.Context, src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels
	if size == 0 {
		size = channels
	}

	var (
		interleaved []float32
		buf         = make([]float32, size)
		empty       int
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		n, err := src.ReadSamples(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
			empty = 0
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, ErrNoProgress
			}
		}
	}

	frames := len(interleaved) / channels
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			out[c][f] = interleaved[base+c]
		}
	}

	return NewBuffer(src.SampleRate(), out)
}
