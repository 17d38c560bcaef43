// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds sources and fixtures shared by the package tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// Waveform returns the sample for frame index i on channel ch.
type Waveform func(i, ch int) float32

// Source generates frames from a Waveform. It satisfies audio.Source
// without importing it.
type Source struct {
	Rate   int
	Chans  int
	Frames int
	Wave   Waveform

	// Chunk caps the frames returned per read; 0 means no cap.
	Chunk int
	// FailAfter makes ReadSamples fail once that many frames were produced; 0 disables.
	FailAfter int

	pos    int
	closed bool
}

// ErrInjected is returned by a Source configured with FailAfter.
var ErrInjected = errors.New("audiotest: injected read failure")

func NewSource(rate, chans, frames int, wave Waveform) *Source {
	return &Source{Rate: rate, Chans: chans, Frames: frames, Wave: wave}
}

func Silence(rate, chans, frames int) *Source {
	return NewSource(rate, chans, frames, func(int, int) float32 { return 0 })
}

func Constant(rate, chans, frames int, v float32) *Source {
	return NewSource(rate, chans, frames, func(int, int) float32 { return v })
}

func Sine(rate, chans, frames int, freq float64) *Source {
	return NewSource(rate, chans, frames, func(i, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(rate)))
	})
}

// Ramp produces i/frames on channel 0 and -i/frames on the others, which
// makes channel identity visible in assertions.
func Ramp(rate, chans, frames int) *Source {
	return NewSource(rate, chans, frames, func(i, ch int) float32 {
		v := float32(i) / float32(frames)
		if ch == 0 {
			return v
		}
		return -v
	})
}

func (s *Source) SampleRate() int { return s.Rate }
func (s *Source) Channels() int   { return s.Chans }
func (s *Source) BufSize() int    { return 4096 }
func (s *Source) Closed() bool    { return s.closed }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.FailAfter > 0 && s.pos >= s.FailAfter {
		return 0, ErrInjected
	}

	if s.pos >= s.Frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.Chans, s.Frames-s.pos)
	if s.Chunk > 0 {
		frames = min(frames, s.Chunk)
	}

	for f := range frames {
		for ch := range s.Chans {
			dst[f*s.Chans+ch] = s.Wave(s.pos+f, ch)
		}
	}
	s.pos += frames

	if s.pos >= s.Frames {
		return frames * s.Chans, io.EOF
	}

	return frames * s.Chans, nil
}
