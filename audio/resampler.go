// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Resampler converts a Source to another sample rate using Catmull-Rom
// cubic interpolation over a four-frame window. Channel count is kept.
// When downsampling a one-pole low-pass runs on the input frames.
//
// Output frame k sits at source position k*step, and frames are produced
// while that position is inside the source, so a same-rate pass returns
// exactly the input length.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window holds source frames base-1, base, base+1 and base+2. Past the
	// end of the source the last frame is repeated.
	window [4][]float32
	base   int
	frac   float64
	read   int // real frames pulled from src
	eof    bool
	primed bool

	srcBuf []float32

	lowpass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		srcBuf:   make([]float32, channels),
		lowpass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("close resampler source: %w", err)
	}

	return nil
}

// readFrame pulls one frame from the source into dst.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	for range maxEmptyReads {
		n, err := r.src.ReadSamples(r.srcBuf)
		got := n >= r.channels
		if got {
			copy(dst, r.srcBuf)
			r.read++
		}

		switch {
		case errors.Is(err, io.EOF):
			r.eof = true
			return got, nil
		case err != nil:
			return got, fmt.Errorf("resampler read: %w", err)
		case got:
			return true, nil
		}
	}

	return false, ErrNoProgress
}

// next fills dst with the following source frame, or with prev once the
// source is exhausted.
func (r *Resampler) next(dst, prev []float32) error {
	if !r.eof {
		got, err := r.readFrame(dst)
		if err != nil {
			return err
		}
		if got {
			r.filter(dst)
			return nil
		}
	}

	copy(dst, prev)

	return nil
}

func (r *Resampler) filter(frame []float32) {
	if !r.lowpass {
		return
	}

	for c := range frame {
		frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
		r.state[c] = frame[c]
	}
}

// prime loads frame 0 into the window, padding the left edge with a copy.
func (r *Resampler) prime() error {
	got, err := r.readFrame(r.window[1])
	if err != nil {
		return err
	}
	if !got {
		return io.EOF
	}

	r.primed = true

	copy(r.state, r.window[1])
	copy(r.window[0], r.window[1])

	if err := r.next(r.window[2], r.window[1]); err != nil {
		return err
	}

	return r.next(r.window[3], r.window[2])
}

// advance shifts the window by one source frame.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first
	r.base++

	return r.next(r.window[3], r.window[2])
}

// ReadSamples fills dst with interleaved frames at the destination rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	want := len(dst) / r.channels

	for written < want {
		for r.frac >= 1.0 {
			r.frac -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if r.eof && r.base >= r.read {
			return written * r.channels, io.EOF
		}

		x := float32(r.frac)
		out := dst[written*r.channels:]
		for c := range r.channels {
			out[c] = cubic(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}

// cubic evaluates the Catmull-Rom spline through y0..y3 at x in [0,1],
// where x=0 is y1 and x=1 is y2.
func cubic(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
