// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestRegion_Frames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		region    Region
		rate      int
		frames    int
		wantStart int
		wantEnd   int
	}{
		{"full second", Region{0, 1}, 22050, 22050, 0, 22050},
		{"middle", Region{0.5, 0.75}, 8000, 8000, 4000, 6000},
		{"floors fractional start", Region{0.15, 0.39}, 10, 10, 1, 3},
		{"end overshoot clamps", Region{0, 1.0000001}, 22050, 22050, 0, 22050},
		{"negative start clamps", Region{-0.5, 0.5}, 100, 100, 0, 50},
		{"start past end of clip", Region{3, 4}, 100, 100, 100, 100},
		{"nan start", Region{math.NaN(), 0.5}, 100, 100, 0, 50},
		{"nan end", Region{0.1, math.NaN()}, 100, 100, 10, 0},
		{"infinite end", Region{0, math.Inf(1)}, 100, 100, 0, 100},
		{"start just below a frame", Region{0.35, 1}, 44100, 44100, 15434, 44100},
		{"both just below a frame", Region{0.57, 0.7}, 44100, 44100, 25136, 30869},
		{"end just below a frame", Region{0, 0.69}, 44100, 44100, 0, 30428},
		{"end at duration with drift", Region{0, 1001.0 / 8000}, 8000, 1001, 0, 1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end := tt.region.Frames(tt.rate, tt.frames)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Frames() = [%d,%d), want [%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestRegion_Clamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		region  Region
		want    Region
		wantErr error
	}{
		{"inside", Region{0.25, 0.5}, Region{0.25, 0.5}, nil},
		{"end overshoot", Region{0.25, 1.0000001}, Region{0.25, 1}, nil},
		{"negative start", Region{-1, 0.5}, Region{0, 0.5}, nil},
		{"reversed", Region{0.5, 0.25}, Region{}, ErrInvalidRegion},
		{"zero length", Region{0.5, 0.5}, Region{}, ErrInvalidRegion},
		{"start beyond duration", Region{2, 3}, Region{}, ErrInvalidRegion},
		{"nan", Region{math.NaN(), 1}, Region{}, ErrInvalidRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.region.Clamp(1)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Clamp() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Clamp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFullRegion(t *testing.T) {
	t.Parallel()

	buf, err := NewBuffer(8000, [][]float32{make([]float32, 4000)})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	r := FullRegion(buf)
	if r.Start != 0 || r.End != 0.5 {
		t.Errorf("FullRegion() = %v, want [0, 0.5)", r)
	}

	if start, end := r.Frames(buf.SampleRate(), buf.FrameCount()); start != 0 || end != 4000 {
		t.Errorf("FullRegion().Frames() = [%d,%d), want [0,4000)", start, end)
	}
}

func TestFullRegion_ExactForAnyLength(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{8000, 11025, 22050, 44100, 48000} {
		for frames := 1; frames <= 5000; frames++ {
			r := Region{Start: 0, End: float64(frames) / float64(rate)}
			if _, end := r.Frames(rate, frames); end != frames {
				t.Fatalf("rate %d, %d frames: end = %d", rate, frames, end)
			}
		}
	}
}

func TestRegion_FramesMatchFloor(t *testing.T) {
	t.Parallel()

	const rate, frames = 44100, 44100

	for ms := range 1000 {
		sec := float64(ms) / 1000
		want := int(math.Floor(sec * rate))

		if start, _ := (Region{Start: sec, End: 1}).Frames(rate, frames); start != want {
			t.Errorf("start %.3fs: frame %d, want %d", sec, start, want)
		}
		if ms > 0 {
			if _, end := (Region{Start: 0, End: sec}).Frames(rate, frames); end != want {
				t.Errorf("end %.3fs: frame %d, want %d", sec, end, want)
			}
		}
	}
}
