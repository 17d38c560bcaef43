// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audtrim/internal/audiotest"
)

func TestNewBuffer_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels [][]float32
		wantErr  error
	}{
		{"valid mono", 8000, [][]float32{{0, 1}}, nil},
		{"valid stereo", 8000, [][]float32{{0, 1}, {1, 0}}, nil},
		{"zero rate", 0, [][]float32{{0}}, ErrInvalidSampleRate},
		{"negative rate", -1, [][]float32{{0}}, ErrInvalidSampleRate},
		{"no channels", 8000, nil, ErrNoChannels},
		{"ragged", 8000, [][]float32{{0, 1}, {1}}, ErrChannelLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewBuffer(tt.rate, tt.channels)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBuffer() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuffer_Metadata(t *testing.T) {
	t.Parallel()

	buf, err := NewBuffer(22050, [][]float32{make([]float32, 11025), make([]float32, 11025)})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	if buf.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", buf.SampleRate())
	}
	if buf.ChannelCount() != 2 {
		t.Errorf("ChannelCount() = %d, want 2", buf.ChannelCount())
	}
	if buf.FrameCount() != 11025 {
		t.Errorf("FrameCount() = %d, want 11025", buf.FrameCount())
	}
	if buf.Duration() != 0.5 {
		t.Errorf("Duration() = %v, want 0.5", buf.Duration())
	}
}

func TestReadAll_Deinterleaves(t *testing.T) {
	t.Parallel()

	src := audiotest.Ramp(1000, 2, 1000)
	src.Chunk = 37

	buf, err := ReadAll(context.Background(), src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if buf.FrameCount() != 1000 {
		t.Fatalf("FrameCount() = %d, want 1000", buf.FrameCount())
	}

	for _, i := range []int{0, 1, 500, 999} {
		want := float32(i) / 1000
		if got := buf.Channel(0)[i]; got != want {
			t.Errorf("channel 0 frame %d = %v, want %v", i, got, want)
		}
		if got := buf.Channel(1)[i]; got != -want {
			t.Errorf("channel 1 frame %d = %v, want %v", i, got, -want)
		}
	}
}

// oddSource returns one trailing sample that does not complete a frame.
type oddSource struct{ done bool }

func (*oddSource) SampleRate() int { return 8000 }
func (*oddSource) Channels() int   { return 2 }
func (*oddSource) BufSize() int    { return 16 }
func (*oddSource) Close() error    { return nil }

func (s *oddSource) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	s.done = true
	copy(dst, []float32{0.1, 0.2, 0.3, 0.4, 0.5})
	return 5, io.EOF
}

func TestReadAll_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	buf, err := ReadAll(context.Background(), &oddSource{})
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if buf.FrameCount() != 2 {
		t.Errorf("FrameCount() = %d, want 2", buf.FrameCount())
	}
}

type stalledSource struct{}

func (stalledSource) SampleRate() int                 { return 8000 }
func (stalledSource) Channels() int                   { return 1 }
func (stalledSource) BufSize() int                    { return 16 }
func (stalledSource) Close() error                    { return nil }
func (stalledSource) ReadSamples([]float32) (int, error) { return 0, nil }

func TestReadAll_NoProgress(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(context.Background(), stalledSource{})
	if !errors.Is(err, ErrNoProgress) {
		t.Errorf("ReadAll() error = %v, want ErrNoProgress", err)
	}
}

func TestReadAll_SourceError(t *testing.T) {
	t.Parallel()

	src := audiotest.Silence(8000, 1, 10000)
	src.Chunk = 100
	src.FailAfter = 500

	_, err := ReadAll(context.Background(), src)
	if !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("ReadAll() error = %v, want ErrInjected", err)
	}
}

func TestReadAll_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadAll(ctx, audiotest.Silence(8000, 1, 100))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ReadAll() error = %v, want context.Canceled", err)
	}
}

func TestBuffer_SourceRoundTrip(t *testing.T) {
	t.Parallel()

	orig, err := ReadAll(context.Background(), audiotest.Ramp(8000, 3, 777))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	again, err := ReadAll(context.Background(), orig.Source())
	if err != nil {
		t.Fatalf("ReadAll(Source()) error = %v", err)
	}

	if again.FrameCount() != orig.FrameCount() || again.ChannelCount() != 3 {
		t.Fatalf("round trip shape = %dx%d, want 3x%d", again.ChannelCount(), again.FrameCount(), orig.FrameCount())
	}

	for c := range 3 {
		for i := range orig.FrameCount() {
			if again.Channel(c)[i] != orig.Channel(c)[i] {
				t.Fatalf("channel %d frame %d = %v, want %v", c, i, again.Channel(c)[i], orig.Channel(c)[i])
			}
		}
	}
}

func TestBuffer_SourceInvalidDst(t *testing.T) {
	t.Parallel()

	buf, _ := NewBuffer(8000, [][]float32{{0, 0}, {0, 0}})

	if _, err := buf.Source().ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestBuffer_Slice(t *testing.T) {
	t.Parallel()

	buf, err := ReadAll(context.Background(), audiotest.Ramp(100, 2, 100))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	sub, err := buf.Slice(Region{Start: 0.25, End: 0.5})
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}

	if sub.FrameCount() != 25 {
		t.Errorf("FrameCount() = %d, want 25", sub.FrameCount())
	}
	if sub.Channel(0)[0] != buf.Channel(0)[25] {
		t.Errorf("first sliced sample = %v, want %v", sub.Channel(0)[0], buf.Channel(0)[25])
	}

	if _, err := buf.Slice(Region{Start: 0.5, End: 0.5}); !errors.Is(err, ErrEmptyRegion) {
		t.Errorf("Slice(empty) error = %v, want ErrEmptyRegion", err)
	}
}
