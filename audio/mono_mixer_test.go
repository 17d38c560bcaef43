// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/audtrim/internal/audiotest"
)

func TestMonoMixer_Modes(t *testing.T) {
	t.Parallel()

	wave := func(_, ch int) float32 { return float32(ch+1) / 10 } // 0.1, 0.2, 0.3, 0.4

	tests := []struct {
		name     string
		channels int
		mode     MixMode
		want     float32
	}{
		{"mono passthrough", 1, MixAverage, 0.1},
		{"stereo average", 2, MixAverage, 0.15},
		{"quad average", 4, MixAverage, 0.25},
		{"stereo first", 2, MixFirst, 0.1},
		{"quad first", 4, MixFirst, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mixer := NewMonoMixerMode(audiotest.NewSource(8000, tt.channels, 100, wave), tt.mode)
			if mixer.Channels() != 1 {
				t.Errorf("Channels() = %d, want 1", mixer.Channels())
			}

			buf := make([]float32, 10)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 10 {
				t.Fatalf("ReadSamples() n = %d, want 10", n)
			}

			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 1e-6 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.Silence(8000, 2, 5))
	buf := make([]float32, 10)

	n, err := mixer.ReadSamples(buf)
	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = mixer.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.Silence(8000, 2, 5))
	if n, err := mixer.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.Silence(8000, 2, 5)
	mixer := NewMonoMixerMode(src, MixFirst)

	if err := mixer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func TestMixMode_String(t *testing.T) {
	t.Parallel()

	if MixFirst.String() != "first" || MixAverage.String() != "average" {
		t.Errorf("String() = %q/%q", MixFirst, MixAverage)
	}
	if MixMode(7).String() != "MixMode(7)" {
		t.Errorf("MixMode(7).String() = %q", MixMode(7))
	}
}
