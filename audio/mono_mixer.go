// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MixMode selects how MonoMixer folds channels into one.
type MixMode int

const (
	// MixAverage averages all channels of a frame.
	MixAverage MixMode = iota
	// MixFirst keeps channel 0 and drops the rest, matching trim export.
	MixFirst
)

func (m MixMode) String() string {
	switch m {
	case MixAverage:
		return "average"
	case MixFirst:
		return "first"
	default:
		return fmt.Sprintf("MixMode(%d)", int(m))
	}
}

// MonoMixer reduces a multi-channel Source to a single channel.
type MonoMixer struct {
	src  Source
	mode MixMode
	tmp  []float32
}

// NewMonoMixer averages channels.
func NewMonoMixer(src Source) *MonoMixer {
	return NewMonoMixerMode(src, MixAverage)
}

func NewMonoMixerMode(src Source, mode MixMode) *MonoMixer {
	return &MonoMixer{
		src:  src,
		mode: mode,
		tmp:  make([]float32, 4096),
	}
}

func (m *MonoMixer) Mode() MixMode   { return m.mode }
func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("close mixer source: %w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	needed := len(dst) * channels
	if cap(m.tmp) < needed {
		m.tmp = make([]float32, max(needed, 8192))
	}
	m.tmp = m.tmp[:needed]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	if m.mode == MixFirst {
		for f := range frames {
			dst[f] = m.tmp[f*channels]
		}

		return frames, err
	}

	inv := float32(1.0) / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		for f := range frames {
			sum := float32(0)
			base := f * channels
			for c := range channels {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * inv
		}
	}

	return frames, err
}
