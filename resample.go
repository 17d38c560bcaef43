// SPDX-License-Identifier: EPL-2.0

package audtrim

import (
	"context"
	"fmt"
	"io"

	"github.com/ik5/audtrim/asset"
	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/decode"
	"github.com/ik5/audtrim/formats/wav"
	"github.com/ik5/audtrim/trim"
	"github.com/ik5/audtrim/utils"
)

// ResampleToMono16 runs src through the cubic resampler, keeps channel 0
// and quantizes with the same rounding rule as trim.Export. It returns the
// samples and targetRate. src is drained but not closed.
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, 0, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, targetRate)
	}

	if bufferSize <= 0 {
		bufferSize = 4096
	}

	resampler := audio.NewResampler(src, targetRate)
	mono := audio.NewMonoMixerMode(resampler, audio.MixFirst)

	// rough guess from the source rate, grown by append as needed
	pcm16 := make([]int16, 0, targetRate)
	buf := make([]float32, bufferSize)
	var scratch []int16

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			scratch = utils.Quantize16(scratch, buf[:n])
			pcm16 = append(pcm16, scratch...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("resample to %d Hz: %w", targetRate, err)
		}
	}

	return pcm16, targetRate, nil
}

// ExportResampled is trim.Export at a different sample rate: the selected
// frames of channel 0 are resampled to rate before encoding.
func ExportResampled(buf *audio.Buffer, region audio.Region, rate int) ([]byte, error) {
	clip, err := buf.Slice(region)
	if err != nil {
		return nil, err
	}

	if rate == clip.SampleRate() {
		return trim.Export(clip, audio.FullRegion(clip))
	}

	pcm16, rate, err := ResampleToMono16(clip.Source(), rate, 4096)
	if err != nil {
		return nil, err
	}

	return wav.EncodeMono16(rate, pcm16)
}

// TrimAsset decodes a and exports region as a WAV file named after it.
func TrimAsset(ctx context.Context, a *asset.Asset, region audio.Region, opts ...decode.Option) (*trim.File, error) {
	buf, err := decode.New(opts...).Decode(ctx, a)
	if err != nil {
		return nil, err
	}

	return trim.ExportFile(a.Name(), buf, region)
}
