// SPDX-License-Identifier: EPL-2.0

// Package audio holds the PCM primitives shared by the decoders, the trim
// engine and the editing session.
//
// # Streams
//
// Decoders produce a Source, an interleaved float32 stream:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// A Decoder turns an io.Reader into a Source, and a Registry maps format
// names such as "wav" or "opus" to decoders.
//
// # Buffers and regions
//
// ReadAll drains a Source into a Buffer, the decoded clip kept in memory
// with one slice per channel. A Buffer never changes once built.
//
//	buf, err := audio.ReadAll(ctx, src)
//	region := audio.FullRegion(buf)
//	start, end := region.Frames(buf.SampleRate(), buf.FrameCount())
//
// Region bounds are seconds. Frames maps them with floor(seconds * rate),
// clamped to [0, frameCount], so [start, end) is the selected range.
//
// # Processing
//
// Resampler changes the rate with Catmull-Rom interpolation and MonoMixer
// reduces channels, either by taking channel 0 (MixFirst) or by averaging
// (MixAverage). Both wrap a Source and can be chained:
//
//	mono := audio.NewMonoMixerMode(audio.NewResampler(buf.Source(), 16000), audio.MixFirst)
package audio
