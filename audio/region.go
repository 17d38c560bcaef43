// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Region is a selection over a buffer's timeline, in seconds.
type Region struct {
	Start float64
	End   float64
}

// FullRegion covers all of b.
func FullRegion(b *Buffer) Region {
	return Region{Start: 0, End: b.Duration()}
}

func (r Region) Duration() float64 { return r.End - r.Start }

func (r Region) String() string {
	return fmt.Sprintf("[%.3fs, %.3fs)", r.Start, r.End)
}

// Frames maps r onto the half-open frame range [start, end) of a clip with
// the given rate and length. Both bounds are floor(seconds * rate) clamped
// to [0, frameCount]; a NaN bound maps to 0. An end at or past the clip's
// duration maps to frameCount.
func (r Region) Frames(sampleRate, frameCount int) (start, end int) {
	rate := float64(sampleRate)

	start = clampFrame(r.Start*rate, frameCount)
	if r.End >= float64(frameCount)/rate {
		return start, frameCount
	}

	return start, clampFrame(r.End*rate, frameCount)
}

// Clamp bounds r to [0, duration]. End is pulled back to duration when
// it overshoots, start is raised to 0 when negative.
func (r Region) Clamp(duration float64) (Region, error) {
	if math.IsNaN(r.Start) || math.IsNaN(r.End) {
		return Region{}, fmt.Errorf("%w: %v", ErrInvalidRegion, r)
	}

	r.Start = max(r.Start, 0)
	r.End = min(r.End, duration)

	if r.End <= r.Start {
		return Region{}, fmt.Errorf("%w: %v over %.3fs", ErrInvalidRegion, r, duration)
	}

	return r, nil
}

func clampFrame(pos float64, frameCount int) int {
	f := math.Floor(pos)

	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= float64(frameCount):
		return frameCount
	default:
		return int(f)
	}
}
