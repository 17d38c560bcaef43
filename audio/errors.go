// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidSampleRate is returned when a buffer is built with a non-positive rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrNoChannels is returned when a buffer has no channel data.
	ErrNoChannels = errors.New("buffer has no channels")

	// ErrChannelLength is returned when channels differ in frame count.
	ErrChannelLength = errors.New("channels must have equal frame counts")

	// ErrEmptyRegion is returned when a region maps to zero frames.
	ErrEmptyRegion = errors.New("region selects no frames")

	// ErrInvalidRegion is returned when a region bound is NaN or end <= start.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrNoProgress is returned by ReadAll when a source keeps returning
	// zero samples without an error.
	ErrNoProgress = errors.New("source made no progress")
)
