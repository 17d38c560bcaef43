// SPDX-License-Identifier: EPL-2.0

package opus

import "errors"

var (
	// ErrNotOpusFile is returned when the input is not an Ogg Opus stream.
	ErrNotOpusFile = errors.New("not an Ogg Opus file")

	// ErrUnsupportedChannels is returned for channel mapping families
	// libopusfile cannot downmix to interleaved output.
	ErrUnsupportedChannels = errors.New("unsupported Opus channel layout")
)
