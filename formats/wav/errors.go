// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("unsupported WAV sample encoding")
	ErrUnsupportedBitDepth  = errors.New("unsupported WAV bit depth")
	ErrShortHeader          = errors.New("WAV header truncated")
	ErrInvalidSampleRate    = errors.New("sample rate must be positive")
)
