// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat means no registered decoder matches the asset.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrNoAudio means the stream decoded cleanly but held zero frames.
	ErrNoAudio = errors.New("no audio frames")

	// ErrDecoderPanic wraps a panic raised by a format decoder.
	ErrDecoderPanic = errors.New("decoder panicked")
)

// DecodeError reports bytes that were obtained but are not decodable audio.
type DecodeError struct {
	Name   string
	Format string // empty when no format could be resolved
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("decode %q: %v", e.Name, e.Err)
	}

	return fmt.Sprintf("decode %q as %s: %v", e.Name, e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
