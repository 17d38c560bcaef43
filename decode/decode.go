// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audtrim/asset"
	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/formats/aiff"
	"github.com/ik5/audtrim/formats/mp3"
	"github.com/ik5/audtrim/formats/opus"
	"github.com/ik5/audtrim/formats/vorbis"
	"github.com/ik5/audtrim/formats/wav"
	"github.com/ik5/audtrim/internal/logging"
)

// Registry keys.
const (
	FormatWAV    = "wav"
	FormatMP3    = "mp3"
	FormatVorbis = "vorbis"
	FormatOpus   = "opus"
	FormatAIFF   = "aiff"
)

// Adapter turns encoded assets into decoded buffers. It keeps no state
// between calls and is safe for concurrent use.
type Adapter struct {
	registry *audio.Registry
	log      logrus.FieldLogger
}

type Option func(*Adapter)

// WithRegistry replaces the built-in format set.
func WithRegistry(r *audio.Registry) Option {
	return func(a *Adapter) { a.registry = r }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Adapter) { a.log = l }
}

// DefaultRegistry holds every decoder this module ships.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(FormatWAV, wav.Decoder{})
	r.Register(FormatMP3, mp3.Decoder{})
	r.Register(FormatVorbis, vorbis.Decoder{})
	r.Register(FormatOpus, opus.Decoder{})
	r.Register(FormatAIFF, aiff.Decoder{})

	return r
}

func New(opts ...Option) *Adapter {
	a := &Adapter{
		registry: DefaultRegistry(),
		log:      logging.Discard(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Formats lists the registry keys the adapter can decode.
func (a *Adapter) Formats() []string { return a.registry.Formats() }

// Decode resolves the asset's format, runs the matching decoder and drains
// it into memory. Failures are *DecodeError, except context cancellation
// which is returned wrapped as is.
func (a *Adapter) Decode(ctx context.Context, as *asset.Asset) (buf *audio.Buffer, err error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("decode %q: %w", as.Name(), err)
	}

	format := a.resolve(as)
	log := a.log.WithFields(logrus.Fields{"asset": as.Name(), "format": format})

	dec, ok := a.registry.Get(format)
	if !ok {
		log.WithField("type", as.Type()).Debug("no decoder for asset")
		return nil, &DecodeError{Name: as.Name(), Err: fmt.Errorf("%w: type %q", ErrUnsupportedFormat, as.Type())}
	}

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("decoder panicked")
			buf = nil
			err = &DecodeError{Name: as.Name(), Format: format, Err: fmt.Errorf("%w: %v", ErrDecoderPanic, r)}
		}
	}()

	log.Debug("decoding")

	src, err := dec.Decode(as.Reader())
	if err != nil {
		return nil, &DecodeError{Name: as.Name(), Format: format, Err: err}
	}
	defer src.Close()

	buf, err = audio.ReadAll(ctx, src)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("decode %q: %w", as.Name(), err)
		}
		return nil, &DecodeError{Name: as.Name(), Format: format, Err: err}
	}

	if buf.FrameCount() == 0 {
		return nil, &DecodeError{Name: as.Name(), Format: format, Err: ErrNoAudio}
	}

	log.WithFields(logrus.Fields{
		"sample_rate": buf.SampleRate(),
		"channels":    buf.ChannelCount(),
		"frames":      buf.FrameCount(),
	}).Debug("decoded")

	return buf, nil
}

// resolve prefers the container found in the bytes over the declared tag,
// since browsers and file names often mislabel recordings.
func (a *Adapter) resolve(as *asset.Asset) string {
	if f := FormatForType(as.Sniff()); f != "" {
		return f
	}

	return FormatForType(as.Type())
}

// FormatForType maps a MIME type tag to a registry key, or "" if none fits.
func FormatForType(typ string) string {
	if typ == "" {
		return ""
	}

	media, params, err := mime.ParseMediaType(typ)
	if err != nil {
		return ""
	}

	switch media {
	case "audio/wav", "audio/x-wav", "audio/wave", "audio/vnd.wave":
		return FormatWAV
	case "audio/mpeg", "audio/mp3", "audio/mpeg3", "audio/x-mpeg-3":
		return FormatMP3
	case "audio/aiff", "audio/x-aiff":
		return FormatAIFF
	case "audio/opus":
		return FormatOpus
	case "audio/ogg", "audio/vorbis", "application/ogg":
		if strings.Contains(strings.ToLower(params["codecs"]), "opus") {
			return FormatOpus
		}
		return FormatVorbis
	default:
		return ""
	}
}
