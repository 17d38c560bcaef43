// SPDX-License-Identifier: EPL-2.0

package asset

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audtrim/formats/aiff"
	"github.com/ik5/audtrim/formats/mp3"
	"github.com/ik5/audtrim/formats/opus"
	"github.com/ik5/audtrim/formats/vorbis"
	"github.com/ik5/audtrim/formats/wav"
)

// Type tags produced by inference and sniffing.
const (
	TypeWAV    = "audio/wav"
	TypeMP3    = "audio/mpeg"
	TypeOgg    = "audio/ogg"
	TypeVorbis = "audio/ogg; codecs=vorbis"
	TypeOpus   = "audio/ogg; codecs=opus"
	TypeAIFF   = "audio/aiff"
	TypeWebM   = "audio/webm"
)

// sniffLen is how many leading bytes Sniff inspects.
const sniffLen = 64

var extTypes = map[string]string{
	".wav":  TypeWAV,
	".wave": TypeWAV,
	".mp3":  TypeMP3,
	".ogg":  TypeOgg,
	".oga":  TypeOgg,
	".opus": TypeOpus,
	".aif":  TypeAIFF,
	".aiff": TypeAIFF,
	".aifc": TypeAIFF,
	".weba": TypeWebM,
	".webm": TypeWebM,
}

// Asset is an encoded audio file: a name, a declared type tag and the raw
// bytes. It is immutable once built.
type Asset struct {
	name string
	typ  string
	data []byte
}

// New copies data into an Asset. An empty typ is inferred from name.
func New(name, typ string, data []byte) *Asset {
	if typ == "" {
		typ = TypeByName(name)
	}

	return &Asset{
		name: name,
		typ:  typ,
		data: bytes.Clone(data),
	}
}

// Open reads the file at path. limit caps the size in bytes; zero or
// negative means unlimited. Every failure is a *FetchError.
func Open(path string, limit int64) (*Asset, error) {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &FetchError{Name: name, Err: err}
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && limit > 0 && info.Size() > limit {
		return nil, &FetchError{Name: name, Err: fmt.Errorf("%w: %d > %d bytes", ErrTooLarge, info.Size(), limit)}
	}

	return Read(name, "", f, limit)
}

// Read drains r into an Asset, used for uploads and recordings that never
// touch the filesystem.
func Read(name, typ string, r io.Reader, limit int64) (*Asset, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FetchError{Name: name, Err: err}
	}

	if limit > 0 && int64(len(data)) > limit {
		return nil, &FetchError{Name: name, Err: fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)}
	}

	if typ == "" {
		typ = TypeByName(name)
	}

	return &Asset{name: name, typ: typ, data: data}, nil
}

func (a *Asset) Name() string { return a.name }
func (a *Asset) Type() string { return a.typ }
func (a *Asset) Size() int    { return len(a.data) }

// Bytes returns a copy of the encoded data.
func (a *Asset) Bytes() []byte { return bytes.Clone(a.data) }

// Reader returns a fresh seekable reader over the encoded data.
func (a *Asset) Reader() *bytes.Reader { return bytes.NewReader(a.data) }

// Sniff identifies the container from its leading bytes. It returns one of
// the Type constants, or "" when nothing matches.
func (a *Asset) Sniff() string {
	head := a.data[:min(len(a.data), sniffLen)]

	switch {
	case wav.Sniff(head):
		return TypeWAV
	case aiff.Sniff(head):
		return TypeAIFF
	case opus.Sniff(head):
		return TypeOpus
	case vorbis.Sniff(head):
		return TypeVorbis
	case mp3.Sniff(head):
		return TypeMP3
	default:
		return ""
	}
}

func (a *Asset) String() string {
	return fmt.Sprintf("%s (%s, %d bytes)", a.name, a.typ, len(a.data))
}

// TypeByName infers a type tag from the file extension, falling back to the
// system MIME table. Unknown extensions give "".
func TypeByName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := extTypes[ext]; ok {
		return t
	}

	return mime.TypeByExtension(ext)
}

// IsAudioType reports whether typ is in the audio/ family, the guard an
// import applies before attempting a decode.
func IsAudioType(typ string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(typ)), "audio/")
}
