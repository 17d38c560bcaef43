// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audtrim/asset"
	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/internal/logging"
	"github.com/ik5/audtrim/trim"
)

type State int

const (
	StateEmpty State = iota
	StateDecoding
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateDecoding:
		return "decoding"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Decoder is what a session needs from the decode adapter.
type Decoder interface {
	Decode(ctx context.Context, a *asset.Asset) (*audio.Buffer, error)
}

// Snapshot is a consistent copy of the session state.
type Snapshot struct {
	ID         string
	State      State
	Generation uint64
	Asset      string // name of the asset behind Buffer
	Buffer     *audio.Buffer
	Region     audio.Region
	LastError  error
}

type Option func(*Session)

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) { s.log = l }
}

// WithNotify registers fn to receive a snapshot after every decode result
// that was applied. Stale results do not trigger it. fn runs on the decode
// goroutine.
func WithNotify(fn func(Snapshot)) Option {
	return func(s *Session) { s.notify = fn }
}

// Session is one editor: at most one decoded buffer and one region, replaced
// together. Imports run asynchronously; only the newest one can land.
type Session struct {
	id     string
	dec    Decoder
	log    logrus.FieldLogger
	notify func(Snapshot)

	mu      sync.Mutex
	state   State
	gen     uint64
	name    string
	buf     *audio.Buffer
	region  audio.Region
	lastErr error
	cancel  context.CancelFunc

	wg sync.WaitGroup
}

func New(dec Decoder, opts ...Option) *Session {
	s := &Session{
		id:  uuid.NewString(),
		dec: dec,
		log: logging.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.WithField("session", s.id)

	return s
}

func (s *Session) ID() string { return s.id }

// Import starts decoding a in the background and returns its generation.
// Any decode still running is cancelled and its result will be dropped.
// The current buffer stays in place until the new one lands.
func (s *Session) Import(ctx context.Context, a *asset.Asset) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	s.gen++
	gen := s.gen

	dctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = StateDecoding

	s.log.WithFields(logrus.Fields{"generation": gen, "asset": a.Name()}).Debug("import started")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		buf, err := s.dec.Decode(dctx, a)
		s.settle(gen, a.Name(), buf, err)
	}()

	return gen
}

func (s *Session) settle(gen uint64, name string, buf *audio.Buffer, err error) {
	s.mu.Lock()

	log := s.log.WithFields(logrus.Fields{"generation": gen, "asset": name})

	if current := s.gen; gen != current {
		s.mu.Unlock()
		log.WithField("current", current).Debug("discarding stale decode")
		return
	}

	s.cancel = nil

	if err != nil {
		s.lastErr = err
		if s.buf != nil {
			s.state = StateReady
		} else {
			s.state = StateError
		}
		log.WithError(err).Warn("decode failed")
	} else {
		s.name = name
		s.buf = buf
		s.region = audio.FullRegion(buf)
		s.lastErr = nil
		s.state = StateReady
		log.WithFields(logrus.Fields{
			"sample_rate": buf.SampleRate(),
			"frames":      buf.FrameCount(),
		}).Info("audio ready")
	}

	snap := s.snapshotLocked()
	s.mu.Unlock()

	if s.notify != nil {
		s.notify(snap)
	}
}

// Wait blocks until every started decode has returned.
func (s *Session) Wait() { s.wg.Wait() }

// SetRegion replaces the selection. The end is clamped to the buffer's
// duration and a negative start to zero; the clamped region is returned.
func (s *Session) SetRegion(r audio.Region) (audio.Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return audio.Region{}, fmt.Errorf("%w: state %s", ErrNotReady, s.state)
	}

	clamped, err := r.Clamp(s.buf.Duration())
	if err != nil {
		return s.region, err
	}

	s.region = clamped

	return clamped, nil
}

// CanExport reports whether Export would produce a file.
func (s *Session) CanExport() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return false
	}

	_, _, err := trim.Frames(s.buf, s.region)

	return err == nil
}

// Export encodes the current region. Session state is unchanged.
func (s *Session) Export() (*trim.File, error) {
	s.mu.Lock()
	if s.state != StateReady {
		state := s.state
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: state %s", ErrNotReady, state)
	}
	name, buf, region := s.name, s.buf, s.region
	s.mu.Unlock()

	f, err := trim.ExportFile(name, buf, region)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"asset": name, "region": region.String(), "frames": f.Frames}).Info("exported region")

	return f, nil
}

// Reset drops the buffer and cancels any running decode.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	s.gen++
	s.state = StateEmpty
	s.name = ""
	s.buf = nil
	s.region = audio.Region{}
	s.lastErr = nil

	s.log.WithField("generation", s.gen).Debug("reset")
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:         s.id,
		State:      s.state,
		Generation: s.gen,
		Asset:      s.name,
		Buffer:     s.buf,
		Region:     s.region,
		LastError:  s.lastErr,
	}
}
