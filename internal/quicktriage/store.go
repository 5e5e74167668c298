package quicktriage

import (
	"fmt"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// Store keeps quick-triage sessions in memory with TTL expiry.
// Abandoned sessions need no explicit cleanup; they simply expire.
type Store struct {
	engine   *Engine
	sessions *gocache.Cache
}

// NewStore creates a session store backed by the given engine.
func NewStore(engine *Engine, cfg model.SessionConfig) *Store {
	return &Store{
		engine:   engine,
		sessions: gocache.New(cfg.TTL, cfg.CleanupInterval),
	}
}

// Create starts a new session and returns it.
func (s *Store) Create() *model.QuickTriageSession {
	sess := s.engine.NewSession(uuid.NewString())
	s.sessions.SetDefault(sess.ID, sess)
	return sess
}

// Get returns the session with the given ID, or ErrSessionNotFound if
// it never existed or has expired.
func (s *Store) Get(id string) (*model.QuickTriageSession, error) {
	if v, found := s.sessions.Get(id); found {
		return v.(*model.QuickTriageSession), nil
	}
	return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
}

// Answer applies an answer to the stored session and returns its
// updated state. Terminal sessions are removed from the store; their
// result is returned one last time on the session itself.
func (s *Store) Answer(id string, answer bool) (*model.QuickTriageSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.engine.Answer(sess, answer); err != nil {
		return nil, err
	}
	if sess.Done() {
		s.sessions.Delete(id)
	} else {
		s.sessions.SetDefault(id, sess)
	}
	return sess, nil
}

// Reset restores the stored session to its initial state.
func (s *Store) Reset(id string) (*model.QuickTriageSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	s.engine.Reset(sess)
	s.sessions.SetDefault(id, sess)
	return sess, nil
}

// Delete discards the session. Missing sessions are not an error; the
// caller is abandoning state it no longer needs.
func (s *Store) Delete(id string) {
	s.sessions.Delete(id)
}
