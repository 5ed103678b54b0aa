// Package memory holds an in-process session store for single-instance and
// terminal use.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/ports"
)

type entry struct {
	session   domain.Session
	expiresAt time.Time
}

// SessionStore is a mutex-guarded map of sessions with lazy expiry.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]entry
	now      func() time.Time
}

var _ ports.SessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entry), now: time.Now}
}

func (s *SessionStore) Save(_ context.Context, session domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}
	s.sessions[session.ID] = entry{session: session, expiresAt: expiresAt}
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(s.now()) {
		delete(s.sessions, id)
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return e.session, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) Ping(context.Context) error { return nil }
