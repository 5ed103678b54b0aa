package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated identity of an operator for the lifetime of a visit.
// It is never mutated after Establish.
type Session struct {
	ID       string    `json:"id"`
	Token    string    `json:"token"`
	Roles    []Role    `json:"roles"`
	IssuedAt time.Time `json:"issued_at"`

	effective map[Role]struct{}
}

// Establish builds a session from an opaque ledger token and the roles issued with it.
func Establish(token string, roles []Role) Session {
	return Restore(uuid.NewString(), token, roles, time.Now().UTC())
}

// Restore rebuilds a previously established session, e.g. after loading it from a store.
func Restore(id, token string, roles []Role, issuedAt time.Time) Session {
	issued := make([]Role, len(roles))
	copy(issued, roles)
	return Session{
		ID:        id,
		Token:     token,
		Roles:     issued,
		IssuedAt:  issuedAt,
		effective: expand(issued),
	}
}

// HasRole reports whether r is in the session's effective role set.
func (s Session) HasRole(r Role) bool {
	if s.effective == nil {
		s.effective = expand(s.Roles)
	}
	_, ok := s.effective[r]
	return ok
}

// Active reports whether the session carries at least one role.
func (s Session) Active() bool {
	return len(s.Roles) > 0
}
