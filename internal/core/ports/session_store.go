package ports

import (
	"context"
	"time"

	"github.com/senabank/operator-console/internal/core/domain"
)

// SessionStore keeps established sessions for the lifetime of a visit.
// Get returns domain.ErrSessionNotFound for unknown or expired ids.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
