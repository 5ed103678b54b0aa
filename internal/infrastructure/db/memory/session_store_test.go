package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/senabank/operator-console/internal/core/domain"
)

func TestSessionStore_SaveGetDelete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	session := domain.Establish("tok", []domain.Role{domain.RoleClerk})

	if err := store.Save(ctx, session, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Token != "tok" || !got.HasRole(domain.RoleClerk) {
		t.Fatalf("unexpected session %+v", got)
	}

	if err := store.Delete(ctx, session.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := store.Delete(ctx, session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	session := domain.Establish("tok", []domain.Role{domain.RoleManager})
	_ = store.Save(context.Background(), session, time.Minute)

	now = now.Add(2 * time.Minute)
	if _, err := store.Get(context.Background(), session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
}
