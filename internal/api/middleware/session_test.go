package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/service"
)

type stubResolver struct {
	sessions map[string]domain.Session
	gotID    string
}

func (s *stubResolver) Resume(_ context.Context, id string) (*service.LoginResult, error) {
	s.gotID = id
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &service.LoginResult{Session: session, Workspace: service.NewWorkspaces(nil).Clerk}, nil
}

func TestSession_ValidBearer(t *testing.T) {
	session := domain.Establish("ledger-token", []domain.Role{domain.RoleClerk})
	resolver := &stubResolver{sessions: map[string]domain.Session{session.ID: session}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+session.ID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(resolver)(func(c echo.Context) error {
		called = true
		got, ok := c.Get(SessionKey).(domain.Session)
		if !ok || got.ID != session.ID {
			t.Fatalf("session not set")
		}
		ws, ok := c.Get(WorkspaceKey).(*service.Workspace)
		if !ok || ws.Name() != service.WorkspaceClerk {
			t.Fatalf("workspace not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if resolver.gotID != session.ID {
		t.Fatalf("expected resolver to get %q, got %q", session.ID, resolver.gotID)
	}
}

func TestSession_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc"},
		{"empty bearer", "Bearer  "},
		{"unknown session", "Bearer does-not-exist"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			handler := Session(&stubResolver{})(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}
