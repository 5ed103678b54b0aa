package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/service"
)

// Context keys set by Session.
const (
	SessionKey   = "session"
	WorkspaceKey = "workspace"
)

// SessionResolver loads the session behind a console session id.
type SessionResolver interface {
	Resume(ctx context.Context, id string) (*service.LoginResult, error)
}

// Session resolves `Authorization: Bearer <session id>` and injects the
// session and its routed workspace into the context.
func Session(resolver SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := BearerID(c)
			if err != nil {
				return err
			}

			res, err := resolver.Resume(c.Request().Context(), id)
			if err != nil {
				return fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
			}

			c.Set(SessionKey, res.Session)
			c.Set(WorkspaceKey, res.Workspace)
			return next(c)
		}
	}
}

// BearerID extracts the session id from the Authorization header.
func BearerID(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("%w: missing authorization header", domain.ErrUnauthorized)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("%w: invalid authorization header", domain.ErrUnauthorized)
	}
	return strings.TrimSpace(parts[1]), nil
}
