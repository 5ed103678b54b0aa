package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/senabank/operator-console/internal/api/middleware"
	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/service"
)

// ctxSession extracts the session and workspace injected by the Session
// middleware. Both must be present; a route mounted without the middleware
// is refused rather than served anonymously.
func ctxSession(c echo.Context) (domain.Session, *service.Workspace, error) {
	session, ok := c.Get(middleware.SessionKey).(domain.Session)
	if !ok || !session.Active() {
		return domain.Session{}, nil, fmt.Errorf("%w: missing session", domain.ErrUnauthorized)
	}
	ws, ok := c.Get(middleware.WorkspaceKey).(*service.Workspace)
	if !ok || ws == nil {
		return domain.Session{}, nil, fmt.Errorf("%w: missing workspace", domain.ErrUnauthorized)
	}
	return session, ws, nil
}
