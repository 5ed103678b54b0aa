package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/senabank/operator-console/internal/core/domain"
)

// RBAC lets the request through when the session holds any of the given
// roles. Must run after Session.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get(SessionKey).(domain.Session)
			if !ok {
				return fmt.Errorf("%w: no session in context", domain.ErrUnauthorized)
			}
			for _, r := range allowedRoles {
				if session.HasRole(r) {
					return next(c)
				}
			}
			return fmt.Errorf("%w: role required: %v", domain.ErrUnauthorized, allowedRoles)
		}
	}
}
