package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/senabank/operator-console/internal/api/middleware"
	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/service"
)

// Authenticator is the slice of service.AuthService the auth routes need.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*service.LoginResult, error)
	Logout(ctx context.Context, id string) error
}

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login authenticates an operator against the ledger and opens a console session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Operator credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {string}  string  "Invalid info entered."
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Session:   res.Session.ID,
		Workspace: res.Workspace.Name(),
		Commands:  res.Workspace.Commands(),
	})
}

// Logout destroys the caller's console session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      400   {string}  string  "Invalid info entered."
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	id, err := middleware.BearerID(c)
	if err != nil {
		return err
	}
	if err := h.auth.Logout(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// renderResult writes a dispatch result as text: the pretty-printed payload
// on success, the invalid-info message otherwise.
func renderResult(c echo.Context, res domain.Result) error {
	if res.OK() {
		return c.String(http.StatusOK, res.Render())
	}
	return c.String(http.StatusBadRequest, res.Render())
}
