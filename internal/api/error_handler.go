package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/senabank/operator-console/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders every failure as the plain-text invalid-info message with 400,
//     so callers cannot tell an unauthorized command from a rejected one.
//   - Keeps router 404/405 responses so unknown paths stay distinguishable.
//   - Logs the real cause internally.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := resolveError(err, log, c)
		if code != http.StatusBadRequest {
			_ = c.String(code, http.StatusText(code))
			return
		}
		_ = c.String(code, domain.InvalidInfoMessage)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return he.Code
		}
		log.Debug().Err(err).Str("path", c.Path()).Msg("request rejected")
		return http.StatusBadRequest
	}

	if !isDomainError(err) {
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
		return http.StatusBadRequest
	}

	log.Warn().
		Err(err).
		Str("failure", domain.Classify(err).String()).
		Str("path", c.Path()).
		Msg("request refused")
	return http.StatusBadRequest
}

func isDomainError(err error) bool {
	for _, target := range []error{
		domain.ErrUnauthorized,
		domain.ErrInvalidInput,
		domain.ErrRemoteRejected,
		domain.ErrSessionNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
