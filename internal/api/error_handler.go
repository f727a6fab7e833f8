package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mrdsaas/admin-console/internal/core/domain"
)

// errorView feeds the error template; the layout fields are present so the
// shared chrome renders without an operator or flash.
type errorView struct {
	Title    string
	Operator *domain.Profile
	Flash    *struct{}
	Message  string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Routes session failures and unknown paths back to the login screen.
//   - Logs unexpected errors internally without leaking details to the page.
//   - Renders a consistent error page for everything else.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, toLogin := resolveError(err, log, c)
		if toLogin {
			_ = c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		if renderErr := c.Render(code, "error", errorView{Title: "Error", Message: msg}); renderErr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (code int, msg string, toLogin bool) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			// Any unmatched path routes to the login screen.
			return 0, "", true
		}
		return he.Code, fmt.Sprintf("%v", he.Message), false
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
		return 0, "", true
	case errors.Is(err, domain.ErrCANotFound):
		return http.StatusNotFound, "CA account not found", false
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", false
	}

	// Unexpected error: log the real cause, show a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "An unexpected error occurred. Please try again.", false
}
