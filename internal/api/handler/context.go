package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrdsaas/admin-console/internal/core/domain"
)

// SessionKey is the echo context key under which the session guard
// middleware stores the resolved session.
const SessionKey = "session"

// ctxSession extracts the session injected by the guard middleware. Its
// presence proves the guard ran; a guarded handler reached without one is a
// wiring bug, reported as 401 rather than a panic.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get(SessionKey).(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}
