package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrdsaas/admin-console/internal/api/handler"
	"github.com/mrdsaas/admin-console/internal/core/ports"
)

// Session guards dashboard routes: it resolves the session cookie and
// injects the session into the request context. Requests without a live
// session are sent back to the login screen, with the stale cookie cleared.
func Session(sessions ports.SessionService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			sess, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				c.SetCookie(&http.Cookie{
					Name:     cookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			c.Set(handler.SessionKey, sess)
			return next(c)
		}
	}
}
