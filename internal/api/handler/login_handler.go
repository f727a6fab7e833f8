package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mrdsaas/admin-console/internal/api/metrics"
	"github.com/mrdsaas/admin-console/internal/core/ports"
	"github.com/mrdsaas/admin-console/internal/infrastructure/backend"
)

const loginFallbackMessage = "Invalid credentials"

// CookieSettings controls the session cookie the console issues.
type CookieSettings struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// LoginHandler renders the login screen and runs the login/logout flow.
type LoginHandler struct {
	sessions ports.SessionService
	cookie   CookieSettings
}

func NewLoginHandler(sessions ports.SessionService, cookie CookieSettings) *LoginHandler {
	return &LoginHandler{sessions: sessions, cookie: cookie}
}

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Show renders the login form.
func (h *LoginHandler) Show(c echo.Context) error {
	return c.Render(http.StatusOK, "login", loginPage{page: newPage(c, "Sign in", nil)})
}

// Submit exchanges the posted credentials for a session cookie and redirects
// to the operator's landing screen. Failures re-render the form with a
// dismissible inline message and allow retry.
func (h *LoginHandler) Submit(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.rejected(c, form.Email, "invalid login payload")
	}
	if err := c.Validate(&form); err != nil {
		return h.rejected(c, form.Email, err.Error())
	}

	id, landing, err := h.sessions.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return h.rejected(c, form.Email, loginErrorMessage(err))
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, landing)
}

// Logout clears the session unconditionally and routes back to the login
// screen. There is no remote call to fail.
func (h *LoginHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
		h.sessions.Logout(c.Request().Context(), cookie.Value)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *LoginHandler) rejected(c echo.Context, email, message string) error {
	return c.Render(http.StatusUnauthorized, "login", loginPage{
		page:  newPage(c, "Sign in", nil),
		Email: email,
		Error: message,
	})
}

// loginErrorMessage picks the message to surface: the backend-provided one
// when present, the transport error text otherwise, and a hardcoded fallback
// when the backend rejected without saying why.
func loginErrorMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return loginFallbackMessage
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return loginFallbackMessage
}
