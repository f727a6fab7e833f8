package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mrdsaas/admin-console/internal/api/handler"
	"github.com/mrdsaas/admin-console/internal/api/middleware"
	"github.com/mrdsaas/admin-console/internal/core/service"
	"github.com/mrdsaas/admin-console/internal/infrastructure/backend"
	"github.com/mrdsaas/admin-console/internal/infrastructure/config"
	"github.com/mrdsaas/admin-console/internal/infrastructure/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, logger zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Dependencies ---
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	authAPI := backend.NewAuthAPI(client)
	caAPI := backend.NewCAAccountAPI(client)
	store := session.NewStore(rdb, cfg.Session.TTL)
	sessions := service.NewSessionService(authAPI, store, logger)
	manager := service.NewCAManager(caAPI, logger)

	cookie := handler.CookieSettings{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
		TTL:    cfg.Session.TTL,
	}
	loginHandler := handler.NewLoginHandler(sessions, cookie)
	caHandler := handler.NewCAHandler(manager)
	guard := middleware.Session(sessions, cfg.Session.CookieName)

	// --- Auth routes ---
	e.GET("/login", loginHandler.Show)
	e.POST("/login", loginHandler.Submit)
	e.POST("/logout", loginHandler.Logout)

	// --- Dashboard routes (session required) ---
	dashboard := e.Group("/dashboard", guard)
	dashboard.GET("", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/dashboard/ca")
	})
	dashboard.GET("/ca", caHandler.List)
	dashboard.GET("/ca/new", caHandler.NewForm)
	dashboard.POST("/ca/new", caHandler.Create)
	dashboard.GET("/ca/:id/edit", caHandler.EditForm)
	dashboard.POST("/ca/:id/edit", caHandler.Update)
	dashboard.POST("/ca/:id/status", caHandler.ToggleStatus)
	dashboard.GET("/ca/:id/delete", caHandler.ConfirmDelete)
	dashboard.POST("/ca/:id/delete", caHandler.Delete)

	// --- Static assets ---
	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))

	// --- Health probes and metrics (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// Everything else, including the bare root, lands on the login screen.
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/login")
	})
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/login")
	})

	return e, nil
}
