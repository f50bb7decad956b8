package routes

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/pbk69220/tournoi-football-inscription2/config"
	"github.com/pbk69220/tournoi-football-inscription2/handlers"
	"github.com/pbk69220/tournoi-football-inscription2/middlewares"
	"github.com/pbk69220/tournoi-football-inscription2/services"
)

// RegisterRoutes wires all HTTP routes.
func RegisterRoutes(e *echo.Echo, cfg *config.Config, db *gorm.DB) {
	svc := services.NewRegistrationService(db)
	gate := middlewares.NewAdminGate(cfg.AdminPassword, cfg.AdminPasswordHash, cfg.JWTSecret)

	reg := handlers.NewRegistrationHandler(svc)
	auth := handlers.NewAuthHandler(gate)
	export := handlers.NewExportHandler(svc)

	api := e.Group("/api")

	// ===== Public =====
	api.GET("/registrations", reg.List)
	api.POST("/registrations", reg.Create)
	api.GET("/stats", reg.Stats)
	api.GET("/health", handlers.Health)
	api.POST("/admin/login", auth.AdminLogin)

	// ===== Admin (shared-secret gate) =====
	adminMW := gate.Require()
	api.GET("/registrations/admin/full", reg.ListFull, adminMW)
	api.GET("/registrations/admin/export", export.Export, adminMW)
	api.PUT("/registrations/:id", reg.Update, adminMW)
	api.DELETE("/registrations/:id", reg.Delete, adminMW)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	registerStatic(e, cfg)
}

// registerStatic serves the public assets and the built SPA. Any path the
// router does not know falls back to the SPA's index.html.
func registerStatic(e *echo.Echo, cfg *config.Config) {
	skipper := func(c echo.Context) bool {
		p := c.Request().URL.Path
		return strings.HasPrefix(p, "/api") || p == "/metrics"
	}
	if cfg.PublicDir != "" {
		e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Skipper: skipper,
			Root:    cfg.PublicDir,
		}))
	}
	if cfg.DistDir != "" {
		e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Skipper: skipper,
			Root:    cfg.DistDir,
			HTML5:   true,
		}))
	}
}
