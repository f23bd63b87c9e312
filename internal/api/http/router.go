package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MoniqueRon/esim-dashboard/internal/api/http/handlers"
	"github.com/MoniqueRon/esim-dashboard/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	ESIMs          *handlers.ESIMsHandler
	Account        *handlers.AccountHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything except /login and the health
// probes sits behind the session token check.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/esims", cfg.ESIMs.List)
	protected.Get("/esims/:id", cfg.ESIMs.Detail)
	protected.Get("/esims/:id/location", cfg.ESIMs.Location)
	protected.Get("/esims/:id/usage", cfg.ESIMs.Usage)
	protected.Get("/account/credit", cfg.Account.Credit)
	protected.Post("/esims/:id/activate", cfg.ESIMs.Activate)
	protected.Post("/esims/:id/suspend", cfg.ESIMs.Suspend)
}
