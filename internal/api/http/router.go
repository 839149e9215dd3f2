package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spitlabs/lostfound-service/internal/api/http/handlers"
	"github.com/spitlabs/lostfound-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Items          *handlers.ItemsHandler
	Claims         *handlers.ClaimsHandler
	Notifications  *handlers.NotificationsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/register", cfg.Users.Register)
	api.Post("/login", cfg.Users.Login)
	api.Get("/locations", cfg.Items.Locations)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/logout", cfg.Users.Logout)

	protected.Get("/items", cfg.Items.List)
	protected.Post("/items", cfg.Items.Create)
	protected.Delete("/items/:id", cfg.Items.Delete)
	protected.Post("/items/:itemId/resolve", cfg.Items.Resolve)
	protected.Get("/myposts/:userId", cfg.Items.MyPosts)

	protected.Post("/claims", cfg.Claims.Submit)
	protected.Get("/items/:itemId/claims", cfg.Claims.ListForItem)
	protected.Post("/claims/:claimId/approve", cfg.Claims.Approve)
	protected.Post("/claims/:claimId/reject", cfg.Claims.Reject)

	protected.Get("/notifications", cfg.Notifications.List)

	admin := protected.Group("/admin", auth.RequireAdmin())
	admin.Get("/stats", cfg.Admin.Stats)
	admin.Get("/items", cfg.Admin.Items)
	admin.Get("/claims", cfg.Admin.Claims)
	admin.Get("/users", cfg.Admin.Users)
	admin.Get("/metrics", cfg.Admin.Metrics)
}
