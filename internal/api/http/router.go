package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Catalog        *handlers.CatalogHandler
	Tickets        *handlers.TicketsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Paths follow the storefront and
// admin-console contract.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Public
	app.Post("/register", cfg.Auth.Register)
	app.Post("/login", cfg.Auth.Login)
	app.Post("/loginadmin", cfg.Auth.LoginAdmin)
	app.Get("/products", cfg.Catalog.ListProducts)

	// Shopper
	shopper := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireShopper())
	shopper.Get("/profile", cfg.Auth.Profile)

	// Admin console
	admin := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/inventory", cfg.Catalog.ListInventory)
	admin.Post("/inventory/add", cfg.Catalog.AddProduct)
	admin.Get("/customers", cfg.Admin.ListCustomers)
	admin.Get("/orders/summary", cfg.Admin.OrderSummary)
	admin.Get("/tickets", cfg.Tickets.ListOpen)
	admin.Post("/tickets/:id/close", cfg.Tickets.Close)
}
