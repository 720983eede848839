package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/toy-store/internal/api/http/handlers"
	"github.com/spec-kit/toy-store/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Toys           *handlers.ToysHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	toys := app.Group("/toys")
	toys.Get("/", cfg.Toys.List)
	toys.Get("/search", cfg.Toys.Search)
	toys.Get("/category/:catName", cfg.Toys.ByCategory)
	toys.Get("/single/:id", cfg.Toys.Single)
	toys.Get("/price", cfg.Toys.ByPrice)
	toys.Get("/count", cfg.Toys.Count)
	toys.Post("/", cfg.AuthMiddleware.Handle, cfg.Toys.Create)
	toys.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Toys.Update)
	toys.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Toys.Delete)

	users := app.Group("/users")
	users.Get("/", cfg.Users.Index)
	users.Get("/userInfo", cfg.AuthMiddleware.Handle, cfg.Users.UserInfo)
	users.Post("/", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)
}
