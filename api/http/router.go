package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maxim2210/chatter/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, profile *handlers.ProfileHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/signup", auth.Signup)
	a.Post("/login", auth.Login)
	a.Post("/logout", auth.Logout)

	// Profile mutation requires a verified session
	a.Put("/update-profile", authMW, profile.UpdateProfilePicture)
}
