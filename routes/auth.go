package routes

import (
	auth_handlers "anket.link/handlers/auth" // İsim çakışmasını önlemek için alias
	"anket.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerAuthRoutes /api/v1/user altındaki rotalar.
func registerAuthRoutes(router fiber.Router, deps *Dependencies) {
	authHandler := auth_handlers.NewAuthHandler(deps.Auth)

	userGroup := router.Group("/user")
	userGroup.Post("/create", authHandler.Register)
	userGroup.Post("/login", authHandler.Login)
	userGroup.Get("/", middlewares.RequireAuth(deps.Tokens), authHandler.Profile)
}
