package auth

import (
	"github.com/gofiber/fiber/v3"

	"github.com/himmat404/odoo-hackathon/internal/middleware"
)

// SetupRoutes регистрирует маршруты в Fiber
func (s *AuthService) SetupRoutes(app *fiber.App) {
	authMiddleware := middleware.AuthMiddleware(s.jwtService)

	app.Post("/api/auth/login", s.LoginHandler)
	app.Post("/api/auth/signup", s.SignupHandler)

	// Защищенные маршруты (требуют авторизации)
	app.Post("/api/auth/logout", s.LogoutHandler, authMiddleware)
	app.Get("/api/profile", s.ProfileHandler, authMiddleware)
	app.Put("/api/profile", s.UpdateProfileHandler, authMiddleware)
}
