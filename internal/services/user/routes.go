package user

import (
	"github.com/gofiber/fiber/v3"

	"github.com/himmat404/odoo-hackathon/internal/middleware"
)

// SetupRoutes настраивает маршруты для API профилей
func (s *UserService) SetupRoutes(app *fiber.App) {
	authMiddleware := middleware.AuthMiddleware(s.jwtService)

	app.Get("/api/users/:id", s.GetUser)
	app.Get("/api/dashboard", s.GetDashboard, authMiddleware)
}
