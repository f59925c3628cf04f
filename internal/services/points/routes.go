package points

import (
	"github.com/gofiber/fiber/v3"

	"github.com/himmat404/odoo-hackathon/internal/middleware"
)

// SetupRoutes настраивает маршруты для API баллов
func (s *PointsService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/points")
	api.Use(middleware.AuthMiddleware(s.jwtService))

	api.Get("/balance", s.GetBalance)
	api.Get("/transactions", s.GetTransactions)
}
