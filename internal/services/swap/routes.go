package swap

import (
	"github.com/gofiber/fiber/v3"

	"github.com/himmat404/odoo-hackathon/internal/middleware"
)

// SetupRoutes настраивает маршруты для API обменов
func (s *SwapService) SetupRoutes(app *fiber.App) {
	// Группа для API обменов
	api := app.Group("/api/swaps")

	// Защищенные маршруты (требуют авторизации)
	api.Use(middleware.AuthMiddleware(s.jwtService))

	api.Post("/", s.CreateSwap)
	api.Get("/", s.GetMySwaps)
	api.Post("/redeem", s.RedeemWithPoints)
	api.Put("/:id/accept", s.AcceptSwap)
	api.Put("/:id/reject", s.RejectSwap)
	api.Put("/:id/complete", s.CompleteSwap)
}
