package listing

import (
	"github.com/gofiber/fiber/v3"

	"github.com/himmat404/odoo-hackathon/internal/middleware"
)

// SetupRoutes настраивает маршруты для API каталога
func (s *ListingService) SetupRoutes(app *fiber.App) {
	authMiddleware := middleware.AuthMiddleware(s.jwtService)

	// Публичный каталог доступен без авторизации. Маршрут /my
	// регистрируется раньше /:id, иначе его перехватит параметр.
	app.Get("/api/listings", s.GetPublicListings)
	app.Get("/api/listings/my", s.GetMyListings, authMiddleware)
	app.Get("/api/listings/:id", s.GetListing)

	// Маршруты владельца вещи
	app.Post("/api/listings", s.CreateListing, authMiddleware)
	app.Put("/api/listings/:id", s.UpdateListing, authMiddleware)

	// Модерация доступна только администраторам
	admin := app.Group("/api/admin/listings")
	admin.Use(authMiddleware)
	admin.Use(middleware.AdminMiddleware(s.store))

	admin.Get("/", s.GetPendingListings)
	admin.Post("/:id/approve", s.ApproveListing)
	admin.Post("/:id/reject", s.RejectListing)
}
