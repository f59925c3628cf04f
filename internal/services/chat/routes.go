package chat

import (
	"github.com/gofiber/fiber/v3"

	"github.com/himmat404/odoo-hackathon/internal/middleware"
)

// SetupRoutes настраивает маршруты для API переписки
func (s *ChatService) SetupRoutes(app *fiber.App) {
	// Группа для API переписки
	api := app.Group("/api/chats")

	// Защищенные маршруты (требуют авторизации)
	api.Use(middleware.AuthMiddleware(s.jwtService))

	api.Get("/", s.GetConversations)
	api.Get("/:userId/messages", s.GetConversationMessages)
	api.Post("/:userId/messages", s.SendMessage)
	api.Put("/messages/:id/read", s.MarkMessageRead)
}
