package main

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/himmat404/odoo-hackathon/internal/config"
	"github.com/himmat404/odoo-hackathon/internal/services/auth"
	"github.com/himmat404/odoo-hackathon/internal/services/chat"
	"github.com/himmat404/odoo-hackathon/internal/services/listing"
	"github.com/himmat404/odoo-hackathon/internal/services/points"
	"github.com/himmat404/odoo-hackathon/internal/services/swap"
	"github.com/himmat404/odoo-hackathon/internal/services/user"
	"github.com/himmat404/odoo-hackathon/internal/session"
	"github.com/himmat404/odoo-hackathon/internal/store"
)

func main() {
	// Загружаем конфигурацию
	cfg := config.LoadConfig()

	// Всё состояние живет в памяти и наполняется при старте
	st := store.NewSeeded()

	// Локальный слот сессии — единственное, что переживает перезапуск
	sessions := session.NewStore(cfg.SessionFile)
	if saved, err := sessions.Load(); err == nil {
		log.Printf("Найдена сохраненная сессия пользователя %s", saved.Email)
	}

	// Создаём экземпляр Fiber
	app := fiber.New(fiber.Config{
		AppName:      "ReWear API (MVP)",
		ErrorHandler: errorHandler,
	})

	// Добавляем middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: false,
	}))

	// Создаём сервисы
	authService := auth.NewAuthService(cfg, st, sessions)
	listingService := listing.NewListingService(cfg, st)
	swapService := swap.NewSwapService(cfg, st)
	chatService := chat.NewChatService(cfg, st)
	pointsService := points.NewPointsService(cfg, st)
	userService := user.NewUserService(cfg, st)

	// Регистрируем маршруты
	authService.SetupRoutes(app)
	listingService.SetupRoutes(app)
	swapService.SetupRoutes(app)
	chatService.SetupRoutes(app)
	pointsService.SetupRoutes(app)
	userService.SetupRoutes(app)

	// Запускаем сервер
	log.Printf("✅ ReWear API запущен на порту %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// errorHandler обрабатывает ошибки Fiber
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	// Проверяем, является ли ошибка из Fiber
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Отправляем ошибку в JSON
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
