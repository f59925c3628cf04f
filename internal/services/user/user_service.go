package user

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/config"
	"github.com/himmat404/odoo-hackathon/internal/models"
	"github.com/himmat404/odoo-hackathon/internal/store"
	"github.com/himmat404/odoo-hackathon/internal/utils"
)

// UserService представляет сервис для работы с профилями пользователей
type UserService struct {
	cfg        *config.Config
	store      *store.Store
	jwtService *utils.JWTService
}

// NewUserService создает новый экземпляр UserService
func NewUserService(cfg *config.Config, st *store.Store) *UserService {
	return &UserService{
		cfg:        cfg,
		store:      st,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

// GetUser возвращает публичный профиль пользователя
func (s *UserService) GetUser(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	profile, err := s.store.GetProfile(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	// Email наружу не отдаем
	profile.Email = ""

	return c.JSON(fiber.Map{"user": profile})
}

// GetDashboard возвращает сводку для личного кабинета: вещи
// пользователя, его заявки, баланс и непрочитанные сообщения
func (s *UserService) GetDashboard(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	profile, err := s.store.GetProfile(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	items := s.store.ListUserItems(userID)
	swaps := s.store.ListSwapRequests(userID, store.SwapDirectionAll, "")

	pendingSwaps := 0
	for _, swap := range swaps {
		if swap.Status == models.SwapStatusPending {
			pendingSwaps++
		}
	}

	return c.JSON(fiber.Map{
		"user":  profile,
		"items": items,
		"swaps": swaps,
		"stats": fiber.Map{
			"balance":       profile.Points,
			"total_items":   len(items),
			"total_swaps":   profile.TotalSwaps,
			"pending_swaps": pendingSwaps,
			"unread_count":  s.store.UnreadCount(userID),
		},
	})
}
