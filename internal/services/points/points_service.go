package points

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/config"
	"github.com/himmat404/odoo-hackathon/internal/store"
	"github.com/himmat404/odoo-hackathon/internal/utils"
)

// PointsService представляет сервис для работы с журналом баллов
type PointsService struct {
	cfg        *config.Config
	store      *store.Store
	jwtService *utils.JWTService
}

// NewPointsService создает новый экземпляр PointsService
func NewPointsService(cfg *config.Config, st *store.Store) *PointsService {
	return &PointsService{
		cfg:        cfg,
		store:      st,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

// GetBalance возвращает баланс пользователя, выведенный из журнала
func (s *PointsService) GetBalance(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	balance, err := s.store.Balance(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"balance": balance})
}

// GetTransactions возвращает историю операций пользователя, новые первыми
func (s *PointsService) GetTransactions(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	transactions, err := s.store.ListTransactions(userID)
	if err != nil {
		log.Printf("Ошибка получения истории баллов: %v", err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"transactions": transactions,
		"count":        len(transactions),
	})
}
