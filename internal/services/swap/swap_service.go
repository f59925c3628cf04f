package swap

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/config"
	"github.com/himmat404/odoo-hackathon/internal/models"
	"github.com/himmat404/odoo-hackathon/internal/store"
	"github.com/himmat404/odoo-hackathon/internal/utils"
)

// SwapService представляет сервис для работы с обменами
type SwapService struct {
	cfg        *config.Config
	store      *store.Store
	jwtService *utils.JWTService
}

// NewSwapService создает новый экземпляр SwapService
func NewSwapService(cfg *config.Config, st *store.Store) *SwapService {
	return &SwapService{
		cfg:        cfg,
		store:      st,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

// CreateSwap создает новую заявку на обмен
func (s *SwapService) CreateSwap(c fiber.Ctx) error {
	requesterID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	var requestData struct {
		ItemID        string `json:"item_id"`
		OfferedItemID string `json:"offered_item_id"`
		PointsOffered int    `json:"points_offered"`
		Message       string `json:"message"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if requestData.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Необходимо указать ID вещи для обмена"})
	}

	itemID, err := uuid.Parse(requestData.ItemID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID вещи"})
	}

	var offeredItemID *uuid.UUID
	if requestData.OfferedItemID != "" {
		id, err := uuid.Parse(requestData.OfferedItemID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID предлагаемой вещи"})
		}
		offeredItemID = &id
	}

	swap, err := s.store.CreateSwapRequest(requesterID, itemID, offeredItemID, requestData.PointsOffered, requestData.Message)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, store.ErrOwnItem):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Вы не можете предложить обмен на собственную вещь"})
		case errors.Is(err, store.ErrNotItemOwner):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Вы не можете предложить чужую вещь для обмена"})
		case errors.Is(err, store.ErrItemUnavailable):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Вещь недоступна для обмена"})
		case errors.Is(err, store.ErrDuplicateRequest):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Такая заявка на обмен уже существует"})
		case errors.Is(err, store.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Ошибка создания заявки на обмен: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось создать заявку на обмен"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"swap":    swap,
		"message": "Заявка на обмен успешно создана",
	})
}

// GetMySwaps возвращает список входящих и исходящих заявок на обмен
func (s *SwapService) GetMySwaps(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	// Направление и статус выборки
	direction := c.Query("type", store.SwapDirectionAll) // all, incoming, outgoing
	status := c.Query("status", "")                      // pending, accepted, rejected, completed

	swaps := s.store.ListSwapRequests(userID, direction, status)
	for i := range swaps {
		s.attachDetails(&swaps[i])
	}

	return c.JSON(fiber.Map{
		"swaps": swaps,
		"count": len(swaps),
	})
}

// AcceptSwap принимает заявку. Только владелец вещи может принять
// заявку на нее.
func (s *SwapService) AcceptSwap(c fiber.Ctx) error {
	userID, swap, errResp := s.loadSwapForUpdate(c)
	if errResp != nil {
		return errResp(c)
	}

	if swap.ItemOwnerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Только владелец вещи может принять заявку"})
	}

	// Тело с ответным сообщением необязательно
	var requestData struct {
		Response string `json:"response"`
	}
	_ = c.Bind().Body(&requestData)

	updated, err := s.store.AcceptSwapRequest(swap.ID, requestData.Response)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidTransition):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Заявка уже обработана"})
		case errors.Is(err, store.ErrItemUnavailable):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Вещь уже участвует в другом обмене"})
		case errors.Is(err, store.ErrInsufficientPoints):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "У заявителя недостаточно баллов"})
		}
		log.Printf("Ошибка принятия заявки: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось принять заявку"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"swap":    updated,
		"message": "Заявка на обмен принята",
	})
}

// RejectSwap отклоняет заявку. Только владелец вещи может отклонить
// заявку на нее.
func (s *SwapService) RejectSwap(c fiber.Ctx) error {
	userID, swap, errResp := s.loadSwapForUpdate(c)
	if errResp != nil {
		return errResp(c)
	}

	if swap.ItemOwnerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Только владелец вещи может отклонить заявку"})
	}

	// Тело с ответным сообщением необязательно
	var requestData struct {
		Response string `json:"response"`
	}
	_ = c.Bind().Body(&requestData)

	updated, err := s.store.RejectSwapRequest(swap.ID, requestData.Response)
	if err != nil {
		if errors.Is(err, store.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Заявка уже обработана"})
		}
		log.Printf("Ошибка отклонения заявки: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось отклонить заявку"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"swap":    updated,
		"message": "Заявка на обмен отклонена",
	})
}

// CompleteSwap завершает принятую заявку. Завершить обмен может любая
// из сторон.
func (s *SwapService) CompleteSwap(c fiber.Ctx) error {
	userID, swap, errResp := s.loadSwapForUpdate(c)
	if errResp != nil {
		return errResp(c)
	}

	if swap.ItemOwnerID != userID && swap.RequesterID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Завершить обмен может только его участник"})
	}

	updated, err := s.store.CompleteSwapRequest(swap.ID)
	if err != nil {
		if errors.Is(err, store.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Завершить можно только принятую заявку"})
		}
		log.Printf("Ошибка завершения обмена: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось завершить обмен"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"swap":    updated,
		"message": "Обмен завершен",
	})
}

// RedeemWithPoints выкупает вещь за баллы. Выкуп проходит через общий
// жизненный цикл заявки, поэтому вещь сразу становится недоступной.
func (s *SwapService) RedeemWithPoints(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	var requestData struct {
		ItemID string `json:"item_id"`
	}
	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	itemID, err := uuid.Parse(requestData.ItemID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID вещи"})
	}

	swap, err := s.store.RedeemWithPoints(userID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, store.ErrInsufficientPoints):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Недостаточно баллов для выкупа"})
		case errors.Is(err, store.ErrOwnItem):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Вы не можете выкупить собственную вещь"})
		case errors.Is(err, store.ErrItemUnavailable):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Вещь недоступна для выкупа"})
		case errors.Is(err, store.ErrDuplicateRequest):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "У вас уже есть заявка на эту вещь"})
		}
		log.Printf("Ошибка выкупа вещи: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось выкупить вещь"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"swap":    swap,
		"message": "Вещь успешно выкуплена за баллы. Свяжитесь с владельцем для передачи.",
	})
}

// loadSwapForUpdate извлекает ID пользователя и заявку из запроса.
// При ошибке возвращает готовый обработчик ответа.
func (s *SwapService) loadSwapForUpdate(c fiber.Ctx) (uuid.UUID, *models.SwapRequest, func(fiber.Ctx) error) {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return uuid.Nil, nil, func(c fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
		}
	}

	swapID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, nil, func(c fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID заявки"})
		}
	}

	swap, err := s.store.GetSwapRequest(swapID)
	if err != nil {
		return uuid.Nil, nil, func(c fiber.Ctx) error {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Заявка на обмен не найдена"})
		}
	}

	return userID, swap, nil
}

// attachDetails добавляет к заявке информацию о вещи и участниках
func (s *SwapService) attachDetails(swap *models.SwapRequest) {
	if item, err := s.store.GetItem(swap.ItemID); err == nil {
		swap.Item = item
	}
	if profile, err := s.store.GetProfile(swap.RequesterID); err == nil {
		swap.Requester = profile.Summary()
	}
	if profile, err := s.store.GetProfile(swap.ItemOwnerID); err == nil {
		swap.ItemOwner = profile.Summary()
	}
}
