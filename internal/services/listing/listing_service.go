package listing

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

// ListingService представляет сервис для работы с каталогом вещей
type ListingService struct {
	cfg        *config.Config
	store      *store.Store
	jwtService *utils.JWTService
}

// NewListingService создает новый экземпляр ListingService
func NewListingService(cfg *config.Config, st *store.Store) *ListingService {
	return &ListingService{
		cfg:        cfg,
		store:      st,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

// CreateListing обрабатывает добавление новой вещи. Вещь попадает
// в каталог только после одобрения администратором.
func (s *ListingService) CreateListing(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	var requestData struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Images      []string `json:"images"`
		Category    string   `json:"category"`
		Type        string   `json:"type"`
		Size        string   `json:"size"`
		Condition   string   `json:"condition"`
		Tags        []string `json:"tags"`
		PointValue  int      `json:"point_value"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	// Валидация обязательных полей
	if requestData.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Название обязательно"})
	}
	if len(requestData.Images) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Добавьте хотя бы одно изображение"})
	}
	if requestData.PointValue <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Стоимость в баллах должна быть положительной"})
	}

	item, err := s.store.AddItem(userID, requestData.Title, requestData.Description,
		requestData.Images, requestData.Category, requestData.Type, requestData.Size,
		requestData.Condition, requestData.Tags, requestData.PointValue)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Ошибка добавления вещи: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось добавить вещь"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"item":    item,
		"message": "Вещь добавлена и ожидает модерации",
	})
}

// GetPublicListings возвращает каталог одобренных и доступных вещей
// с поиском по названию, описанию и тегам
func (s *ListingService) GetPublicListings(c fiber.Ctx) error {
	filter := models.ItemFilter{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		PublicOnly: true,
	}

	items := s.store.ListItems(filter)
	s.attachUploaders(items)

	return c.JSON(fiber.Map{
		"items": items,
		"count": len(items),
	})
}

// GetMyListings возвращает вещи текущего пользователя, включая
// неодобренные и отклоненные
func (s *ListingService) GetMyListings(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	items := s.store.ListUserItems(userID)
	return c.JSON(fiber.Map{
		"items": items,
		"count": len(items),
	})
}

// GetListing возвращает одну вещь по ID
func (s *ListingService) GetListing(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID вещи"})
	}

	item, err := s.store.GetItem(itemID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if profile, err := s.store.GetProfile(item.UploaderID); err == nil {
		item.Uploader = profile.Summary()
	}

	return c.JSON(fiber.Map{"item": item})
}

// UpdateListing изменяет вещь текущего пользователя
func (s *ListingService) UpdateListing(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID вещи"})
	}

	var requestData struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Images      []string `json:"images"`
		Category    *string  `json:"category"`
		Type        *string  `json:"type"`
		Size        *string  `json:"size"`
		Condition   *string  `json:"condition"`
		Tags        []string `json:"tags"`
		PointValue  *int     `json:"point_value"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	item, err := s.store.UpdateItem(itemID, userID, models.ItemUpdate{
		Title:       requestData.Title,
		Description: requestData.Description,
		Images:      requestData.Images,
		Category:    requestData.Category,
		Type:        requestData.Type,
		Size:        requestData.Size,
		Condition:   requestData.Condition,
		Tags:        requestData.Tags,
		PointValue:  requestData.PointValue,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, store.ErrNotItemOwner):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Вы не можете изменить чужую вещь"})
		case errors.Is(err, store.ErrItemUnavailable):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Вещь уже участвует в обмене"})
		case errors.Is(err, store.ErrEmptyField), errors.Is(err, store.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Ошибка обновления вещи: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось обновить вещь"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"item":    item,
	})
}

// GetPendingListings возвращает вещи, ожидающие модерации
func (s *ListingService) GetPendingListings(c fiber.Ctx) error {
	items := s.store.ListPendingItems()
	s.attachUploaders(items)

	return c.JSON(fiber.Map{
		"items": items,
		"count": len(items),
	})
}

// ApproveListing одобряет вещь при модерации
func (s *ListingService) ApproveListing(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID вещи"})
	}

	item, err := s.store.ApproveItem(itemID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"item":    item,
		"message": "Вещь одобрена",
	})
}

// RejectListing отклоняет вещь при модерации. Вещь не удаляется,
// а скрывается из каталога.
func (s *ListingService) RejectListing(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID вещи"})
	}

	item, err := s.store.RejectItem(itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemUnavailable) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Вещь уже участвует в обмене"})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"item":    item,
		"message": "Вещь отклонена",
	})
}

// attachUploaders добавляет к вещам краткую информацию о владельцах
func (s *ListingService) attachUploaders(items []models.Item) {
	for i := range items {
		if profile, err := s.store.GetProfile(items[i].UploaderID); err == nil {
			items[i].Uploader = profile.Summary()
		}
	}
}
