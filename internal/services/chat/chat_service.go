package chat

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/config"
	"github.com/himmat404/odoo-hackathon/internal/store"
	"github.com/himmat404/odoo-hackathon/internal/utils"
)

// ChatService представляет сервис для работы с перепиской
type ChatService struct {
	cfg        *config.Config
	store      *store.Store
	jwtService *utils.JWTService
}

// NewChatService создает новый экземпляр ChatService
func NewChatService(cfg *config.Config, st *store.Store) *ChatService {
	return &ChatService{
		cfg:        cfg,
		store:      st,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

// GetConversations возвращает переписки пользователя, сгруппированные
// по собеседникам, свежие первыми
func (s *ChatService) GetConversations(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	conversations := s.store.Conversations(userID)

	return c.JSON(fiber.Map{
		"conversations": conversations,
		"count":         len(conversations),
		"unread_total":  s.store.UnreadCount(userID),
	})
}

// GetConversationMessages возвращает переписку с одним собеседником.
// Открытие переписки отмечает прочитанными все адресованные
// пользователю сообщения в ней.
func (s *ChatService) GetConversationMessages(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID собеседника"})
	}

	// Сначала отмечаем прочитанное, чтобы ответ уже содержал отметки
	s.store.MarkConversationRead(userID, otherID)
	messages := s.store.ConversationWith(userID, otherID)

	return c.JSON(fiber.Map{
		"messages": messages,
		"count":    len(messages),
	})
}

// SendMessage отправляет сообщение собеседнику
func (s *ChatService) SendMessage(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID собеседника"})
	}

	var requestData struct {
		Content       string `json:"content"`
		SwapRequestID string `json:"swap_request_id"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if requestData.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Сообщение не может быть пустым"})
	}

	var swapRequestID *uuid.UUID
	if requestData.SwapRequestID != "" {
		id, err := uuid.Parse(requestData.SwapRequestID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID заявки"})
		}
		swapRequestID = &id
	}

	message, err := s.store.SendMessage(userID, otherID, swapRequestID, requestData.Content)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, store.ErrSelfMessage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Нельзя отправить сообщение самому себе"})
		case errors.Is(err, store.ErrSwapNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Ошибка отправки сообщения: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось отправить сообщение"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// MarkMessageRead отмечает одно сообщение прочитанным. Операция
// идемпотентна.
func (s *ChatService) MarkMessageRead(c fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID сообщения"})
	}

	if err := s.store.MarkMessageRead(messageID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}
