package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/config"
	"github.com/himmat404/odoo-hackathon/internal/models"
	"github.com/himmat404/odoo-hackathon/internal/session"
	"github.com/himmat404/odoo-hackathon/internal/store"
	"github.com/himmat404/odoo-hackathon/internal/utils"
)

// Пароли не хранятся: вход выполняется по общему демонстрационному
// паролю, как в исходном приложении
const mockPassword = "password"

// AuthService – структура для обработки авторизации
type AuthService struct {
	cfg        *config.Config
	store      *store.Store
	sessions   *session.Store
	jwtService *utils.JWTService
}

// NewAuthService – конструктор AuthService
func NewAuthService(cfg *config.Config, st *store.Store, sessions *session.Store) *AuthService {
	return &AuthService{
		cfg:        cfg,
		store:      st,
		sessions:   sessions,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

// GetJWTService возвращает сервис JWT для middleware
func (s *AuthService) GetJWTService() *utils.JWTService {
	return s.jwtService
}

// LoginHandler проверяет учетные данные, создает JWT и сохраняет
// сессию в локальный слот
func (s *AuthService) LoginHandler(c fiber.Ctx) error {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind().Body(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	profile, err := s.store.GetProfileByEmail(payload.Email)
	if err != nil || payload.Password != mockPassword {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Неверные учетные данные"})
	}

	token, err := s.jwtService.GenerateToken(profile.ID.String())
	if err != nil {
		log.Printf("Ошибка генерации JWT: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось создать токен"})
	}

	// Сохраняем запись вошедшего пользователя в локальный слот сессии
	if err := s.sessions.Save(profile); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  profile,
	})
}

// SignupHandler регистрирует нового пользователя с приветственным
// бонусом и сразу выполняет вход
func (s *AuthService) SignupHandler(c fiber.Ctx) error {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}

	if err := c.Bind().Body(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}
	if payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Пароль обязателен"})
	}

	profile, err := s.store.CreateUser(payload.Email, payload.Name)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, store.ErrEmptyField) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email и имя обязательны"})
		}
		log.Printf("Ошибка регистрации пользователя: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось создать пользователя"})
	}

	token, err := s.jwtService.GenerateToken(profile.ID.String())
	if err != nil {
		log.Printf("Ошибка генерации JWT: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось создать токен"})
	}

	if err := s.sessions.Save(profile); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  profile,
	})
}

// LogoutHandler очищает локальный слот сессии
func (s *AuthService) LogoutHandler(c fiber.Ctx) error {
	if err := s.sessions.Clear(); err != nil {
		log.Printf("Ошибка очистки сессии: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось завершить сессию"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// ProfileHandler возвращает профиль текущего пользователя
func (s *AuthService) ProfileHandler(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	profile, err := s.store.GetProfile(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"user": profile})
}

// UpdateProfileHandler изменяет профиль текущего пользователя.
// Разрешены только явно перечисленные поля: баланс и роль через этот
// маршрут изменить нельзя.
func (s *AuthService) UpdateProfileHandler(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("userID").(string))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	var payload struct {
		Name               *string  `json:"name"`
		AvatarURL          *string  `json:"avatar_url"`
		Bio                *string  `json:"bio"`
		Location           *string  `json:"location"`
		FavoriteCategories []string `json:"favorite_categories"`
	}

	if err := c.Bind().Body(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	profile, err := s.store.UpdateProfile(userID, models.ProfileUpdate{
		Name:               payload.Name,
		AvatarURL:          payload.AvatarURL,
		Bio:                payload.Bio,
		Location:           payload.Location,
		FavoriteCategories: payload.FavoriteCategories,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, store.ErrEmptyField) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Имя не может быть пустым"})
		}
		log.Printf("Ошибка обновления профиля: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось обновить профиль"})
	}

	return c.JSON(fiber.Map{"user": profile})
}
