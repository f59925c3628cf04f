package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет минимальную информацию о пользователе для API
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      string    `json:"role,omitempty"`
}

// UserProfile представляет полный профиль пользователя.
// Поле Points — кэш баланса: хранилище переписывает его суммой
// журнала баллов при каждой новой записи, вручную оно не меняется.
type UserProfile struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Points             int       `json:"points"`
	Role               string    `json:"role"` // user, admin
	AvatarURL          string    `json:"avatar_url,omitempty"`
	Bio                string    `json:"bio,omitempty"`
	Location           string    `json:"location,omitempty"`
	FavoriteCategories []string  `json:"favorite_categories"`
	TotalSwaps         int       `json:"total_swaps"`
	Rating             float64   `json:"rating"`
	ReviewCount        int       `json:"review_count"`
	Badges             []string  `json:"badges"`
	IsVerified         bool      `json:"is_verified"`
	JoinedDate         time.Time `json:"joined_date"`
	LastActive         time.Time `json:"last_active"`
}

// ProfileUpdate перечисляет поля профиля, которые пользователь
// может изменить сам
type ProfileUpdate struct {
	Name               *string
	AvatarURL          *string
	Bio                *string
	Location           *string
	FavoriteCategories []string
}

// Summary возвращает краткую информацию о пользователе для вложенных
// полей API
func (p *UserProfile) Summary() *User {
	return &User{
		ID:        p.ID,
		Name:      p.Name,
		AvatarURL: p.AvatarURL,
		Role:      p.Role,
	}
}
