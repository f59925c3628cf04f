package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы вещи
const (
	ItemStatusAvailable = "available"
	ItemStatusPending   = "pending"
	ItemStatusSwapped   = "swapped"
	ItemStatusRejected  = "rejected"
)

// Состояния вещи
const (
	ConditionNew     = "new"
	ConditionLikeNew = "like_new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
)

// Item представляет вещь, выставленную на обмен
type Item struct {
	ID          uuid.UUID `json:"id"`
	UploaderID  uuid.UUID `json:"uploader_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Size        string    `json:"size"`
	Condition   string    `json:"condition"` // new, like_new, good, fair
	Tags        []string  `json:"tags"`
	PointValue  int       `json:"point_value"`
	Status      string    `json:"status"` // available, pending, swapped, rejected
	Approved    bool      `json:"approved"`
	UploadDate  time.Time `json:"upload_date"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Дополнительные поля для API
	Uploader *User `json:"uploader,omitempty"`
}

// ItemFilter задает параметры поиска по каталогу вещей
type ItemFilter struct {
	Search     string // подстрока в названии, описании или тегах
	Category   string
	PublicOnly bool // только одобренные и доступные вещи
}

// ItemUpdate перечисляет поля вещи, которые может изменить владелец
type ItemUpdate struct {
	Title       *string
	Description *string
	Images      []string
	Category    *string
	Type        *string
	Size        *string
	Condition   *string
	Tags        []string
	PointValue  *int
}

// ValidCondition проверяет допустимость состояния вещи
func ValidCondition(condition string) bool {
	switch condition {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair:
		return true
	}
	return false
}
