package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы заявки на обмен
const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusRejected  = "rejected"
	SwapStatusCompleted = "completed"
)

// SwapRequest представляет заявку на обмен вещи
type SwapRequest struct {
	ID            uuid.UUID  `json:"id"`
	RequesterID   uuid.UUID  `json:"requester_id"`
	ItemID        uuid.UUID  `json:"item_id"`
	ItemOwnerID   uuid.UUID  `json:"item_owner_id"`
	OfferedItemID *uuid.UUID `json:"offered_item_id,omitempty"`
	PointsOffered int        `json:"points_offered,omitempty"`
	Status        string     `json:"status"` // pending, accepted, rejected, completed
	Message       string     `json:"message"`
	Response      string     `json:"response,omitempty"`
	CreatedDate   time.Time  `json:"created_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Дополнительные поля для API
	Item      *Item `json:"item,omitempty"`
	Requester *User `json:"requester,omitempty"`
	ItemOwner *User `json:"item_owner,omitempty"`
}
