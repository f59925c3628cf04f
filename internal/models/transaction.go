package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы операций с баллами
const (
	TransactionEarned = "earned"
	TransactionSpent  = "spent"
	TransactionBonus  = "bonus"
	TransactionRefund = "refund"
)

// PointTransaction представляет запись в журнале баллов.
// Журнал только пополняется, записи не изменяются и не удаляются.
type PointTransaction struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Type          string     `json:"type"` // earned, spent, bonus, refund
	Amount        int        `json:"amount"`
	Description   string     `json:"description"`
	RelatedItemID *uuid.UUID `json:"related_item_id,omitempty"`
	RelatedSwapID *uuid.UUID `json:"related_swap_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
