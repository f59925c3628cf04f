package models

import (
	"time"

	"github.com/google/uuid"
)

// Message представляет сообщение между двумя пользователями
type Message struct {
	ID            uuid.UUID  `json:"id"`
	SenderID      uuid.UUID  `json:"sender_id"`
	ReceiverID    uuid.UUID  `json:"receiver_id"`
	SwapRequestID *uuid.UUID `json:"swap_request_id,omitempty"`
	Content       string     `json:"content"`
	IsRead        bool       `json:"is_read"`
	CreatedAt     time.Time  `json:"created_at"`

	// Дополнительные поля для API
	Sender *User `json:"sender,omitempty"`
}

// Conversation представляет переписку с одним собеседником,
// собранную из плоского списка сообщений
type Conversation struct {
	UserID      uuid.UUID `json:"user_id"` // собеседник
	Messages    []Message `json:"messages"`
	LastMessage *Message  `json:"last_message,omitempty"`
	UnreadCount int       `json:"unread_count"`

	// Дополнительные поля для API
	User *User `json:"user,omitempty"`
}
