package store

import (
	"sort"

	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/models"
)

// SendMessage отправляет сообщение другому пользователю. Сообщение
// создается непрочитанным и после создания не изменяется, кроме
// отметки о прочтении.
func (s *Store) SendMessage(senderID, receiverID uuid.UUID, swapRequestID *uuid.UUID, content string) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findProfile(senderID) == nil || s.findProfile(receiverID) == nil {
		return nil, ErrUserNotFound
	}
	if senderID == receiverID {
		return nil, ErrSelfMessage
	}
	if content == "" {
		return nil, ErrEmptyField
	}
	if swapRequestID != nil && s.findSwap(*swapRequestID) == nil {
		return nil, ErrSwapNotFound
	}

	msg := &models.Message{
		ID:            uuid.New(),
		SenderID:      senderID,
		ReceiverID:    receiverID,
		SwapRequestID: swapRequestID,
		Content:       content,
		IsRead:        false,
		CreatedAt:     s.now(),
	}
	s.messages = append(s.messages, msg)

	out := *msg
	return &out, nil
}

// MarkMessageRead отмечает сообщение прочитанным. Операция идемпотентна.
func (s *Store) MarkMessageRead(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, msg := range s.messages {
		if msg.ID == id {
			msg.IsRead = true
			return nil
		}
	}
	return ErrMessageNotFound
}

// MarkConversationRead отмечает прочитанными все сообщения переписки,
// адресованные пользователю. Возвращает число отмеченных сообщений.
func (s *Store) MarkConversationRead(userID, otherID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, msg := range s.messages {
		if msg.ReceiverID == userID && msg.SenderID == otherID && !msg.IsRead {
			msg.IsRead = true
			count++
		}
	}
	return count
}

// Conversations группирует сообщения пользователя по собеседникам.
// Каждое сообщение попадает ровно в одну переписку; внутри переписки
// сообщения идут по времени отправки, список переписок — по последнему
// сообщению, свежие первыми.
func (s *Store) Conversations(userID uuid.UUID) []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grouped := make(map[uuid.UUID][]models.Message)
	var order []uuid.UUID
	for _, msg := range s.messages {
		var otherID uuid.UUID
		switch userID {
		case msg.SenderID:
			otherID = msg.ReceiverID
		case msg.ReceiverID:
			otherID = msg.SenderID
		default:
			continue
		}
		if _, ok := grouped[otherID]; !ok {
			order = append(order, otherID)
		}
		grouped[otherID] = append(grouped[otherID], *msg)
	}

	result := make([]models.Conversation, 0, len(order))
	for _, otherID := range order {
		msgs := grouped[otherID]
		last := msgs[len(msgs)-1]
		unread := 0
		for _, msg := range msgs {
			if msg.ReceiverID == userID && !msg.IsRead {
				unread++
			}
		}
		result = append(result, models.Conversation{
			UserID:      otherID,
			User:        s.userSummary(otherID),
			Messages:    msgs,
			LastMessage: &last,
			UnreadCount: unread,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastMessage.CreatedAt.After(result[j].LastMessage.CreatedAt)
	})
	return result
}

// ConversationWith возвращает переписку с одним собеседником по
// времени отправки
func (s *Store) ConversationWith(userID, otherID uuid.UUID) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Message
	for _, msg := range s.messages {
		if (msg.SenderID == userID && msg.ReceiverID == otherID) ||
			(msg.SenderID == otherID && msg.ReceiverID == userID) {
			result = append(result, *msg)
		}
	}
	return result
}

// UnreadCount возвращает число непрочитанных сообщений пользователя
func (s *Store) UnreadCount(userID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, msg := range s.messages {
		if msg.ReceiverID == userID && !msg.IsRead {
			count++
		}
	}
	return count
}
