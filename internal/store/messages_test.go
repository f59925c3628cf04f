package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/models"
)

// chatFixture создает трех пользователей и детерминированные часы
func chatFixture(t *testing.T) (*Store, *models.UserProfile, *models.UserProfile, *models.UserProfile) {
	t.Helper()
	s := New()

	clock := time.Date(2024, time.January, 20, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	alice, _ := s.CreateUser("alice@example.com", "Alice")
	bob, _ := s.CreateUser("bob@example.com", "Bob")
	carol, _ := s.CreateUser("carol@example.com", "Carol")
	return s, alice, bob, carol
}

func TestConversationPartition(t *testing.T) {
	s, alice, bob, carol := chatFixture(t)

	sent := []uuid.UUID{}
	for _, m := range []struct {
		from, to uuid.UUID
		text     string
	}{
		{alice.ID, bob.ID, "hi bob"},
		{bob.ID, alice.ID, "hi alice"},
		{carol.ID, alice.ID, "hello from carol"},
		{alice.ID, carol.ID, "hey carol"},
		{bob.ID, carol.ID, "not alice's message"},
	} {
		msg, err := s.SendMessage(m.from, m.to, nil, m.text)
		if err != nil {
			t.Fatalf("SendMessage: %v", err)
		}
		if m.from == alice.ID || m.to == alice.ID {
			sent = append(sent, msg.ID)
		}
	}

	conversations := s.Conversations(alice.ID)
	if len(conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(conversations))
	}

	// Каждое сообщение с участием Алисы попадает ровно в одну переписку
	seen := map[uuid.UUID]int{}
	total := 0
	for _, conv := range conversations {
		for _, msg := range conv.Messages {
			seen[msg.ID]++
			total++
		}
	}
	if total != len(sent) {
		t.Errorf("expected %d messages across conversations, got %d", len(sent), total)
	}
	for _, id := range sent {
		if seen[id] != 1 {
			t.Errorf("message %s appears %d times, want exactly 1", id, seen[id])
		}
	}
}

func TestConversationOrdering(t *testing.T) {
	s, alice, bob, carol := chatFixture(t)

	s.SendMessage(bob.ID, alice.ID, nil, "older thread")
	s.SendMessage(carol.ID, alice.ID, nil, "newer thread")

	conversations := s.Conversations(alice.ID)
	if len(conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(conversations))
	}
	// Список переписок упорядочен по последнему сообщению, свежие первыми
	if conversations[0].UserID != carol.ID {
		t.Errorf("expected Carol's conversation first, got %s", conversations[0].UserID)
	}

	// Новое сообщение в старой переписке поднимает ее наверх
	s.SendMessage(alice.ID, bob.ID, nil, "bump")
	conversations = s.Conversations(alice.ID)
	if conversations[0].UserID != bob.ID {
		t.Errorf("expected Bob's conversation first after bump, got %s", conversations[0].UserID)
	}

	// Внутри переписки сообщения идут по времени отправки
	msgs := conversations[0].Messages
	for i := 1; i < len(msgs); i++ {
		if msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt) {
			t.Errorf("messages out of order at %d", i)
		}
	}
}

func TestMarkMessageReadIdempotent(t *testing.T) {
	s, alice, bob, _ := chatFixture(t)

	msg, err := s.SendMessage(alice.ID, bob.ID, nil, "unread")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.IsRead {
		t.Error("new message must start unread")
	}

	if err := s.MarkMessageRead(msg.ID); err != nil {
		t.Fatalf("MarkMessageRead: %v", err)
	}
	// Повторная отметка не ошибка и ничего не меняет
	if err := s.MarkMessageRead(msg.ID); err != nil {
		t.Fatalf("MarkMessageRead (second call): %v", err)
	}

	if s.UnreadCount(bob.ID) != 0 {
		t.Errorf("expected 0 unread for bob, got %d", s.UnreadCount(bob.ID))
	}

	if err := s.MarkMessageRead(uuid.New()); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("unknown message: expected ErrMessageNotFound, got %v", err)
	}
}

func TestMarkConversationRead(t *testing.T) {
	s, alice, bob, carol := chatFixture(t)

	s.SendMessage(bob.ID, alice.ID, nil, "one")
	s.SendMessage(bob.ID, alice.ID, nil, "two")
	s.SendMessage(alice.ID, bob.ID, nil, "mine, bob's unread")
	s.SendMessage(carol.ID, alice.ID, nil, "other thread")

	if n := s.MarkConversationRead(alice.ID, bob.ID); n != 2 {
		t.Errorf("expected 2 messages marked, got %d", n)
	}
	// Отмечаются только адресованные пользователю сообщения этой переписки
	if s.UnreadCount(alice.ID) != 1 {
		t.Errorf("expected 1 unread left for alice, got %d", s.UnreadCount(alice.ID))
	}
	if s.UnreadCount(bob.ID) != 1 {
		t.Errorf("expected bob's unread untouched, got %d", s.UnreadCount(bob.ID))
	}

	if n := s.MarkConversationRead(alice.ID, bob.ID); n != 0 {
		t.Errorf("second call should mark nothing, got %d", n)
	}
}

func TestSendMessageValidation(t *testing.T) {
	s, alice, _, _ := chatFixture(t)

	if _, err := s.SendMessage(alice.ID, alice.ID, nil, "to myself"); !errors.Is(err, ErrSelfMessage) {
		t.Errorf("self message: expected ErrSelfMessage, got %v", err)
	}
	if _, err := s.SendMessage(alice.ID, uuid.New(), nil, "hi"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown receiver: expected ErrUserNotFound, got %v", err)
	}
	if _, err := s.SendMessage(alice.ID, alice.ID, nil, ""); err == nil {
		t.Error("empty content: expected error, got nil")
	}

	badSwap := uuid.New()
	bob, _ := s.CreateUser("bob2@example.com", "Bob")
	if _, err := s.SendMessage(alice.ID, bob.ID, &badSwap, "hi"); !errors.Is(err, ErrSwapNotFound) {
		t.Errorf("unknown swap reference: expected ErrSwapNotFound, got %v", err)
	}
}
