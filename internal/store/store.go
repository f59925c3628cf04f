package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/models"
)

// Store хранит все коллекции приложения в памяти: вещи, заявки на
// обмен, сообщения, журнал баллов и профили пользователей.
// Единственный владелец состояния на процесс, все операции проходят
// под одним мьютексом. Ничего не сохраняется между запусками.
type Store struct {
	mu sync.RWMutex

	items        []*models.Item
	swaps        []*models.SwapRequest
	messages     []*models.Message
	transactions []*models.PointTransaction
	profiles     []*models.UserProfile

	now func() time.Time
}

// New создает пустое хранилище
func New() *Store {
	return &Store{now: time.Now}
}

// NewSeeded создает хранилище с демонстрационными данными
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}

// findProfile возвращает профиль по ID. Вызывается под мьютексом.
func (s *Store) findProfile(id uuid.UUID) *models.UserProfile {
	for _, p := range s.profiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// findItem возвращает вещь по ID. Вызывается под мьютексом.
func (s *Store) findItem(id uuid.UUID) *models.Item {
	for _, item := range s.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// findSwap возвращает заявку по ID. Вызывается под мьютексом.
func (s *Store) findSwap(id uuid.UUID) *models.SwapRequest {
	for _, swap := range s.swaps {
		if swap.ID == id {
			return swap
		}
	}
	return nil
}
