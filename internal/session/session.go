package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/himmat404/odoo-hackathon/internal/models"
)

// ErrNoSession возвращается, когда сохраненной сессии нет
var ErrNoSession = errors.New("сохраненная сессия не найдена")

// Store сохраняет запись вошедшего пользователя в локальный файл.
// Это единственное состояние, переживающее перезапуск приложения.
type Store struct {
	path string
}

// NewStore создает файловое хранилище сессии
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save записывает пользователя в слот сессии
func (s *Store) Save(user *models.UserProfile) error {
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("сериализация сессии: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("создание каталога сессии: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("запись сессии: %w", err)
	}
	return nil
}

// Load читает пользователя из слота сессии
func (s *Store) Load() (*models.UserProfile, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("чтение сессии: %w", err)
	}

	var user models.UserProfile
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("разбор сессии: %w", err)
	}
	return &user, nil
}

// Clear удаляет слот сессии. Отсутствие слота не считается ошибкой.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("удаление сессии: %w", err)
	}
	return nil
}
