package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/models"
)

// Приветственный бонус при регистрации
const welcomeBonus = 50

// CreateUser регистрирует нового пользователя и начисляет
// приветственный бонус в журнал баллов
func (s *Store) CreateUser(email, name string) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || name == "" {
		return nil, ErrEmptyField
	}
	for _, p := range s.profiles {
		if p.Email == email {
			return nil, ErrEmailTaken
		}
	}

	now := s.now()
	profile := &models.UserProfile{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		Role:               models.RoleUser,
		FavoriteCategories: []string{},
		Badges:             []string{},
		JoinedDate:         now,
		LastActive:         now,
	}
	s.profiles = append(s.profiles, profile)

	s.addTransaction(profile.ID, models.TransactionBonus, welcomeBonus,
		"Приветственный бонус за регистрацию в ReWear", nil, nil)

	out := *profile
	return &out, nil
}

// GetProfile возвращает профиль пользователя по ID
func (s *Store) GetProfile(id uuid.UUID) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile := s.findProfile(id)
	if profile == nil {
		return nil, ErrUserNotFound
	}
	out := *profile
	return &out, nil
}

// GetProfileByEmail возвращает профиль пользователя по email
func (s *Store) GetProfileByEmail(email string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, p := range s.profiles {
		if p.Email == email {
			out := *p
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

// ListProfiles возвращает все профили пользователей
func (s *Store) ListProfiles() []models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.UserProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		result = append(result, *p)
	}
	return result
}

// UpdateProfile изменяет профиль пользователя. Баланс баллов и роль
// через эту операцию изменить нельзя.
func (s *Store) UpdateProfile(userID uuid.UUID, upd models.ProfileUpdate) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.findProfile(userID)
	if profile == nil {
		return nil, ErrUserNotFound
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, ErrEmptyField
		}
		profile.Name = *upd.Name
	}
	if upd.AvatarURL != nil {
		profile.AvatarURL = *upd.AvatarURL
	}
	if upd.Bio != nil {
		profile.Bio = *upd.Bio
	}
	if upd.Location != nil {
		profile.Location = *upd.Location
	}
	if upd.FavoriteCategories != nil {
		profile.FavoriteCategories = append([]string(nil), upd.FavoriteCategories...)
	}
	profile.LastActive = s.now()

	out := *profile
	return &out, nil
}

// userSummary возвращает краткую информацию о пользователе для
// вложенных полей API. Вызывается под мьютексом.
func (s *Store) userSummary(id uuid.UUID) *models.User {
	profile := s.findProfile(id)
	if profile == nil {
		return nil
	}
	return profile.Summary()
}
