package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/models"
)

// AddItem добавляет новую вещь в каталог. Вещь создается неодобренной
// и попадает в публичный каталог только после модерации.
func (s *Store) AddItem(uploaderID uuid.UUID, title, description string, images []string, category, itemType, size, condition string, tags []string, pointValue int) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findProfile(uploaderID) == nil {
		return nil, ErrUserNotFound
	}
	if title == "" || len(images) == 0 {
		return nil, ErrEmptyField
	}
	if pointValue <= 0 {
		return nil, ErrInvalidAmount
	}
	if !models.ValidCondition(condition) {
		condition = models.ConditionGood // По умолчанию
	}

	now := s.now()
	item := &models.Item{
		ID:          uuid.New(),
		UploaderID:  uploaderID,
		Title:       title,
		Description: description,
		Images:      append([]string(nil), images...),
		Category:    category,
		Type:        itemType,
		Size:        size,
		Condition:   condition,
		Tags:        append([]string(nil), tags...),
		PointValue:  pointValue,
		Status:      models.ItemStatusAvailable,
		Approved:    false,
		UploadDate:  now,
		UpdatedAt:   now,
	}

	// Новые вещи показываются первыми
	s.items = append([]*models.Item{item}, s.items...)

	out := *item
	return &out, nil
}

// GetItem возвращает вещь по ID
func (s *Store) GetItem(id uuid.UUID) (*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item := s.findItem(id)
	if item == nil {
		return nil, ErrItemNotFound
	}
	out := *item
	return &out, nil
}

// ListItems возвращает вещи каталога с учетом фильтра, новые первыми
func (s *Store) ListItems(filter models.ItemFilter) []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)

	var result []models.Item
	for _, item := range s.items {
		if filter.PublicOnly && (!item.Approved || item.Status != models.ItemStatusAvailable) {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		result = append(result, *item)
	}
	return result
}

// ListUserItems возвращает вещи конкретного пользователя, новые первыми
func (s *Store) ListUserItems(uploaderID uuid.UUID) []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Item
	for _, item := range s.items {
		if item.UploaderID == uploaderID {
			result = append(result, *item)
		}
	}
	return result
}

// ListPendingItems возвращает вещи, ожидающие модерации
func (s *Store) ListPendingItems() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Item
	for _, item := range s.items {
		if !item.Approved && item.Status != models.ItemStatusRejected {
			result = append(result, *item)
		}
	}
	return result
}

// UpdateItem изменяет вещь. Разрешено только владельцу и только пока
// вещь доступна: после начала обмена состав вещи заморожен.
func (s *Store) UpdateItem(itemID, actorID uuid.UUID, upd models.ItemUpdate) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.UploaderID != actorID {
		return nil, ErrNotItemOwner
	}
	if item.Status != models.ItemStatusAvailable && item.Status != models.ItemStatusRejected {
		return nil, ErrItemUnavailable
	}

	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, ErrEmptyField
		}
		item.Title = *upd.Title
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Images != nil {
		if len(upd.Images) == 0 {
			return nil, ErrEmptyField
		}
		item.Images = append([]string(nil), upd.Images...)
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.Type != nil {
		item.Type = *upd.Type
	}
	if upd.Size != nil {
		item.Size = *upd.Size
	}
	if upd.Condition != nil {
		if !models.ValidCondition(*upd.Condition) {
			return nil, ErrEmptyField
		}
		item.Condition = *upd.Condition
	}
	if upd.Tags != nil {
		item.Tags = append([]string(nil), upd.Tags...)
	}
	if upd.PointValue != nil {
		if *upd.PointValue <= 0 {
			return nil, ErrInvalidAmount
		}
		item.PointValue = *upd.PointValue
	}
	item.UpdatedAt = s.now()

	out := *item
	return &out, nil
}

// ApproveItem одобряет вещь после модерации. Отклоненная ранее вещь
// возвращается в каталог.
func (s *Store) ApproveItem(id uuid.UUID) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(id)
	if item == nil {
		return nil, ErrItemNotFound
	}
	item.Approved = true
	if item.Status == models.ItemStatusRejected {
		item.Status = models.ItemStatusAvailable
	}
	item.UpdatedAt = s.now()

	out := *item
	return &out, nil
}

// RejectItem отклоняет вещь при модерации. Вещь не удаляется,
// а помечается отклоненной и скрывается из каталога.
func (s *Store) RejectItem(id uuid.UUID) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(id)
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.Status == models.ItemStatusSwapped || item.Status == models.ItemStatusPending {
		return nil, ErrItemUnavailable
	}
	item.Approved = false
	item.Status = models.ItemStatusRejected
	item.UpdatedAt = s.now()

	out := *item
	return &out, nil
}

func matchesSearch(item *models.Item, search string) bool {
	if strings.Contains(strings.ToLower(item.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), search) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}
