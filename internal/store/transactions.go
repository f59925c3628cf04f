package store

import (
	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/models"
)

// AddPointTransaction добавляет запись в журнал баллов. Журнал только
// пополняется: записи никогда не изменяются и не удаляются.
func (s *Store) AddPointTransaction(userID uuid.UUID, txType string, amount int, description string, relatedItemID, relatedSwapID *uuid.UUID) (*models.PointTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findProfile(userID) == nil {
		return nil, ErrUserNotFound
	}
	switch txType {
	case models.TransactionEarned, models.TransactionSpent, models.TransactionBonus, models.TransactionRefund:
	default:
		return nil, ErrInvalidTxType
	}

	tx := s.addTransaction(userID, txType, amount, description, relatedItemID, relatedSwapID)
	out := *tx
	return &out, nil
}

// ListTransactions возвращает операции пользователя, новые первыми
func (s *Store) ListTransactions(userID uuid.UUID) ([]models.PointTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.findProfile(userID) == nil {
		return nil, ErrUserNotFound
	}

	var result []models.PointTransaction
	for i := len(s.transactions) - 1; i >= 0; i-- {
		if s.transactions[i].UserID == userID {
			result = append(result, *s.transactions[i])
		}
	}
	return result, nil
}

// Balance возвращает баланс пользователя, выведенный из журнала баллов
func (s *Store) Balance(userID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.findProfile(userID) == nil {
		return 0, ErrUserNotFound
	}
	return s.balance(userID), nil
}

// balance суммирует журнал баллов пользователя. Вызывается под мьютексом.
func (s *Store) balance(userID uuid.UUID) int {
	total := 0
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			total += tx.Amount
		}
	}
	return total
}

// addTransaction добавляет запись в журнал и переписывает кэш баланса
// в профиле суммой журнала, чтобы кэш и журнал не расходились.
// Вызывается под мьютексом.
func (s *Store) addTransaction(userID uuid.UUID, txType string, amount int, description string, relatedItemID, relatedSwapID *uuid.UUID) *models.PointTransaction {
	tx := &models.PointTransaction{
		ID:            uuid.New(),
		UserID:        userID,
		Type:          txType,
		Amount:        amount,
		Description:   description,
		RelatedItemID: relatedItemID,
		RelatedSwapID: relatedSwapID,
		CreatedAt:     s.now(),
	}
	s.transactions = append(s.transactions, tx)

	if profile := s.findProfile(userID); profile != nil {
		profile.Points = s.balance(userID)
	}
	return tx
}
