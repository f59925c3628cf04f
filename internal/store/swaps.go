package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/models"
)

// Направления выборки заявок
const (
	SwapDirectionAll      = "all"
	SwapDirectionIncoming = "incoming"
	SwapDirectionOutgoing = "outgoing"
)

// CreateSwapRequest создает заявку на обмен вещи. Заявка создается
// в статусе pending; вещь должна быть одобрена и доступна, нельзя
// обменивать собственную вещь и дублировать ожидающую заявку.
func (s *Store) CreateSwapRequest(requesterID, itemID uuid.UUID, offeredItemID *uuid.UUID, pointsOffered int, message string) (*models.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swap, err := s.createSwap(requesterID, itemID, offeredItemID, pointsOffered, message)
	if err != nil {
		return nil, err
	}
	out := *swap
	return &out, nil
}

// GetSwapRequest возвращает заявку по ID
func (s *Store) GetSwapRequest(id uuid.UUID) (*models.SwapRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	swap := s.findSwap(id)
	if swap == nil {
		return nil, ErrSwapNotFound
	}
	out := *swap
	return &out, nil
}

// ListSwapRequests возвращает заявки пользователя, новые первыми.
// direction: all, incoming (вещи пользователя), outgoing (его заявки);
// status фильтрует по статусу, пустая строка — все статусы.
func (s *Store) ListSwapRequests(userID uuid.UUID, direction, status string) []models.SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.SwapRequest
	for _, swap := range s.swaps {
		switch direction {
		case SwapDirectionIncoming:
			if swap.ItemOwnerID != userID {
				continue
			}
		case SwapDirectionOutgoing:
			if swap.RequesterID != userID {
				continue
			}
		default:
			if swap.ItemOwnerID != userID && swap.RequesterID != userID {
				continue
			}
		}
		if status != "" && swap.Status != status {
			continue
		}
		result = append(result, *swap)
	}
	return result
}

// AcceptSwapRequest принимает ожидающую заявку. Если предложены баллы,
// с заявителя списывается ровно одна операция spent на эту сумму;
// вещь заявки и предложенная взамен вещь резервируются в статусе
// pending до завершения обмена.
func (s *Store) AcceptSwapRequest(id uuid.UUID, response string) (*models.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swap := s.findSwap(id)
	if swap == nil {
		return nil, ErrSwapNotFound
	}
	if err := s.acceptSwap(swap, response); err != nil {
		return nil, err
	}
	out := *swap
	return &out, nil
}

// RejectSwapRequest отклоняет ожидающую заявку. Терминальный статус,
// журнал баллов не затрагивается, вещь остается доступной.
func (s *Store) RejectSwapRequest(id uuid.UUID, response string) (*models.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swap := s.findSwap(id)
	if swap == nil {
		return nil, ErrSwapNotFound
	}
	if swap.Status != models.SwapStatusPending {
		return nil, ErrInvalidTransition
	}

	swap.Status = models.SwapStatusRejected
	if response == "" {
		response = "Заявка отклонена."
	}
	swap.Response = response
	swap.UpdatedAt = s.now()

	out := *swap
	return &out, nil
}

// CompleteSwapRequest завершает принятую заявку: владельцу вещи
// начисляется ровно одна операция earned на стоимость вещи, обе вещи
// обмена переходят в статус swapped.
func (s *Store) CompleteSwapRequest(id uuid.UUID) (*models.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swap := s.findSwap(id)
	if swap == nil {
		return nil, ErrSwapNotFound
	}
	if err := s.completeSwap(swap); err != nil {
		return nil, err
	}
	out := *swap
	return &out, nil
}

// RedeemWithPoints выкупает вещь за баллы. Выкуп проходит через общий
// жизненный цикл заявки: создание, принятие и завершение выполняются
// одной операцией, поэтому вещь гарантированно переходит в swapped
// и повторный выкуп невозможен.
func (s *Store) RedeemWithPoints(userID, itemID uuid.UUID) (*models.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}
	if s.balance(userID) < item.PointValue {
		return nil, ErrInsufficientPoints
	}

	swap, err := s.createSwap(userID, itemID, nil, item.PointValue, "Прямой выкуп за баллы")
	if err != nil {
		return nil, err
	}
	if err := s.acceptSwap(swap, "Выкуп за баллы подтвержден."); err != nil {
		return nil, err
	}
	if err := s.completeSwap(swap); err != nil {
		return nil, err
	}

	out := *swap
	return &out, nil
}

// createSwap создает заявку. Вызывается под мьютексом.
func (s *Store) createSwap(requesterID, itemID uuid.UUID, offeredItemID *uuid.UUID, pointsOffered int, message string) (*models.SwapRequest, error) {
	if s.findProfile(requesterID) == nil {
		return nil, ErrUserNotFound
	}
	item := s.findItem(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}
	if !item.Approved || item.Status != models.ItemStatusAvailable {
		return nil, ErrItemUnavailable
	}
	if item.UploaderID == requesterID {
		return nil, ErrOwnItem
	}
	if pointsOffered < 0 {
		return nil, ErrInvalidAmount
	}
	if offeredItemID != nil {
		offered := s.findItem(*offeredItemID)
		if offered == nil {
			return nil, ErrItemNotFound
		}
		if offered.UploaderID != requesterID {
			return nil, ErrNotItemOwner
		}
		if !offered.Approved || offered.Status != models.ItemStatusAvailable {
			return nil, ErrItemUnavailable
		}
	}

	// Дубликат ожидающей заявки на ту же вещь не создаем
	for _, existing := range s.swaps {
		if existing.RequesterID == requesterID && existing.ItemID == itemID && existing.Status == models.SwapStatusPending {
			return nil, ErrDuplicateRequest
		}
	}

	now := s.now()
	swap := &models.SwapRequest{
		ID:            uuid.New(),
		RequesterID:   requesterID,
		ItemID:        itemID,
		ItemOwnerID:   item.UploaderID,
		OfferedItemID: offeredItemID,
		PointsOffered: pointsOffered,
		Status:        models.SwapStatusPending,
		Message:       message,
		CreatedDate:   now,
		UpdatedAt:     now,
	}

	// Новые заявки показываются первыми
	s.swaps = append([]*models.SwapRequest{swap}, s.swaps...)
	return swap, nil
}

// acceptSwap переводит заявку pending -> accepted. Вызывается под мьютексом.
// Обе вещи должны быть доступны на момент принятия: пока на вещь висит
// несколько ожидающих заявок, принять можно только одну из них.
func (s *Store) acceptSwap(swap *models.SwapRequest, response string) error {
	if swap.Status != models.SwapStatusPending {
		return ErrInvalidTransition
	}
	item := s.findItem(swap.ItemID)
	if item == nil {
		return ErrItemNotFound
	}
	if item.Status != models.ItemStatusAvailable {
		return ErrItemUnavailable
	}

	var offered *models.Item
	if swap.OfferedItemID != nil {
		offered = s.findItem(*swap.OfferedItemID)
		if offered == nil {
			return ErrItemNotFound
		}
		if offered.Status != models.ItemStatusAvailable {
			return ErrItemUnavailable
		}
	}

	if swap.PointsOffered > 0 {
		if s.balance(swap.RequesterID) < swap.PointsOffered {
			return ErrInsufficientPoints
		}
		s.addTransaction(swap.RequesterID, models.TransactionSpent, -swap.PointsOffered,
			fmt.Sprintf("Баллы списаны за %q", item.Title), &swap.ItemID, &swap.ID)
	}

	swap.Status = models.SwapStatusAccepted
	if response == "" {
		response = "Заявка принята!"
	}
	swap.Response = response
	swap.UpdatedAt = s.now()

	item.Status = models.ItemStatusPending
	item.UpdatedAt = swap.UpdatedAt
	if offered != nil {
		offered.Status = models.ItemStatusPending
		offered.UpdatedAt = swap.UpdatedAt
	}
	return nil
}

// completeSwap переводит заявку accepted -> completed. Вызывается под
// мьютексом. Владельцу начисляется стоимость вещи — она может
// отличаться от суммы, списанной с заявителя при принятии.
func (s *Store) completeSwap(swap *models.SwapRequest) error {
	if swap.Status != models.SwapStatusAccepted {
		return ErrInvalidTransition
	}
	item := s.findItem(swap.ItemID)
	if item == nil {
		return ErrItemNotFound
	}

	s.addTransaction(swap.ItemOwnerID, models.TransactionEarned, item.PointValue,
		fmt.Sprintf("Баллы начислены за обмен %q", item.Title), &swap.ItemID, &swap.ID)

	now := s.now()
	swap.Status = models.SwapStatusCompleted
	swap.CompletedDate = &now
	swap.UpdatedAt = now

	item.Status = models.ItemStatusSwapped
	item.UpdatedAt = now
	if swap.OfferedItemID != nil {
		if offered := s.findItem(*swap.OfferedItemID); offered != nil {
			offered.Status = models.ItemStatusSwapped
			offered.UpdatedAt = now
		}
	}

	if owner := s.findProfile(swap.ItemOwnerID); owner != nil {
		owner.TotalSwaps++
	}
	if requester := s.findProfile(swap.RequesterID); requester != nil {
		requester.TotalSwaps++
	}
	return nil
}
