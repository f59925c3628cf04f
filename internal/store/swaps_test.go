package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/models"
)

// swapFixture создает владельца, заявителя и одобренную вещь
func swapFixture(t *testing.T, pointValue int) (*Store, *models.UserProfile, *models.UserProfile, *models.Item) {
	t.Helper()
	s := New()

	owner, err := s.CreateUser("owner@example.com", "Owner")
	if err != nil {
		t.Fatalf("CreateUser owner: %v", err)
	}
	requester, err := s.CreateUser("requester@example.com", "Requester")
	if err != nil {
		t.Fatalf("CreateUser requester: %v", err)
	}

	item, err := s.AddItem(owner.ID, "Vintage Denim Jacket", "Classic 90s denim",
		[]string{"https://example.com/jacket.jpg"}, "Outerwear", "Jacket", "M",
		models.ConditionLikeNew, []string{"vintage", "denim"}, pointValue)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := s.ApproveItem(item.ID); err != nil {
		t.Fatalf("ApproveItem: %v", err)
	}
	return s, owner, requester, item
}

// countTransactions считает операции пользователя заданного типа и суммы
func countTransactions(t *testing.T, s *Store, userID uuid.UUID, txType string, amount int) int {
	t.Helper()
	txs, err := s.ListTransactions(userID)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	count := 0
	for _, tx := range txs {
		if tx.Type == txType && tx.Amount == amount {
			count++
		}
	}
	return count
}

func TestSwapLifecycle(t *testing.T) {
	s, owner, requester, item := swapFixture(t, 75)

	// Добираем заявителю баллы до 75 (приветственный бонус дал 50)
	if _, err := s.AddPointTransaction(requester.ID, models.TransactionBonus, 25, "bonus", nil, nil); err != nil {
		t.Fatalf("AddPointTransaction: %v", err)
	}

	swap, err := s.CreateSwapRequest(requester.ID, item.ID, nil, 75, "Would love to swap!")
	if err != nil {
		t.Fatalf("CreateSwapRequest: %v", err)
	}
	if swap.Status != models.SwapStatusPending {
		t.Errorf("expected status pending, got %q", swap.Status)
	}

	swap, err = s.AcceptSwapRequest(swap.ID, "Deal!")
	if err != nil {
		t.Fatalf("AcceptSwapRequest: %v", err)
	}
	if swap.Status != models.SwapStatusAccepted {
		t.Errorf("expected status accepted, got %q", swap.Status)
	}
	if swap.Response != "Deal!" {
		t.Errorf("expected response to be stored, got %q", swap.Response)
	}

	// Ровно одна операция spent на сумму заявки
	if n := countTransactions(t, s, requester.ID, models.TransactionSpent, -75); n != 1 {
		t.Errorf("expected exactly 1 spent transaction of -75, got %d", n)
	}

	// Вещь зарезервирована до завершения обмена
	got, _ := s.GetItem(item.ID)
	if got.Status != models.ItemStatusPending {
		t.Errorf("expected item status pending, got %q", got.Status)
	}

	swap, err = s.CompleteSwapRequest(swap.ID)
	if err != nil {
		t.Fatalf("CompleteSwapRequest: %v", err)
	}
	if swap.Status != models.SwapStatusCompleted {
		t.Errorf("expected status completed, got %q", swap.Status)
	}
	if swap.CompletedDate == nil {
		t.Error("expected completed date to be set")
	}

	// Ровно одна операция earned на стоимость вещи
	if n := countTransactions(t, s, owner.ID, models.TransactionEarned, 75); n != 1 {
		t.Errorf("expected exactly 1 earned transaction of 75, got %d", n)
	}

	got, _ = s.GetItem(item.ID)
	if got.Status != models.ItemStatusSwapped {
		t.Errorf("expected item status swapped, got %q", got.Status)
	}

	ownerProfile, _ := s.GetProfile(owner.ID)
	requesterProfile, _ := s.GetProfile(requester.ID)
	if ownerProfile.TotalSwaps != 1 || requesterProfile.TotalSwaps != 1 {
		t.Errorf("expected both parties to gain a swap, got %d and %d",
			ownerProfile.TotalSwaps, requesterProfile.TotalSwaps)
	}
}

func TestSwapTransitionGuards(t *testing.T) {
	s, _, requester, item := swapFixture(t, 30)

	swap, err := s.CreateSwapRequest(requester.ID, item.ID, nil, 30, "hi")
	if err != nil {
		t.Fatalf("CreateSwapRequest: %v", err)
	}

	// Завершить можно только принятую заявку
	if _, err := s.CompleteSwapRequest(swap.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("complete from pending: expected ErrInvalidTransition, got %v", err)
	}

	if _, err := s.AcceptSwapRequest(swap.ID, ""); err != nil {
		t.Fatalf("AcceptSwapRequest: %v", err)
	}

	// Принятую заявку нельзя принять или отклонить повторно
	if _, err := s.AcceptSwapRequest(swap.ID, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double accept: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := s.RejectSwapRequest(swap.ID, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("reject after accept: expected ErrInvalidTransition, got %v", err)
	}

	if _, err := s.CompleteSwapRequest(swap.ID); err != nil {
		t.Fatalf("CompleteSwapRequest: %v", err)
	}

	// Завершенная заявка терминальна
	if _, err := s.CompleteSwapRequest(swap.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double complete: expected ErrInvalidTransition, got %v", err)
	}
}

func TestRejectSwapIsTerminalAndFree(t *testing.T) {
	s, owner, requester, item := swapFixture(t, 40)

	swap, err := s.CreateSwapRequest(requester.ID, item.ID, nil, 40, "hi")
	if err != nil {
		t.Fatalf("CreateSwapRequest: %v", err)
	}

	rejected, err := s.RejectSwapRequest(swap.ID, "Sorry, already promised.")
	if err != nil {
		t.Fatalf("RejectSwapRequest: %v", err)
	}
	if rejected.Status != models.SwapStatusRejected {
		t.Errorf("expected status rejected, got %q", rejected.Status)
	}

	// Журнал баллов не затронут, вещь осталась доступной
	if n := countTransactions(t, s, requester.ID, models.TransactionSpent, -40); n != 0 {
		t.Errorf("expected no spent transactions after reject, got %d", n)
	}
	if n := countTransactions(t, s, owner.ID, models.TransactionEarned, 40); n != 0 {
		t.Errorf("expected no earned transactions after reject, got %d", n)
	}
	got, _ := s.GetItem(item.ID)
	if got.Status != models.ItemStatusAvailable {
		t.Errorf("expected item to stay available, got %q", got.Status)
	}

	if _, err := s.AcceptSwapRequest(swap.ID, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("accept after reject: expected ErrInvalidTransition, got %v", err)
	}
}

func TestCreateSwapRequestValidation(t *testing.T) {
	s, owner, requester, item := swapFixture(t, 50)

	// Собственную вещь обменять нельзя
	if _, err := s.CreateSwapRequest(owner.ID, item.ID, nil, 10, ""); !errors.Is(err, ErrOwnItem) {
		t.Errorf("own item: expected ErrOwnItem, got %v", err)
	}

	// Несуществующая вещь
	if _, err := s.CreateSwapRequest(requester.ID, uuid.New(), nil, 10, ""); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("missing item: expected ErrItemNotFound, got %v", err)
	}

	// Отрицательная сумма баллов
	if _, err := s.CreateSwapRequest(requester.ID, item.ID, nil, -5, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative points: expected ErrInvalidAmount, got %v", err)
	}

	// Неодобренная вещь недоступна для обмена
	unapproved, err := s.AddItem(owner.ID, "Silk Dress", "", []string{"https://example.com/dress.jpg"},
		"Dresses", "Evening", "S", models.ConditionNew, nil, 120)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := s.CreateSwapRequest(requester.ID, unapproved.ID, nil, 10, ""); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("unapproved item: expected ErrItemUnavailable, got %v", err)
	}

	// Дубликат ожидающей заявки
	if _, err := s.CreateSwapRequest(requester.ID, item.ID, nil, 10, ""); err != nil {
		t.Fatalf("CreateSwapRequest: %v", err)
	}
	if _, err := s.CreateSwapRequest(requester.ID, item.ID, nil, 20, ""); !errors.Is(err, ErrDuplicateRequest) {
		t.Errorf("duplicate pending: expected ErrDuplicateRequest, got %v", err)
	}
}

func TestAcceptSwapInsufficientPoints(t *testing.T) {
	s, _, requester, item := swapFixture(t, 75)

	// У заявителя только приветственный бонус (50), предложено 75
	swap, err := s.CreateSwapRequest(requester.ID, item.ID, nil, 75, "")
	if err != nil {
		t.Fatalf("CreateSwapRequest: %v", err)
	}

	if _, err := s.AcceptSwapRequest(swap.ID, ""); !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("expected ErrInsufficientPoints, got %v", err)
	}

	// Заявка осталась ожидающей, журнал не затронут
	got, _ := s.GetSwapRequest(swap.ID)
	if got.Status != models.SwapStatusPending {
		t.Errorf("expected status pending, got %q", got.Status)
	}
	if n := countTransactions(t, s, requester.ID, models.TransactionSpent, -75); n != 0 {
		t.Errorf("expected no spent transactions, got %d", n)
	}
}

// Принятие списывает предложенную сумму, завершение начисляет стоимость
// вещи: суммы различаются и журнал показывает обе без сверки.
func TestAcceptAndCompleteAmountsDiverge(t *testing.T) {
	s, owner, requester, item := swapFixture(t, 90)

	if _, err := s.AddPointTransaction(requester.ID, models.TransactionBonus, 50, "bonus", nil, nil); err != nil {
		t.Fatalf("AddPointTransaction: %v", err)
	}

	swap, err := s.CreateSwapRequest(requester.ID, item.ID, nil, 75, "")
	if err != nil {
		t.Fatalf("CreateSwapRequest: %v", err)
	}
	if _, err := s.AcceptSwapRequest(swap.ID, ""); err != nil {
		t.Fatalf("AcceptSwapRequest: %v", err)
	}
	if _, err := s.CompleteSwapRequest(swap.ID); err != nil {
		t.Fatalf("CompleteSwapRequest: %v", err)
	}

	if n := countTransactions(t, s, requester.ID, models.TransactionSpent, -75); n != 1 {
		t.Errorf("expected exactly 1 spent transaction of -75, got %d", n)
	}
	if n := countTransactions(t, s, owner.ID, models.TransactionEarned, 90); n != 1 {
		t.Errorf("expected exactly 1 earned transaction of +90, got %d", n)
	}
}

func TestRedeemWithPoints(t *testing.T) {
	s, owner, redeemer, item := swapFixture(t, 75)

	// Баланс выкупающего 150
	if _, err := s.AddPointTransaction(redeemer.ID, models.TransactionBonus, 100, "bonus", nil, nil); err != nil {
		t.Fatalf("AddPointTransaction: %v", err)
	}

	swap, err := s.RedeemWithPoints(redeemer.ID, item.ID)
	if err != nil {
		t.Fatalf("RedeemWithPoints: %v", err)
	}

	// Выкуп проходит через общий жизненный цикл и сразу завершается
	if swap.Status != models.SwapStatusCompleted {
		t.Errorf("expected status completed, got %q", swap.Status)
	}
	if n := countTransactions(t, s, redeemer.ID, models.TransactionSpent, -75); n != 1 {
		t.Errorf("expected exactly 1 spent transaction of -75, got %d", n)
	}
	if n := countTransactions(t, s, owner.ID, models.TransactionEarned, 75); n != 1 {
		t.Errorf("expected exactly 1 earned transaction of +75, got %d", n)
	}

	balance, _ := s.Balance(redeemer.ID)
	if balance != 75 {
		t.Errorf("expected redeemer balance 75, got %d", balance)
	}

	// Вещь недоступна, повторный выкуп невозможен
	got, _ := s.GetItem(item.ID)
	if got.Status != models.ItemStatusSwapped {
		t.Errorf("expected item status swapped, got %q", got.Status)
	}
	if _, err := s.RedeemWithPoints(redeemer.ID, item.ID); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("double redemption: expected ErrItemUnavailable, got %v", err)
	}
}

func TestRedeemWithPointsInsufficientBalance(t *testing.T) {
	s, _, redeemer, item := swapFixture(t, 75)

	// Только приветственный бонус (50), вещь стоит 75
	if _, err := s.RedeemWithPoints(redeemer.ID, item.ID); !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("expected ErrInsufficientPoints, got %v", err)
	}

	// Заявка не создана, вещь доступна
	if swaps := s.ListSwapRequests(redeemer.ID, SwapDirectionAll, ""); len(swaps) != 0 {
		t.Errorf("expected no swap requests, got %d", len(swaps))
	}
	got, _ := s.GetItem(item.ID)
	if got.Status != models.ItemStatusAvailable {
		t.Errorf("expected item to stay available, got %q", got.Status)
	}
}

// Пока на вещь висят несколько ожидающих заявок, принять можно только
// одну: после обмена вещь не возвращается в оборот.
func TestAcceptRequestOnReservedItem(t *testing.T) {
	s, owner, first, item := swapFixture(t, 20)

	second, err := s.CreateUser("second@example.com", "Second")
	if err != nil {
		t.Fatalf("CreateUser second: %v", err)
	}

	firstSwap, err := s.CreateSwapRequest(first.ID, item.ID, nil, 20, "")
	if err != nil {
		t.Fatalf("CreateSwapRequest first: %v", err)
	}
	secondSwap, err := s.CreateSwapRequest(second.ID, item.ID, nil, 30, "")
	if err != nil {
		t.Fatalf("CreateSwapRequest second: %v", err)
	}

	if _, err := s.AcceptSwapRequest(firstSwap.ID, ""); err != nil {
		t.Fatalf("AcceptSwapRequest first: %v", err)
	}

	// Вещь зарезервирована первой заявкой
	if _, err := s.AcceptSwapRequest(secondSwap.ID, ""); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("accept while reserved: expected ErrItemUnavailable, got %v", err)
	}

	if _, err := s.CompleteSwapRequest(firstSwap.ID); err != nil {
		t.Fatalf("CompleteSwapRequest: %v", err)
	}

	// Вещь обменяна: вторая заявка не может ни принять ее, ни вернуть
	// в статус pending
	if _, err := s.AcceptSwapRequest(secondSwap.ID, ""); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("accept after swap: expected ErrItemUnavailable, got %v", err)
	}
	got, _ := s.GetItem(item.ID)
	if got.Status != models.ItemStatusSwapped {
		t.Errorf("expected item to stay swapped, got %q", got.Status)
	}

	// Вторая заявка осталась ожидающей, журнал не затронут
	gotSwap, _ := s.GetSwapRequest(secondSwap.ID)
	if gotSwap.Status != models.SwapStatusPending {
		t.Errorf("expected second request to stay pending, got %q", gotSwap.Status)
	}
	if n := countTransactions(t, s, second.ID, models.TransactionSpent, -30); n != 0 {
		t.Errorf("expected no spent transactions for second requester, got %d", n)
	}
	if n := countTransactions(t, s, owner.ID, models.TransactionEarned, 20); n != 1 {
		t.Errorf("expected exactly 1 earned transaction for owner, got %d", n)
	}
}

// Предложенная взамен вещь резервируется вместе с вещью заявки и после
// завершения обмена тоже считается обменянной.
func TestItemForItemSwapReservesOfferedItem(t *testing.T) {
	s, _, requester, item := swapFixture(t, 30)

	offered, err := s.AddItem(requester.ID, "Leather Boots", "Barely worn",
		[]string{"https://example.com/boots.jpg"}, "Shoes", "Boots", "42",
		models.ConditionGood, nil, 60)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := s.ApproveItem(offered.ID); err != nil {
		t.Fatalf("ApproveItem: %v", err)
	}

	swap, err := s.CreateSwapRequest(requester.ID, item.ID, &offered.ID, 0, "boots for jacket")
	if err != nil {
		t.Fatalf("CreateSwapRequest: %v", err)
	}

	if _, err := s.AcceptSwapRequest(swap.ID, ""); err != nil {
		t.Fatalf("AcceptSwapRequest: %v", err)
	}
	gotOffered, _ := s.GetItem(offered.ID)
	if gotOffered.Status != models.ItemStatusPending {
		t.Errorf("expected offered item reserved as pending, got %q", gotOffered.Status)
	}

	if _, err := s.CompleteSwapRequest(swap.ID); err != nil {
		t.Fatalf("CompleteSwapRequest: %v", err)
	}
	gotOffered, _ = s.GetItem(offered.ID)
	if gotOffered.Status != models.ItemStatusSwapped {
		t.Errorf("expected offered item swapped, got %q", gotOffered.Status)
	}

	// Отданную вещь нельзя предложить или выкупить снова
	third, _ := s.CreateUser("third@example.com", "Third")
	if _, err := s.CreateSwapRequest(third.ID, offered.ID, nil, 10, ""); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("request for traded-away item: expected ErrItemUnavailable, got %v", err)
	}
}

// Стартовые данные содержат ожидающую заявку, на которую ссылается
// стартовое сообщение.
func TestSeededSwapRequestLinked(t *testing.T) {
	s := NewSeeded()

	swap, err := s.GetSwapRequest(SeedSwapDenimJacket)
	if err != nil {
		t.Fatalf("GetSwapRequest: %v", err)
	}
	if swap.Status != models.SwapStatusPending {
		t.Errorf("expected seeded request to be pending, got %q", swap.Status)
	}
	if swap.RequesterID != SeedUserSarah || swap.ItemID != SeedItemDenimJacket {
		t.Errorf("unexpected seeded request parties: %+v", swap)
	}

	msgs := s.ConversationWith(SeedUserSarah, SeedUserEmma)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 seeded message, got %d", len(msgs))
	}
	if msgs[0].SwapRequestID == nil || *msgs[0].SwapRequestID != swap.ID {
		t.Error("expected seeded message to reference the seeded swap request")
	}
}

func TestListSwapRequestsDirections(t *testing.T) {
	s, owner, requester, item := swapFixture(t, 20)

	swap, err := s.CreateSwapRequest(requester.ID, item.ID, nil, 20, "")
	if err != nil {
		t.Fatalf("CreateSwapRequest: %v", err)
	}

	incoming := s.ListSwapRequests(owner.ID, SwapDirectionIncoming, "")
	if len(incoming) != 1 || incoming[0].ID != swap.ID {
		t.Errorf("expected 1 incoming request for owner, got %d", len(incoming))
	}
	if outgoing := s.ListSwapRequests(owner.ID, SwapDirectionOutgoing, ""); len(outgoing) != 0 {
		t.Errorf("expected 0 outgoing requests for owner, got %d", len(outgoing))
	}
	if outgoing := s.ListSwapRequests(requester.ID, SwapDirectionOutgoing, ""); len(outgoing) != 1 {
		t.Errorf("expected 1 outgoing request for requester, got %d", len(outgoing))
	}
	if pending := s.ListSwapRequests(requester.ID, SwapDirectionAll, models.SwapStatusPending); len(pending) != 1 {
		t.Errorf("expected 1 pending request, got %d", len(pending))
	}
	if completed := s.ListSwapRequests(requester.ID, SwapDirectionAll, models.SwapStatusCompleted); len(completed) != 0 {
		t.Errorf("expected 0 completed requests, got %d", len(completed))
	}
}
