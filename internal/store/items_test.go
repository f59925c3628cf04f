package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/models"
)

func TestAddItemModerationFlow(t *testing.T) {
	s := New()
	user, _ := s.CreateUser("user@example.com", "User")

	item, err := s.AddItem(user.ID, "Wool Coat", "Warm winter coat",
		[]string{"https://example.com/coat.jpg"}, "Outerwear", "Coat", "L",
		models.ConditionGood, []string{"wool", "winter"}, 90)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.Approved {
		t.Error("new item must start unapproved")
	}
	if item.Status != models.ItemStatusAvailable {
		t.Errorf("expected status available, got %q", item.Status)
	}

	// До одобрения вещь не видна в публичном каталоге
	if public := s.ListItems(models.ItemFilter{PublicOnly: true}); len(public) != 0 {
		t.Errorf("expected empty public catalog, got %d items", len(public))
	}
	if pending := s.ListPendingItems(); len(pending) != 1 {
		t.Errorf("expected 1 item awaiting moderation, got %d", len(pending))
	}

	if _, err := s.ApproveItem(item.ID); err != nil {
		t.Fatalf("ApproveItem: %v", err)
	}
	if public := s.ListItems(models.ItemFilter{PublicOnly: true}); len(public) != 1 {
		t.Errorf("expected 1 item in public catalog, got %d", len(public))
	}

	// Отклоненная вещь скрывается, но не удаляется
	rejected, err := s.RejectItem(item.ID)
	if err != nil {
		t.Fatalf("RejectItem: %v", err)
	}
	if rejected.Status != models.ItemStatusRejected || rejected.Approved {
		t.Errorf("expected rejected unapproved item, got status %q approved %v", rejected.Status, rejected.Approved)
	}
	if public := s.ListItems(models.ItemFilter{PublicOnly: true}); len(public) != 0 {
		t.Errorf("expected empty public catalog after reject, got %d", len(public))
	}
	if got, err := s.GetItem(item.ID); err != nil || got == nil {
		t.Error("rejected item must still be fetchable by ID")
	}

	// Повторное одобрение возвращает вещь в каталог
	restored, err := s.ApproveItem(item.ID)
	if err != nil {
		t.Fatalf("ApproveItem: %v", err)
	}
	if restored.Status != models.ItemStatusAvailable || !restored.Approved {
		t.Errorf("expected restored available item, got status %q approved %v", restored.Status, restored.Approved)
	}
}

func TestAddItemValidation(t *testing.T) {
	s := New()
	user, _ := s.CreateUser("user@example.com", "User")

	if _, err := s.AddItem(uuid.New(), "X", "", []string{"u"}, "", "", "", models.ConditionGood, nil, 10); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown uploader: expected ErrUserNotFound, got %v", err)
	}
	if _, err := s.AddItem(user.ID, "", "", []string{"u"}, "", "", "", models.ConditionGood, nil, 10); !errors.Is(err, ErrEmptyField) {
		t.Errorf("empty title: expected ErrEmptyField, got %v", err)
	}
	if _, err := s.AddItem(user.ID, "X", "", nil, "", "", "", models.ConditionGood, nil, 10); !errors.Is(err, ErrEmptyField) {
		t.Errorf("no images: expected ErrEmptyField, got %v", err)
	}
	if _, err := s.AddItem(user.ID, "X", "", []string{"u"}, "", "", "", models.ConditionGood, nil, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero point value: expected ErrInvalidAmount, got %v", err)
	}

	// Неизвестное состояние нормализуется
	item, err := s.AddItem(user.ID, "X", "", []string{"u"}, "", "", "", "mint", nil, 10)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.Condition != models.ConditionGood {
		t.Errorf("expected normalized condition %q, got %q", models.ConditionGood, item.Condition)
	}
}

func TestListItemsSearchAndCategory(t *testing.T) {
	s := NewSeeded()

	// Поиск по названию, описанию и тегам без учета регистра
	if items := s.ListItems(models.ItemFilter{Search: "DENIM", PublicOnly: true}); len(items) != 1 {
		t.Errorf("search by title: expected 1 item, got %d", len(items))
	}
	if items := s.ListItems(models.ItemFilter{Search: "timeless design", PublicOnly: true}); len(items) != 1 {
		t.Errorf("search by description: expected 1 item, got %d", len(items))
	}
	if items := s.ListItems(models.ItemFilter{Search: "silk", PublicOnly: true}); len(items) != 1 {
		t.Errorf("search by tag: expected 1 item, got %d", len(items))
	}
	if items := s.ListItems(models.ItemFilter{Category: "Outerwear", PublicOnly: true}); len(items) != 2 {
		t.Errorf("category filter: expected 2 items, got %d", len(items))
	}
	if items := s.ListItems(models.ItemFilter{Search: "velvet", PublicOnly: true}); len(items) != 0 {
		t.Errorf("no match: expected 0 items, got %d", len(items))
	}
}

func TestUpdateItemTypedFields(t *testing.T) {
	s := NewSeeded()

	title := "Vintage Denim Jacket (90s)"
	points := 80
	item, err := s.UpdateItem(SeedItemDenimJacket, SeedUserEmma, models.ItemUpdate{
		Title:      &title,
		PointValue: &points,
		Tags:       []string{"vintage", "denim", "unisex"},
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if item.Title != title || item.PointValue != 80 || len(item.Tags) != 3 {
		t.Errorf("typed update not applied: %+v", item)
	}
	// Непереданные поля не меняются
	if item.Size != "M" || item.Condition != models.ConditionLikeNew {
		t.Errorf("untouched fields changed: size %q condition %q", item.Size, item.Condition)
	}
}

func TestUpdateItemPermissions(t *testing.T) {
	s := NewSeeded()

	title := "hijack"
	if _, err := s.UpdateItem(SeedItemDenimJacket, SeedUserSarah, models.ItemUpdate{Title: &title}); !errors.Is(err, ErrNotItemOwner) {
		t.Errorf("non-owner update: expected ErrNotItemOwner, got %v", err)
	}

	// После начала обмена вещь заморожена
	if _, err := s.AcceptSwapRequest(SeedSwapDenimJacket, ""); err != nil {
		t.Fatalf("AcceptSwapRequest: %v", err)
	}
	if _, err := s.UpdateItem(SeedItemDenimJacket, SeedUserEmma, models.ItemUpdate{Title: &title}); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("update of reserved item: expected ErrItemUnavailable, got %v", err)
	}
	// И не может быть отклонена модератором
	if _, err := s.RejectItem(SeedItemDenimJacket); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("reject of reserved item: expected ErrItemUnavailable, got %v", err)
	}
}
