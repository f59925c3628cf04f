package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/himmat404/odoo-hackathon/internal/models"
)

// Фиксированные ID демонстрационных данных, чтобы на них можно было
// ссылаться из клиента и тестов
var (
	SeedUserSarah   = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	SeedUserAdmin   = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	SeedUserEmma    = uuid.MustParse("33333333-3333-4333-8333-333333333333")
	SeedUserAlex    = uuid.MustParse("44444444-4444-4444-8444-444444444444")
	SeedUserMichael = uuid.MustParse("55555555-5555-4555-8555-555555555555")

	SeedItemDenimJacket = uuid.MustParse("aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa")
	SeedItemSilkDress   = uuid.MustParse("bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb")
	SeedItemWoolCoat    = uuid.MustParse("cccccccc-cccc-4ccc-8ccc-cccccccccccc")

	SeedSwapDenimJacket = uuid.MustParse("eeeeeeee-eeee-4eee-8eee-eeeeeeeeeeee")
)

// seed наполняет хранилище демонстрационными данными. Операции
// с баллами проходят через журнал, поэтому кэш баланса в профилях
// совпадает с суммой журнала с самого старта.
func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := func(d int, hour, min int) time.Time {
		return time.Date(2024, time.January, d, hour, min, 0, 0, time.UTC)
	}

	s.profiles = []*models.UserProfile{
		{
			ID:                 SeedUserSarah,
			Email:              "user@example.com",
			Name:               "Sarah Johnson",
			Role:               models.RoleUser,
			AvatarURL:          "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:                "Sustainable fashion enthusiast who loves vintage pieces and eco-friendly brands.",
			Location:           "San Francisco, CA",
			FavoriteCategories: []string{"Outerwear", "Dresses", "Vintage"},
			TotalSwaps:         12,
			Rating:             4.8,
			ReviewCount:        15,
			Badges:             []string{"Early Adopter", "Eco Warrior", "Top Swapper"},
			IsVerified:         true,
			JoinedDate:         day(15, 9, 0),
			LastActive:         day(20, 15, 30),
		},
		{
			ID:                 SeedUserAdmin,
			Email:              "admin@rewear.com",
			Name:               "Admin User",
			Role:               models.RoleAdmin,
			FavoriteCategories: []string{},
			Badges:             []string{},
			JoinedDate:         day(1, 9, 0),
			LastActive:         day(20, 9, 0),
		},
		{
			ID:                 SeedUserEmma,
			Email:              "emma@example.com",
			Name:               "Emma Wilson",
			Role:               models.RoleUser,
			AvatarURL:          "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:                "Fashion designer passionate about circular fashion and reducing textile waste.",
			Location:           "New York, NY",
			FavoriteCategories: []string{"Designer", "Formal", "Accessories"},
			TotalSwaps:         25,
			Rating:             4.9,
			ReviewCount:        28,
			Badges:             []string{"Designer Pro", "Community Leader", "Verified Seller"},
			IsVerified:         true,
			JoinedDate:         day(10, 9, 0),
			LastActive:         day(20, 12, 0),
		},
		{
			ID:                 SeedUserAlex,
			Email:              "alex@example.com",
			Name:               "Alex Chen",
			Role:               models.RoleUser,
			AvatarURL:          "https://images.pexels.com/photos/762020/pexels-photo-762020.jpeg?auto=compress&cs=tinysrgb&w=150",
			FavoriteCategories: []string{"Formal", "Dresses"},
			TotalSwaps:         7,
			Rating:             4.6,
			ReviewCount:        9,
			Badges:             []string{},
			IsVerified:         false,
			JoinedDate:         day(12, 9, 0),
			LastActive:         day(19, 18, 0),
		},
		{
			ID:                 SeedUserMichael,
			Email:              "michael@example.com",
			Name:               "Michael Brown",
			Role:               models.RoleUser,
			FavoriteCategories: []string{"Outerwear"},
			TotalSwaps:         3,
			Rating:             4.4,
			ReviewCount:        5,
			Badges:             []string{},
			IsVerified:         false,
			JoinedDate:         day(14, 9, 0),
			LastActive:         day(18, 10, 0),
		},
	}

	s.items = []*models.Item{
		{
			ID:          SeedItemDenimJacket,
			UploaderID:  SeedUserEmma,
			Title:       "Vintage Denim Jacket",
			Description: "Classic blue denim jacket from the 90s. Perfect condition with minimal wear. Great for layering and adding a vintage touch to any outfit.",
			Images: []string{
				"https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/996329/pexels-photo-996329.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:   "Outerwear",
			Type:       "Jacket",
			Size:       "M",
			Condition:  models.ConditionLikeNew,
			Tags:       []string{"vintage", "denim", "casual"},
			PointValue: 75,
			Status:     models.ItemStatusAvailable,
			Approved:   true,
			UploadDate: day(20, 10, 0),
			UpdatedAt:  day(20, 10, 0),
		},
		{
			ID:          SeedItemSilkDress,
			UploaderID:  SeedUserAlex,
			Title:       "Silk Evening Dress",
			Description: "Elegant black silk dress perfect for special occasions. Features a flattering A-line silhouette and delicate lace details.",
			Images: []string{
				"https://images.pexels.com/photos/985635/pexels-photo-985635.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:   "Dresses",
			Type:       "Evening",
			Size:       "S",
			Condition:  models.ConditionNew,
			Tags:       []string{"silk", "elegant", "formal"},
			PointValue: 120,
			Status:     models.ItemStatusAvailable,
			Approved:   true,
			UploadDate: day(18, 11, 0),
			UpdatedAt:  day(18, 11, 0),
		},
		{
			ID:          SeedItemWoolCoat,
			UploaderID:  SeedUserMichael,
			Title:       "Wool Winter Coat",
			Description: "Warm and stylish wool coat in charcoal gray. Perfect for cold weather with a timeless design that never goes out of style.",
			Images: []string{
				"https://images.pexels.com/photos/7679720/pexels-photo-7679720.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:   "Outerwear",
			Type:       "Coat",
			Size:       "L",
			Condition:  models.ConditionGood,
			Tags:       []string{"wool", "winter", "warm"},
			PointValue: 90,
			Status:     models.ItemStatusAvailable,
			Approved:   true,
			UploadDate: day(16, 12, 0),
			UpdatedAt:  day(16, 12, 0),
		},
	}

	// Стартовые операции с баллами: баланс каждого профиля равен сумме
	// его журнала (Sarah 150, Emma 200, Alex 120, Michael 80)
	seedTxs := []struct {
		userID      uuid.UUID
		txType      string
		amount      int
		description string
		at          time.Time
	}{
		{SeedUserSarah, models.TransactionBonus, 50, "Приветственный бонус за регистрацию в ReWear", day(15, 9, 0)},
		{SeedUserSarah, models.TransactionEarned, 75, "Баллы начислены за обмен \"Vintage Denim Jacket\"", day(18, 14, 30)},
		{SeedUserSarah, models.TransactionBonus, 25, "Бонус за приглашение друга", day(19, 10, 0)},
		{SeedUserEmma, models.TransactionBonus, 50, "Приветственный бонус за регистрацию в ReWear", day(10, 9, 0)},
		{SeedUserEmma, models.TransactionEarned, 90, "Баллы начислены за обмен \"Cashmere Sweater\"", day(14, 16, 0)},
		{SeedUserEmma, models.TransactionEarned, 60, "Баллы начислены за обмен \"Leather Boots\"", day(17, 13, 0)},
		{SeedUserAlex, models.TransactionBonus, 50, "Приветственный бонус за регистрацию в ReWear", day(12, 9, 0)},
		{SeedUserAlex, models.TransactionEarned, 70, "Баллы начислены за обмен \"Linen Shirt\"", day(16, 15, 0)},
		{SeedUserMichael, models.TransactionBonus, 50, "Приветственный бонус за регистрацию в ReWear", day(14, 9, 0)},
		{SeedUserMichael, models.TransactionEarned, 30, "Баллы начислены за обмен \"Knit Scarf\"", day(17, 11, 0)},
	}
	for _, tx := range seedTxs {
		s.transactions = append(s.transactions, &models.PointTransaction{
			ID:          uuid.New(),
			UserID:      tx.userID,
			Type:        tx.txType,
			Amount:      tx.amount,
			Description: tx.description,
			CreatedAt:   tx.at,
		})
	}
	for _, p := range s.profiles {
		p.Points = s.balance(p.ID)
	}

	// Ожидающая заявка Sarah на куртку Emma; стартовое сообщение
	// ссылается на нее
	s.swaps = []*models.SwapRequest{
		{
			ID:            SeedSwapDenimJacket,
			RequesterID:   SeedUserSarah,
			ItemID:        SeedItemDenimJacket,
			ItemOwnerID:   SeedUserEmma,
			PointsOffered: 75,
			Status:        models.SwapStatusPending,
			Message:       "Hi! I love this vintage denim jacket. Would you like to swap?",
			CreatedDate:   day(20, 10, 15),
			UpdatedAt:     day(20, 10, 15),
		},
	}

	seedSwapID := SeedSwapDenimJacket
	s.messages = []*models.Message{
		{
			ID:            uuid.MustParse("dddddddd-dddd-4ddd-8ddd-dddddddddddd"),
			SenderID:      SeedUserEmma,
			ReceiverID:    SeedUserSarah,
			SwapRequestID: &seedSwapID,
			Content:       "Hi! I'm interested in your vintage denim jacket. Would you be open to swapping for my silk evening dress?",
			IsRead:        false,
			CreatedAt:     day(20, 10, 30),
		},
	}
}
