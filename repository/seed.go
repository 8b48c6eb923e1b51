package repository

import (
	"context"
	"time"

	"restaurant-backend/models"
)

var seedUsers = []models.User{
	{ID: 1, Username: "admin", Role: models.RoleAdmin},
	{ID: 2, Username: "customer1", Role: models.RoleCustomer},
	{ID: 3, Username: "customer2", Role: models.RoleCustomer},
}

// Plaintext by design: this store simulates a backend for a single local
// user, not a credential system.
var seedPasswords = map[int]string{
	1: "admin123",
	2: "customer1",
	3: "customer2",
}

var seedMenuItems = []models.MenuItem{
	{ID: 1, Name: "Nasi Lemak", Category: models.CategoryFood, Price: 6.00, Description: "Aromatic coconut rice served with spicy sambal, anchovies, peanuts, and a hard-boiled egg.", Image: "https://picsum.photos/400/300?image=1060"},
	{ID: 2, Name: "Char Kuey Teow", Category: models.CategoryFood, Price: 8.00, Description: "Stir-fried flat rice noodles with prawns, cockles, bean sprouts, and chives in a soy sauce mixture.", Image: "https://picsum.photos/400/300?image=292"},
	{ID: 3, Name: "Chicken Rice", Category: models.CategoryFood, Price: 7.50, Description: "Poached chicken and seasoned rice, served with chili sauce and cucumber garnishes.", Image: "https://picsum.photos/400/300?image=582"},
	{ID: 4, Name: "Laksa", Category: models.CategoryFood, Price: 9.00, Description: "Spicy noodle soup with a rich, coconut-based curry broth, topped with shrimp, chicken, and tofu puffs.", Image: "https://picsum.photos/400/300?image=431"},
	{ID: 5, Name: "Teh Tarik", Category: models.CategoryDrink, Price: 2.50, Description: "A hot milk tea beverage which is made from black tea, condensed milk and evaporated milk.", Image: "https://picsum.photos/400/300?image=367"},
	{ID: 6, Name: "Iced Milo", Category: models.CategoryDrink, Price: 3.00, Description: "A refreshing chocolate and malt powder drink served with ice.", Image: "https://picsum.photos/400/300?image=1025"},
	{ID: 7, Name: "Sirap Bandung", Category: models.CategoryDrink, Price: 2.80, Description: "A popular Malaysian drink made from rose syrup and condensed milk.", Image: "https://picsum.photos/400/300?image=102"},
}

func seedOrders(now time.Time) []models.Order {
	return []models.Order{
		{
			ID:              101,
			UserID:          2,
			CustomerName:    "customer1",
			CustomerPhone:   "012-3456789",
			CustomerAddress: "123 Jalan Test, KL",
			Items: []models.OrderItem{
				{ID: 1, MenuItem: seedMenuItems[0], Quantity: 2, Subtotal: 12.00},
				{ID: 2, MenuItem: seedMenuItems[4], Quantity: 1, Subtotal: 2.50},
			},
			TotalPrice:    14.50,
			OrderDate:     now.Add(-3 * 24 * time.Hour),
			Status:        models.StatusCompleted,
			PaymentMethod: models.PaymentCashOnDelivery,
		},
		{
			ID:              102,
			UserID:          3,
			CustomerName:    "customer2",
			CustomerPhone:   "019-8765432",
			CustomerAddress: "456 Lorong Cuba, PJ",
			Items: []models.OrderItem{
				{ID: 3, MenuItem: seedMenuItems[1], Quantity: 1, Subtotal: 8.00},
			},
			TotalPrice:    8.00,
			OrderDate:     now.Add(-2 * 24 * time.Hour),
			Status:        models.StatusInProgress,
			PaymentMethod: models.PaymentOnlineBanking,
		},
		{
			ID:              103,
			UserID:          2,
			CustomerName:    "customer1",
			CustomerPhone:   "012-3456789",
			CustomerAddress: "123 Jalan Test, KL",
			Items: []models.OrderItem{
				{ID: 4, MenuItem: seedMenuItems[3], Quantity: 1, Subtotal: 9.00},
				{ID: 5, MenuItem: seedMenuItems[5], Quantity: 2, Subtotal: 6.00},
			},
			TotalPrice:    15.00,
			OrderDate:     now.Add(-24 * time.Hour),
			Status:        models.StatusPending,
			PaymentMethod: models.PaymentCashOnDelivery,
		},
	}
}

// seed writes the initial dataset for any collection that is still absent.
// It runs on every startup and never touches existing data.
func (m *mockAPI) seed(ctx context.Context) {
	if !m.store.Has(ctx, KeyUsers) {
		m.store.Write(ctx, KeyUsers, seedUsers)
		m.store.Write(ctx, KeyPasswords, seedPasswords)
		m.logger.Info("seeded users")
	}
	if !m.store.Has(ctx, KeyMenuItems) {
		m.store.Write(ctx, KeyMenuItems, seedMenuItems)
		m.logger.Info("seeded menu items")
	}
	if !m.store.Has(ctx, KeyOrders) {
		m.store.Write(ctx, KeyOrders, seedOrders(time.Now()))
		m.logger.Info("seeded orders")
	}
}
