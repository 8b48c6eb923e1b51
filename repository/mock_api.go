package repository

import (
	"context"
	"time"

	"restaurant-backend/database"
	"restaurant-backend/models"

	"go.uber.org/zap"
)

// Base latencies per operation group. The delay is part of the contract:
// callers rely on it to exercise their loading states.
const (
	latencyAuth      = 500 * time.Millisecond
	latencyList      = 300 * time.Millisecond
	latencyMenuWrite = 400 * time.Millisecond
	latencyAddOrder  = 600 * time.Millisecond
)

// mockAPI implements API over the local Store, standing in for a remote
// backend service.
type mockAPI struct {
	store  *database.Store
	scale  float64
	logger *zap.Logger
}

// NewMockAPI builds the simulated backend and seeds the store with the
// initial dataset for any collection that does not exist yet. Existing data
// is never overwritten.
func NewMockAPI(ctx context.Context, store *database.Store, latencyScale float64, logger *zap.Logger) API {
	api := &mockAPI{store: store, scale: latencyScale, logger: logger}
	api.seed(ctx)
	return api
}

func (m *mockAPI) sleep(base time.Duration) {
	if m.scale <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(base) * m.scale))
}

func (m *mockAPI) users(ctx context.Context) []models.User {
	users := []models.User{}
	m.store.Read(ctx, KeyUsers, &users)
	return users
}

func (m *mockAPI) passwords(ctx context.Context) map[int]string {
	passwords := map[int]string{}
	m.store.Read(ctx, KeyPasswords, &passwords)
	return passwords
}

func (m *mockAPI) menuItems(ctx context.Context) []models.MenuItem {
	items := []models.MenuItem{}
	m.store.Read(ctx, KeyMenuItems, &items)
	return items
}

func (m *mockAPI) orders(ctx context.Context) []models.Order {
	orders := []models.Order{}
	m.store.Read(ctx, KeyOrders, &orders)
	return orders
}

func nextUserID(users []models.User) int {
	max := 0
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func nextMenuItemID(items []models.MenuItem) int {
	max := 0
	for _, i := range items {
		if i.ID > max {
			max = i.ID
		}
	}
	return max + 1
}

// Order ids start above 100 so they read like ticket numbers even on an
// empty collection.
func nextOrderID(orders []models.Order) int {
	max := 100
	for _, o := range orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

func (m *mockAPI) Login(ctx context.Context, username, password string) (*models.User, error) {
	m.sleep(latencyAuth)

	passwords := m.passwords(ctx)
	for _, u := range m.users(ctx) {
		if u.Username == username && passwords[u.ID] == password {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *mockAPI) Register(ctx context.Context, username, password string) (*models.User, error) {
	m.sleep(latencyAuth)

	users := m.users(ctx)
	for _, u := range users {
		if u.Username == username {
			return nil, nil
		}
	}

	user := models.User{
		ID:       nextUserID(users),
		Username: username,
		Role:     models.RoleCustomer,
	}
	users = append(users, user)

	passwords := m.passwords(ctx)
	passwords[user.ID] = password

	m.store.Write(ctx, KeyUsers, users)
	m.store.Write(ctx, KeyPasswords, passwords)

	m.logger.Info("user registered", zap.Int("id", user.ID), zap.String("username", user.Username))
	return &user, nil
}

func (m *mockAPI) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	m.sleep(latencyList)
	return m.menuItems(ctx), nil
}

func (m *mockAPI) AddMenuItem(ctx context.Context, draft models.MenuItemDraft) (*models.MenuItem, error) {
	m.sleep(latencyMenuWrite)

	items := m.menuItems(ctx)
	item := models.MenuItem{
		ID:          nextMenuItemID(items),
		Name:        draft.Name,
		Category:    draft.Category,
		Price:       draft.Price,
		Description: draft.Description,
		Image:       draft.Image,
	}
	items = append(items, item)
	m.store.Write(ctx, KeyMenuItems, items)
	return &item, nil
}

func (m *mockAPI) UpdateMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	m.sleep(latencyMenuWrite)

	items := m.menuItems(ctx)
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			m.store.Write(ctx, KeyMenuItems, items)
			return &item, nil
		}
	}
	return nil, nil
}

func (m *mockAPI) DeleteMenuItem(ctx context.Context, id int) (bool, error) {
	m.sleep(latencyMenuWrite)

	items := m.menuItems(ctx)
	kept := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	m.store.Write(ctx, KeyMenuItems, kept)
	return len(kept) < len(items), nil
}

func (m *mockAPI) GetOrders(ctx context.Context) ([]models.Order, error) {
	m.sleep(latencyList)
	return m.orders(ctx), nil
}

func (m *mockAPI) AddOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	m.sleep(latencyAddOrder)

	orders := m.orders(ctx)
	order := models.Order{
		ID:              nextOrderID(orders),
		UserID:          draft.UserID,
		CustomerName:    draft.CustomerName,
		CustomerPhone:   draft.CustomerPhone,
		CustomerAddress: draft.CustomerAddress,
		Items:           draft.Items,
		TotalPrice:      draft.TotalPrice,
		OrderDate:       time.Now(),
		Status:          draft.Status,
		PaymentMethod:   draft.PaymentMethod,
	}
	orders = append(orders, order)
	m.store.Write(ctx, KeyOrders, orders)

	m.logger.Info("order created", zap.Int("id", order.ID), zap.Int("user_id", order.UserID))
	return &order, nil
}

func (m *mockAPI) UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) (*models.Order, error) {
	m.sleep(latencyList)

	orders := m.orders(ctx)
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			m.store.Write(ctx, KeyOrders, orders)
			order := orders[i]
			return &order, nil
		}
	}
	return nil, nil
}

func (m *mockAPI) GetCustomers(ctx context.Context) ([]models.User, error) {
	m.sleep(latencyList)

	customers := []models.User{}
	for _, u := range m.users(ctx) {
		if u.Role == models.RoleCustomer {
			customers = append(customers, u)
		}
	}
	return customers, nil
}
