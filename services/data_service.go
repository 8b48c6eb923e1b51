package services

import (
	"context"
	"sort"
	"sync"

	"restaurant-backend/models"
	"restaurant-backend/repository"

	"go.uber.org/zap"
)

// CheckoutRequest carries the delivery details and the cart contents for a
// new order.
type CheckoutRequest struct {
	CustomerName    string               `json:"customer_name" binding:"required"`
	CustomerPhone   string               `json:"customer_phone" binding:"required"`
	CustomerAddress string               `json:"customer_address" binding:"required"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" binding:"required"`
	Items           []models.CartItem    `json:"-"`
}

// DataService caches the backend collections. Every mutation forwards to
// the backend and then re-fetches the affected collection, so the cache
// always reflects the last successful backend state.
type DataService interface {
	LoadAll(ctx context.Context)
	FetchMenuItems(ctx context.Context) *ServiceError
	FetchOrders(ctx context.Context) *ServiceError
	FetchCustomers(ctx context.Context) *ServiceError

	MenuItems() []models.MenuItem
	Orders() []models.Order
	Customers() []models.User

	AddMenuItem(ctx context.Context, draft models.MenuItemDraft) (*models.MenuItem, *ServiceError)
	UpdateMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, *ServiceError)
	DeleteMenuItem(ctx context.Context, id int) *ServiceError
	UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) (*models.Order, *ServiceError)
	SubmitOrder(ctx context.Context, req CheckoutRequest) (*models.Order, *ServiceError)

	Stats() DashboardStats
}

type dataServiceImpl struct {
	api    repository.API
	auth   AuthService
	logger *zap.Logger

	mu        sync.RWMutex
	menuItems []models.MenuItem
	orders    []models.Order
	customers []models.User
}

// NewDataService creates a DataService with empty caches; call LoadAll to
// populate them.
func NewDataService(api repository.API, auth AuthService, logger *zap.Logger) DataService {
	return &dataServiceImpl{api: api, auth: auth, logger: logger}
}

func (s *dataServiceImpl) LoadAll(ctx context.Context) {
	s.FetchMenuItems(ctx)
	s.FetchOrders(ctx)
	s.FetchCustomers(ctx)
}

func (s *dataServiceImpl) FetchMenuItems(ctx context.Context) *ServiceError {
	items, err := s.api.GetMenuItems(ctx)
	if err != nil {
		s.logger.Error("menu fetch failed", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to load menu"}
	}

	s.mu.Lock()
	s.menuItems = items
	s.mu.Unlock()
	return nil
}

func (s *dataServiceImpl) FetchOrders(ctx context.Context) *ServiceError {
	orders, err := s.api.GetOrders(ctx)
	if err != nil {
		s.logger.Error("orders fetch failed", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to load orders"}
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

func (s *dataServiceImpl) FetchCustomers(ctx context.Context) *ServiceError {
	customers, err := s.api.GetCustomers(ctx)
	if err != nil {
		s.logger.Error("customers fetch failed", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to load customers"}
	}

	s.mu.Lock()
	s.customers = customers
	s.mu.Unlock()
	return nil
}

func (s *dataServiceImpl) MenuItems() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MenuItem, len(s.menuItems))
	copy(out, s.menuItems)
	return out
}

func (s *dataServiceImpl) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *dataServiceImpl) Customers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.customers))
	copy(out, s.customers)
	return out
}

func (s *dataServiceImpl) AddMenuItem(ctx context.Context, draft models.MenuItemDraft) (*models.MenuItem, *ServiceError) {
	item, err := s.api.AddMenuItem(ctx, draft)
	if err != nil {
		s.logger.Error("menu add failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to add menu item"}
	}

	s.FetchMenuItems(ctx)
	return item, nil
}

func (s *dataServiceImpl) UpdateMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, *ServiceError) {
	updated, err := s.api.UpdateMenuItem(ctx, item)
	if err != nil {
		s.logger.Error("menu update failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update menu item"}
	}

	// Re-fetch even when the id was unknown; the cache tracks backend
	// state, not the outcome of one call.
	s.FetchMenuItems(ctx)

	if updated == nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Menu item not found"}
	}
	return updated, nil
}

func (s *dataServiceImpl) DeleteMenuItem(ctx context.Context, id int) *ServiceError {
	removed, err := s.api.DeleteMenuItem(ctx, id)
	if err != nil {
		s.logger.Error("menu delete failed", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete menu item"}
	}

	s.FetchMenuItems(ctx)

	if !removed {
		return &ServiceError{StatusCode: 404, Message: "Menu item not found"}
	}
	return nil
}

func (s *dataServiceImpl) UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) (*models.Order, *ServiceError) {
	if !status.Valid() {
		return nil, &ServiceError{StatusCode: 400, Message: "Unknown order status"}
	}

	order, err := s.api.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		s.logger.Error("order status update failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}

	s.FetchOrders(ctx)

	if order == nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
	}
	return order, nil
}

func (s *dataServiceImpl) SubmitOrder(ctx context.Context, req CheckoutRequest) (*models.Order, *ServiceError) {
	if len(req.Items) == 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Your cart is empty"}
	}
	if !req.PaymentMethod.Valid() {
		return nil, &ServiceError{StatusCode: 400, Message: "Unknown payment method"}
	}

	userID := models.GuestUserID
	if state, user := s.auth.Current(); state == SessionAuthenticated {
		userID = user.ID
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	total := 0.0
	for i, ci := range req.Items {
		subtotal := ci.Price * float64(ci.Quantity)
		items = append(items, models.OrderItem{
			ID:       i + 1,
			MenuItem: ci.MenuItem,
			Quantity: ci.Quantity,
			Subtotal: subtotal,
		})
		total += subtotal
	}

	draft := models.OrderDraft{
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
		TotalPrice:      total,
		Status:          models.StatusPending,
		PaymentMethod:   req.PaymentMethod,
	}

	order, err := s.api.AddOrder(ctx, draft)
	if err != nil {
		s.logger.Error("order submit failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order"}
	}

	s.FetchOrders(ctx)
	return order, nil
}

// DashboardStats aggregates the admin dashboard numbers from the caches.
type DashboardStats struct {
	TotalIncome    float64       `json:"total_income"`
	TotalOrders    int           `json:"total_orders"`
	TotalCustomers int           `json:"total_customers"`
	TotalMenuItems int           `json:"total_menu_items"`
	PendingOrders  int           `json:"pending_orders"`
	DailyIncome    []DailyIncome `json:"daily_income"`
	PopularItems   []PopularItem `json:"popular_items"`
}

// DailyIncome is completed-order income for one calendar day.
type DailyIncome struct {
	Date   string  `json:"date"`
	Income float64 `json:"income"`
}

// PopularItem is a menu item name with the total quantity ever ordered.
type PopularItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (s *dataServiceImpl) Stats() DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := DashboardStats{
		TotalOrders:    len(s.orders),
		TotalCustomers: len(s.customers),
		TotalMenuItems: len(s.menuItems),
	}

	incomeByDay := map[string]float64{}
	itemCounts := map[string]int{}
	for _, o := range s.orders {
		if o.Status == models.StatusCompleted {
			stats.TotalIncome += o.TotalPrice
			incomeByDay[o.OrderDate.Format("2006-01-02")] += o.TotalPrice
		}
		if o.Status == models.StatusPending {
			stats.PendingOrders++
		}
		for _, it := range o.Items {
			itemCounts[it.MenuItem.Name] += it.Quantity
		}
	}

	for date, income := range incomeByDay {
		stats.DailyIncome = append(stats.DailyIncome, DailyIncome{Date: date, Income: income})
	}
	sort.Slice(stats.DailyIncome, func(i, j int) bool {
		return stats.DailyIncome[i].Date < stats.DailyIncome[j].Date
	})
	if len(stats.DailyIncome) > 7 {
		stats.DailyIncome = stats.DailyIncome[len(stats.DailyIncome)-7:]
	}

	for name, count := range itemCounts {
		stats.PopularItems = append(stats.PopularItems, PopularItem{Name: name, Count: count})
	}
	sort.Slice(stats.PopularItems, func(i, j int) bool {
		if stats.PopularItems[i].Count != stats.PopularItems[j].Count {
			return stats.PopularItems[i].Count > stats.PopularItems[j].Count
		}
		return stats.PopularItems[i].Name < stats.PopularItems[j].Name
	})
	if len(stats.PopularItems) > 5 {
		stats.PopularItems = stats.PopularItems[:5]
	}

	return stats
}
