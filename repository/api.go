package repository

import (
	"context"

	"restaurant-backend/models"
)

// Store keys for each persisted collection.
const (
	KeyUsers     = "users"
	KeyPasswords = "passwords"
	KeyMenuItems = "menuItems"
	KeyOrders    = "orders"
	KeySession   = "session"
)

// API is the backend contract the client state layers talk to. Expected
// business failures (unknown id, duplicate username, bad credentials) are
// signalled by a nil result, not an error.
type API interface {
	// Login returns the matching user, or nil on any mismatch. Unknown
	// username and wrong password are deliberately indistinguishable.
	Login(ctx context.Context, username, password string) (*models.User, error)
	// Register creates a customer account, or returns nil when the
	// username is already taken (case-sensitive).
	Register(ctx context.Context, username, password string) (*models.User, error)

	GetMenuItems(ctx context.Context) ([]models.MenuItem, error)
	AddMenuItem(ctx context.Context, draft models.MenuItemDraft) (*models.MenuItem, error)
	// UpdateMenuItem replaces the stored item, or returns nil when the id
	// is unknown.
	UpdateMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, error)
	// DeleteMenuItem reports whether an item was actually removed.
	DeleteMenuItem(ctx context.Context, id int) (bool, error)

	GetOrders(ctx context.Context) ([]models.Order, error)
	// AddOrder assigns the next order id and stamps the order date.
	AddOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error)
	// UpdateOrderStatus mutates only the status, or returns nil when the
	// id is unknown.
	UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) (*models.Order, error)

	// GetCustomers lists users with the customer role.
	GetCustomers(ctx context.Context) ([]models.User, error)
}
