package models

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "In Progress"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentOnlineBanking  PaymentMethod = "Online Banking"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCashOnDelivery || p == PaymentOnlineBanking
}

// OrderItem embeds a value snapshot of the menu item as it was at order
// time, so later menu edits or deletions never alter past orders.
type OrderItem struct {
	ID       int      `json:"id"`
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
	Subtotal float64  `json:"subtotal"`
}

type Order struct {
	ID              int           `json:"id"`
	UserID          int           `json:"userId"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerAddress string        `json:"customerAddress"`
	Items           []OrderItem   `json:"items"`
	TotalPrice      float64       `json:"totalPrice"`
	OrderDate       time.Time     `json:"orderDate"`
	Status          OrderStatus   `json:"status"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
}

// OrderDraft is an order before the backend assigns its id and date.
type OrderDraft struct {
	UserID          int           `json:"userId"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerAddress string        `json:"customerAddress"`
	Items           []OrderItem   `json:"items"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          OrderStatus   `json:"status"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
}
