package models

// CartItem lives only in the in-memory cart; it is never persisted.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}
