package services

import (
	"sync"

	"restaurant-backend/models"
)

// CartService holds the ephemeral cart. It never persists anything and
// never talks to the backend; checkout reads it and clears it.
type CartService interface {
	// AddItem inserts the item with quantity 1, or bumps the quantity of
	// an existing entry with the same id.
	AddItem(item models.MenuItem)
	// UpdateQuantity sets the quantity for id; zero or negative removes
	// the entry entirely.
	UpdateQuantity(id, quantity int)
	RemoveItem(id int)
	Clear()

	Items() []models.CartItem
	ItemCount() int
	CartTotal() float64
}

type cartServiceImpl struct {
	mu    sync.Mutex
	items []models.CartItem
}

func NewCartService() CartService {
	return &cartServiceImpl{}
}

func (s *cartServiceImpl) AddItem(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, models.CartItem{MenuItem: item, Quantity: 1})
}

func (s *cartServiceImpl) UpdateQuantity(id, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			return
		}
	}
}

func (s *cartServiceImpl) RemoveItem(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

func (s *cartServiceImpl) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func (s *cartServiceImpl) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *cartServiceImpl) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

func (s *cartServiceImpl) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
