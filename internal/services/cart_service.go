package services

import (
	"sync"

	"shopfront/internal/domain"
)

// CartService holds one cart per session id, in memory only. Carts are owned
// by the calling session and never touch the persisted store; a restart
// empties them.
type CartService struct {
	mu    sync.Mutex
	carts map[string][]domain.CartLine
}

func NewCartService() *CartService {
	return &CartService{carts: map[string][]domain.CartLine{}}
}

type CartView struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
}

// Add merges by product id: adding a product already in the cart sums the
// quantities instead of duplicating the line. Quantities below 1 are ignored.
func (s *CartService) Add(sessionID string, p domain.Product, qty int) {
	if qty < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].Product.ID == p.ID {
			lines[i].Quantity += qty
			return
		}
	}
	s.carts[sessionID] = append(lines, domain.CartLine{Product: p, Quantity: qty})
}

// SetQuantity replaces a line's quantity; qty < 1 is ignored.
func (s *CartService) SetQuantity(sessionID, productID string, qty int) {
	if qty < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].Product.ID == productID {
			lines[i].Quantity = qty
			return
		}
	}
}

func (s *CartService) Remove(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].Product.ID == productID {
			s.carts[sessionID] = append(lines[:i:i], lines[i+1:]...)
			return
		}
	}
}

func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func (s *CartService) View(sessionID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sessionID]
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return CartView{Lines: out, Total: total(out)}
}

func (s *CartService) Total(sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.carts[sessionID])
}

func total(lines []domain.CartLine) float64 {
	t := 0.0
	for _, l := range lines {
		t += l.Product.Price * float64(l.Quantity)
	}
	return t
}
