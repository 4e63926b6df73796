package services

import (
	"math"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/repos"

	"github.com/google/uuid"
)

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

type CheckoutInput struct {
	UserID        string
	CustomerName  string
	CustomerEmail string
	Address       string
	Items         []domain.OrderItem
	// Total as computed by the caller. It is recomputed server-side and a
	// mismatch is rejected rather than stored verbatim.
	Total float64
}

// Create places a new order with status RECEIVED. Item prices and titles are
// stored as snapshots; later catalog changes do not affect them.
func (s *OrderService) Create(in CheckoutInput) (domain.Order, error) {
	if len(in.Items) == 0 {
		return domain.Order{}, domain.Invalid("items", "order must contain at least one item")
	}
	total := 0.0
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return domain.Order{}, domain.Invalid("quantity", "must be at least 1")
		}
		if it.Price < 0 {
			return domain.Order{}, domain.Invalid("price", "must not be negative")
		}
		total += it.Price * float64(it.Quantity)
	}
	if in.Total != 0 && math.Abs(in.Total-total) > 0.005 {
		return domain.Order{}, domain.Invalid("total", "does not match item prices")
	}

	userID := in.UserID
	if userID == "" {
		userID = domain.GuestUserID
	}
	o := domain.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Address:       in.Address,
		Total:         total,
		Status:        domain.StatusReceived,
		Items:         in.Items,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	_, err := s.Orders.Update(func(all []domain.Order) ([]domain.Order, error) {
		return append([]domain.Order{o}, all...), nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (s *OrderService) Get(id string) (domain.Order, error) {
	all, err := s.Orders.All()
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range all {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

// List returns every order, unfiltered. Callers scope the result to the
// requesting identity themselves.
func (s *OrderService) List() ([]domain.Order, error) {
	return s.Orders.All()
}

// ListForUser scopes orders to a requester by user id or checkout email.
func (s *OrderService) ListForUser(userID, email string) ([]domain.Order, error) {
	all, err := s.Orders.All()
	if err != nil {
		return nil, err
	}
	out := []domain.Order{}
	for _, o := range all {
		if (userID != "" && o.UserID == userID) || (email != "" && o.CustomerEmail == email) {
			out = append(out, o)
		}
	}
	return out, nil
}

// UpdateStatus overwrites the status unconditionally; repeating the same
// status is a harmless no-op. Transition legality is not enforced (documented
// policy), but the value must be a known status.
func (s *OrderService) UpdateStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, domain.Invalid("status", "unknown order status")
	}
	var updated domain.Order
	_, err := s.Orders.Update(func(all []domain.Order) ([]domain.Order, error) {
		for i := range all {
			if all[i].ID == id {
				all[i].Status = status
				updated = all[i]
				return all, nil
			}
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return domain.Order{}, err
	}
	return updated, nil
}
