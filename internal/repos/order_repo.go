package repos

import (
	"shopfront/internal/domain"
	"shopfront/internal/store"
)

type OrderRepo struct {
	c *store.Collection[[]domain.Order]
}

func NewOrderRepo(s store.Store) *OrderRepo {
	return &OrderRepo{c: store.NewCollection(s, OrdersCollection, seedOrders)}
}

func (r *OrderRepo) All() ([]domain.Order, error) { return r.c.All() }

func (r *OrderRepo) Update(fn func([]domain.Order) ([]domain.Order, error)) ([]domain.Order, error) {
	return r.c.Update(fn)
}
