package repos

import (
	"shopfront/internal/domain"
	"shopfront/internal/store"
)

type ProductRepo struct {
	c *store.Collection[[]domain.Product]
}

func NewProductRepo(s store.Store) *ProductRepo {
	return &ProductRepo{c: store.NewCollection(s, ProductsCollection, seedProducts)}
}

func (r *ProductRepo) All() ([]domain.Product, error) { return r.c.All() }

func (r *ProductRepo) Update(fn func([]domain.Product) ([]domain.Product, error)) ([]domain.Product, error) {
	return r.c.Update(fn)
}
