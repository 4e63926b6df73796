package repos

import (
	"shopfront/internal/domain"
	"shopfront/internal/store"
)

type ReviewRepo struct {
	c *store.Collection[[]domain.Review]
}

func NewReviewRepo(s store.Store) *ReviewRepo {
	return &ReviewRepo{c: store.NewCollection(s, ReviewsCollection, seedReviews)}
}

func (r *ReviewRepo) All() ([]domain.Review, error) { return r.c.All() }

func (r *ReviewRepo) Update(fn func([]domain.Review) ([]domain.Review, error)) ([]domain.Review, error) {
	return r.c.Update(fn)
}
