package services

import (
	"sort"
	"strings"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/repos"

	"github.com/google/uuid"
)

// ReviewService gates review writes on purchase history: a user may only
// review a product that appears in one of their orders. Order status is
// irrelevant (a cancelled purchase still counts); that is deliberate policy.
type ReviewService struct {
	Reviews *repos.ReviewRepo
	Orders  *repos.OrderRepo
}

func NewReviewService(reviews *repos.ReviewRepo, orders *repos.OrderRepo) *ReviewService {
	return &ReviewService{Reviews: reviews, Orders: orders}
}

// List returns all reviews for a product, newest first.
func (s *ReviewService) List(productID string) ([]domain.Review, error) {
	all, err := s.Reviews.All()
	if err != nil {
		return nil, err
	}
	out := []domain.Review{}
	for _, r := range all {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	// RFC3339 UTC timestamps sort lexicographically.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (s *ReviewService) CanReview(userID, productID string) (bool, error) {
	orders, err := s.Orders.All()
	if err != nil {
		return false, err
	}
	for _, o := range orders {
		if o.UserID != userID {
			continue
		}
		for _, it := range o.Items {
			if it.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

// Add validates eligibility at write time, not just in the UI.
func (s *ReviewService) Add(productID, userID, userName string, rating int, comment string) (domain.Review, error) {
	if rating < 1 || rating > 5 {
		return domain.Review{}, domain.Invalid("rating", "must be between 1 and 5")
	}
	if strings.TrimSpace(comment) == "" {
		return domain.Review{}, domain.Invalid("comment", "must not be empty")
	}
	ok, err := s.CanReview(userID, productID)
	if err != nil {
		return domain.Review{}, err
	}
	if !ok {
		return domain.Review{}, domain.ErrNotEligible
	}

	rev := domain.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	_, err = s.Reviews.Update(func(all []domain.Review) ([]domain.Review, error) {
		return append([]domain.Review{rev}, all...), nil
	})
	if err != nil {
		return domain.Review{}, err
	}
	return rev, nil
}
