package services

import (
	"shopfront/internal/domain"
	"shopfront/internal/repos"
)

type WishlistService struct {
	Repo    *repos.WishlistRepo
	Catalog *CatalogService
}

func NewWishlistService(r *repos.WishlistRepo, catalog *CatalogService) *WishlistService {
	return &WishlistService{Repo: r, Catalog: catalog}
}

func (s *WishlistService) Save(userID, productID string) error {
	return s.Repo.Add(userID, productID)
}

func (s *WishlistService) Unsave(userID, productID string) error {
	return s.Repo.Remove(userID, productID)
}

// List materializes the saved product ids into full catalog records in
// insertion order. Ids whose product has since been deleted are skipped.
func (s *WishlistService) List(userID string) ([]domain.Product, error) {
	ids, err := s.Repo.IDs(userID)
	if err != nil {
		return nil, err
	}
	prods, err := s.Catalog.ListProducts()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(prods))
	for _, p := range prods {
		byID[p.ID] = p
	}
	out := []domain.Product{}
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
