package services

import (
	"strings"

	"shopfront/internal/domain"
	"shopfront/internal/repos"

	"github.com/google/uuid"
)

// CatalogService owns product writes and the two catalog invariants:
// images is never empty and imageUrl always equals images[0], and
// rating/reviewCount are projected from the review ledger on every read.
type CatalogService struct {
	Prods   *repos.ProductRepo
	Reviews *repos.ReviewRepo
}

func NewCatalogService(prods *repos.ProductRepo, reviews *repos.ReviewRepo) *CatalogService {
	return &CatalogService{Prods: prods, Reviews: reviews}
}

type ProductInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images"`
}

// ProductUpdate carries a partial update; nil fields are left unchanged.
type ProductUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	Stock       *int      `json:"stock"`
	ImageURL    *string   `json:"imageUrl"`
	Images      *[]string `json:"images"`
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	prods, err := s.Prods.All()
	if err != nil {
		return nil, err
	}
	reviews, err := s.Reviews.All()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(prods))
	for i, p := range prods {
		out[i] = project(p, reviews)
	}
	return out, nil
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	prods, err := s.ListProducts()
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range prods {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (s *CatalogService) CreateProduct(in ProductInput) (domain.Product, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Product{}, domain.Invalid("title", "must not be empty")
	}
	if in.Price < 0 {
		return domain.Product{}, domain.Invalid("price", "must not be negative")
	}
	if in.Stock < 0 {
		return domain.Product{}, domain.Invalid("stock", "must not be negative")
	}
	images := in.Images
	if len(images) == 0 && in.ImageURL != "" {
		images = []string{in.ImageURL}
	}
	if len(images) == 0 {
		return domain.Product{}, domain.Invalid("images", "at least one image is required")
	}

	p := domain.Product{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Stock:       in.Stock,
		ImageURL:    images[0],
		Images:      images,
	}
	_, err := s.Prods.Update(func(all []domain.Product) ([]domain.Product, error) {
		return append(all, p), nil
	})
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) UpdateProduct(id string, up ProductUpdate) (domain.Product, error) {
	if up.Title != nil && strings.TrimSpace(*up.Title) == "" {
		return domain.Product{}, domain.Invalid("title", "must not be empty")
	}
	if up.Price != nil && *up.Price < 0 {
		return domain.Product{}, domain.Invalid("price", "must not be negative")
	}
	if up.Stock != nil && *up.Stock < 0 {
		return domain.Product{}, domain.Invalid("stock", "must not be negative")
	}

	var updated domain.Product
	_, err := s.Prods.Update(func(all []domain.Product) ([]domain.Product, error) {
		for i := range all {
			if all[i].ID != id {
				continue
			}
			p := all[i]
			if up.Title != nil {
				p.Title = strings.TrimSpace(*up.Title)
			}
			if up.Description != nil {
				p.Description = *up.Description
			}
			if up.Price != nil {
				p.Price = *up.Price
			}
			if up.Category != nil {
				p.Category = *up.Category
			}
			if up.Stock != nil {
				p.Stock = *up.Stock
			}
			// Image sync: a non-empty images list wins and drives imageUrl;
			// a lone imageUrl change is promoted to a one-element list.
			switch {
			case up.Images != nil && len(*up.Images) > 0:
				p.Images = *up.Images
				p.ImageURL = p.Images[0]
			case up.ImageURL != nil && *up.ImageURL != "":
				p.ImageURL = *up.ImageURL
				p.Images = []string{*up.ImageURL}
			}
			all[i] = p
			updated = p
			return all, nil
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return domain.Product{}, err
	}
	reviews, err := s.Reviews.All()
	if err != nil {
		return domain.Product{}, err
	}
	return project(updated, reviews), nil
}

// DeleteProduct removes the product from the catalog. Reviews and order item
// snapshots are intentionally left behind as historical records.
func (s *CatalogService) DeleteProduct(id string) error {
	_, err := s.Prods.Update(func(all []domain.Product) ([]domain.Product, error) {
		out := all[:0]
		for _, p := range all {
			if p.ID != id {
				out = append(out, p)
			}
		}
		return out, nil
	})
	return err
}

// project fills the derived fields and repairs the image invariant for
// records written before the invariant existed.
func project(p domain.Product, reviews []domain.Review) domain.Product {
	if len(p.Images) == 0 && p.ImageURL != "" {
		p.Images = []string{p.ImageURL}
	}
	if len(p.Images) > 0 {
		p.ImageURL = p.Images[0]
	}
	sum, count := 0, 0
	for _, r := range reviews {
		if r.ProductID == p.ID {
			sum += r.Rating
			count++
		}
	}
	p.ReviewCount = count
	if count > 0 {
		p.Rating = float64(sum) / float64(count)
	} else {
		p.Rating = 0
	}
	return p
}
