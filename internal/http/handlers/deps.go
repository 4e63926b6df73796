package handlers

import (
	"shopfront/internal/repos"
	"shopfront/internal/services"
	"shopfront/internal/store"
)

type Deps struct {
	ProductHandler  *ProductHandler
	ReviewHandler   *ReviewHandler
	OrderHandler    *OrderHandler
	WishlistHandler *WishlistHandler
	CartHandler     *CartHandler
	AdminHandler    *AdminHandler
	PageHandler     *PageHandler
}

func NewDeps(st store.Store, auth *services.AuthService) *Deps {
	prodRepo := repos.NewProductRepo(st)
	orderRepo := repos.NewOrderRepo(st)
	reviewRepo := repos.NewReviewRepo(st)
	wishRepo := repos.NewWishlistRepo(st)

	catalogSvc := services.NewCatalogService(prodRepo, reviewRepo)
	reviewSvc := services.NewReviewService(reviewRepo, orderRepo)
	orderSvc := services.NewOrderService(orderRepo)
	wishSvc := services.NewWishlistService(wishRepo, catalogSvc)
	cartSvc := services.NewCartService()

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		ReviewHandler:   &ReviewHandler{Reviews: reviewSvc},
		OrderHandler:    &OrderHandler{Orders: orderSvc, Cart: cartSvc},
		WishlistHandler: &WishlistHandler{Wish: wishSvc},
		CartHandler:     &CartHandler{Cart: cartSvc, Catalog: catalogSvc},
		AdminHandler:    &AdminHandler{Catalog: catalogSvc, Orders: orderSvc},
		PageHandler:     &PageHandler{Catalog: catalogSvc, Reviews: reviewSvc},
	}
}
