package services_test

import (
	"testing"

	"shopfront/internal/domain"
	"shopfront/internal/services"
)

func TestCartMerge(t *testing.T) {
	cart := services.NewCartService()
	p := domain.Product{ID: "p1", Title: "Widget", Price: 12.50, Images: []string{"x"}, ImageURL: "x"}

	cart.Add("sid", p, 2)
	cart.Add("sid", p, 3)

	cv := cart.View("sid")
	if len(cv.Lines) != 1 {
		t.Fatalf("merge failed: %d lines", len(cv.Lines))
	}
	if cv.Lines[0].Quantity != 5 {
		t.Fatalf("want qty 5, got %d", cv.Lines[0].Quantity)
	}
	if cv.Total != 62.50 {
		t.Fatalf("want total 62.50, got %v", cv.Total)
	}
}

func TestCartQuantityRules(t *testing.T) {
	cart := services.NewCartService()
	p := domain.Product{ID: "p1", Price: 10}
	cart.Add("sid", p, 1)

	// qty < 1 is ignored everywhere
	cart.Add("sid", p, 0)
	cart.Add("sid", p, -3)
	cart.SetQuantity("sid", "p1", 0)
	if got := cart.View("sid").Lines[0].Quantity; got != 1 {
		t.Fatalf("invalid quantities should be ignored, got %d", got)
	}

	cart.SetQuantity("sid", "p1", 4)
	if got := cart.View("sid").Lines[0].Quantity; got != 4 {
		t.Fatalf("want qty 4, got %d", got)
	}
	if got := cart.Total("sid"); got != 40 {
		t.Fatalf("want total 40, got %v", got)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := services.NewCartService()
	cart.Add("sid", domain.Product{ID: "a", Price: 1}, 1)
	cart.Add("sid", domain.Product{ID: "b", Price: 2}, 1)

	cart.Remove("sid", "a")
	if cv := cart.View("sid"); len(cv.Lines) != 1 || cv.Lines[0].Product.ID != "b" {
		t.Fatalf("remove failed: %+v", cv.Lines)
	}
	cart.Remove("sid", "a") // absent, no-op

	cart.Clear("sid")
	if cv := cart.View("sid"); len(cv.Lines) != 0 || cv.Total != 0 {
		t.Fatalf("clear failed: %+v", cv)
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	cart := services.NewCartService()
	cart.Add("sid-a", domain.Product{ID: "a", Price: 1}, 1)
	if cv := cart.View("sid-b"); len(cv.Lines) != 0 {
		t.Fatalf("cart leaked across sessions: %+v", cv.Lines)
	}
}
