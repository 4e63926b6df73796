package services_test

import (
	"testing"

	"shopfront/internal/repos"
	"shopfront/internal/services"
	"shopfront/internal/store"
)

func newWishlist(t *testing.T) (*services.WishlistService, *services.CatalogService) {
	t.Helper()
	st := store.NewMemoryStore()
	prods := repos.NewProductRepo(st)
	reviews := repos.NewReviewRepo(st)
	catalog := services.NewCatalogService(prods, reviews)
	return services.NewWishlistService(repos.NewWishlistRepo(st), catalog), catalog
}

func TestWishlistIdempotence(t *testing.T) {
	svc, _ := newWishlist(t)
	uid := "user-1"

	if err := svc.Save(uid, "1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Save(uid, "1"); err != nil {
		t.Fatal(err)
	}
	items, err := svc.List(uid)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("double save should not duplicate: got %d items", len(items))
	}

	// removing something absent never fails
	if err := svc.Unsave(uid, "not-saved"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Unsave(uid, "1"); err != nil {
		t.Fatal(err)
	}
	items, err = svc.List(uid)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("want empty wishlist, got %d items", len(items))
	}
}

func TestWishlistMaterializesProducts(t *testing.T) {
	svc, catalog := newWishlist(t)
	uid := "user-1"

	for _, pid := range []string{"3", "1", "2"} {
		if err := svc.Save(uid, pid); err != nil {
			t.Fatal(err)
		}
	}
	items, err := svc.List(uid)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("want 3 products, got %d", len(items))
	}
	// insertion order, full catalog records with derived fields
	if items[0].ID != "3" || items[1].ID != "1" || items[2].ID != "2" {
		t.Fatalf("insertion order lost: %s %s %s", items[0].ID, items[1].ID, items[2].ID)
	}
	if items[1].ReviewCount != 2 {
		t.Fatalf("materialized product missing derived fields: %+v", items[1])
	}

	// deleted products drop out silently
	if err := catalog.DeleteProduct("1"); err != nil {
		t.Fatal(err)
	}
	items, err = svc.List(uid)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("deleted product should be skipped: got %d", len(items))
	}
}

func TestWishlistUntouchedUserIsEmpty(t *testing.T) {
	svc, _ := newWishlist(t)
	items, err := svc.List("never-seen")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("want implicit empty list, got %d", len(items))
	}
}
