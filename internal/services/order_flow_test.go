package services_test

import (
	"testing"

	"shopfront/internal/domain"
	"shopfront/internal/repos"
	"shopfront/internal/services"
	"shopfront/internal/store"
)

func newOrders(t *testing.T) *services.OrderService {
	t.Helper()
	st := store.NewMemoryStore()
	return services.NewOrderService(repos.NewOrderRepo(st))
}

func TestCreateOrder(t *testing.T) {
	svc := newOrders(t)

	in := services.CheckoutInput{
		CustomerName: "Tester", CustomerEmail: "t@e.com", Address: "1 Test Way",
		Items: []domain.OrderItem{
			{ProductID: "a", Title: "A", Price: 10, Quantity: 2},
			{ProductID: "b", Title: "B", Price: 5, Quantity: 1},
		},
	}
	o, err := svc.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if o.Status != domain.StatusReceived {
		t.Fatalf("want RECEIVED, got %s", o.Status)
	}
	if o.Total != 25 {
		t.Fatalf("want total 25, got %v", o.Total)
	}
	if o.UserID != domain.GuestUserID {
		t.Fatalf("anonymous checkout should be guest, got %s", o.UserID)
	}

	// immediately readable, distinct from seeded ids
	got, err := svc.Get(o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != o.ID || len(got.Items) != 2 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	o2, err := svc.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if o2.ID == o.ID {
		t.Fatal("order ids must be unique")
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc := newOrders(t)

	if _, err := svc.Create(services.CheckoutInput{CustomerName: "T"}); !domain.IsValidation(err) {
		t.Fatalf("want validation error for empty items, got %v", err)
	}
	if _, err := svc.Create(services.CheckoutInput{
		Items: []domain.OrderItem{{ProductID: "a", Price: 10, Quantity: 0}},
	}); !domain.IsValidation(err) {
		t.Fatalf("want validation error for zero quantity, got %v", err)
	}

	// caller total is verified against item prices, not stored verbatim
	if _, err := svc.Create(services.CheckoutInput{
		Items: []domain.OrderItem{{ProductID: "a", Price: 10, Quantity: 2}},
		Total: 19.99,
	}); !domain.IsValidation(err) {
		t.Fatalf("want validation error for total mismatch, got %v", err)
	}
	if _, err := svc.Create(services.CheckoutInput{
		Items: []domain.OrderItem{{ProductID: "a", Price: 10, Quantity: 2}},
		Total: 20,
	}); err != nil {
		t.Fatalf("matching total rejected: %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc := newOrders(t)

	o, err := svc.Create(services.CheckoutInput{
		Items: []domain.OrderItem{{ProductID: "a", Title: "A", Price: 10, Quantity: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	// repeating the same status is a harmless overwrite
	for i := 0; i < 2; i++ {
		got, err := svc.UpdateStatus(o.ID, domain.StatusShipped)
		if err != nil {
			t.Fatal(err)
		}
		if got.Status != domain.StatusShipped {
			t.Fatalf("want SHIPPED, got %s", got.Status)
		}
	}

	// any-to-any transitions are allowed, even backwards
	if _, err := svc.UpdateStatus(o.ID, domain.StatusReceived); err != nil {
		t.Fatal(err)
	}

	// but the value itself must be a known status
	if _, err := svc.UpdateStatus(o.ID, "TELEPORTED"); !domain.IsValidation(err) {
		t.Fatalf("want validation error for unknown status, got %v", err)
	}
	if _, err := svc.UpdateStatus("missing", domain.StatusShipped); err != domain.ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListForUser(t *testing.T) {
	svc := newOrders(t)

	// seeded: ord-1003 belongs to user-1 (user@test.com), two guest orders
	mine, err := svc.ListForUser("user-1", "user@test.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].ID != "ord-1003" {
		t.Fatalf("want just ord-1003, got %+v", mine)
	}

	// email match catches guest checkouts by the same person
	alice, err := svc.ListForUser("", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(alice) != 1 || alice[0].ID != "ord-1001" {
		t.Fatalf("want just ord-1001, got %+v", alice)
	}

	all, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("ledger list should be unfiltered: got %d", len(all))
	}
}

func TestOrderItemsAreSnapshots(t *testing.T) {
	st := store.NewMemoryStore()
	prods := repos.NewProductRepo(st)
	reviews := repos.NewReviewRepo(st)
	catalog := services.NewCatalogService(prods, reviews)
	orders := services.NewOrderService(repos.NewOrderRepo(st))

	p, err := catalog.GetProduct("2")
	if err != nil {
		t.Fatal(err)
	}
	o, err := orders.Create(services.CheckoutInput{
		Items: []domain.OrderItem{{ProductID: p.ID, Title: p.Title, Price: p.Price, Quantity: 1, ImageURL: p.ImageURL}},
	})
	if err != nil {
		t.Fatal(err)
	}

	// later catalog changes must not leak into the stored order
	if _, err := catalog.UpdateProduct("2", services.ProductUpdate{Price: floatPtr(999)}); err != nil {
		t.Fatal(err)
	}
	got, err := orders.Get(o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Items[0].Price != 249.50 || got.Total != 249.50 {
		t.Fatalf("order snapshot tracked a later price change: %+v", got.Items[0])
	}
}
