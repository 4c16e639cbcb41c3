package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"abc-retail-backend/internal/model"
	"abc-retail-backend/internal/repository"
)

func newCartFixture(t *testing.T) (CartService, *model.User, *fakeProducts) {
	t.Helper()
	db := testDB(t)
	user := seedUser(t, db, "jane")
	products := newFakeProducts(&model.ProductEntity{
		TableEntity:    model.TableEntity{RowKey: "p1"},
		ProductName:    "Laptop",
		PriceString:    "249.50",
		StockAvailable: 5,
		ImageUrl:       "https://img.example.com/laptop.png",
	})
	return NewCartService(repository.NewCartRepository(db), products), user, products
}

func TestAddSnapshotsProduct(t *testing.T) {
	svc, user, _ := newCartFixture(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, user.UserID, "p1", 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.ProductName != "Laptop" {
		t.Errorf("product name = %q, want %q", item.ProductName, "Laptop")
	}
	if item.UnitPrice.StringFixed(2) != "249.50" {
		t.Errorf("unit price = %s, want 249.50", item.UnitPrice.StringFixed(2))
	}
	if item.ProductImageUrl == nil || *item.ProductImageUrl != "https://img.example.com/laptop.png" {
		t.Error("image url not captured")
	}

	cart, err := svc.GetCart(ctx, user.UserID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.TotalItems != 2 {
		t.Errorf("total items = %d, want 2", cart.TotalItems)
	}
	if cart.TotalPrice.StringFixed(2) != "499.00" {
		t.Errorf("total price = %s, want 499.00", cart.TotalPrice.StringFixed(2))
	}
}

func TestAddKeepsFirstCapturedPrice(t *testing.T) {
	svc, user, products := newCartFixture(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, user.UserID, "p1", 1); err != nil {
		t.Fatalf("first add: %v", err)
	}

	// The catalog price changes between adds.
	product, err := products.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	product.PriceString = "300.00"
	if err := products.Update(ctx, product); err != nil {
		t.Fatalf("reprice product: %v", err)
	}

	if _, err := svc.Add(ctx, user.UserID, "p1", 2); err != nil {
		t.Fatalf("second add: %v", err)
	}

	cart, err := svc.GetCart(ctx, user.UserID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", cart.Items[0].Quantity)
	}
	if got := cart.Items[0].UnitPrice.StringFixed(2); got != "249.50" {
		t.Errorf("unit price = %s, want the first captured 249.50", got)
	}
}

func TestAddValidatesQuantityAndStock(t *testing.T) {
	svc, user, _ := newCartFixture(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, user.UserID, "p1", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity: expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.Add(ctx, user.UserID, "p1", 6); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("over stock: expected ErrInsufficientStock, got %v", err)
	}
	if _, err := svc.Add(ctx, user.UserID, "missing", 1); err == nil {
		t.Fatal("unknown product accepted")
	}
}

func TestCartMutationsRequireOwnership(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	jane := seedUser(t, db, "jane")
	bob := seedUser(t, db, "bob")
	products := newFakeProducts(&model.ProductEntity{
		TableEntity:    model.TableEntity{RowKey: "p1"},
		ProductName:    "Laptop",
		PriceString:    "249.50",
		StockAvailable: 5,
	})
	svc := NewCartService(repository.NewCartRepository(db), products)

	item, err := svc.Add(ctx, jane.UserID, "p1", 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.UpdateQuantity(ctx, bob.UserID, item.CartID, 2); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("foreign update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Remove(ctx, bob.UserID, item.CartID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("foreign remove: expected ErrNotFound, got %v", err)
	}

	if err := svc.UpdateQuantity(ctx, jane.UserID, item.CartID, 4); err != nil {
		t.Fatalf("own update: %v", err)
	}
	cart, err := svc.GetCart(ctx, jane.UserID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.Items[0].Quantity != 4 {
		t.Errorf("quantity = %d, want 4", cart.Items[0].Quantity)
	}
	if cart.Items[0].DateAdded.After(time.Now().Add(time.Minute)) {
		t.Error("date added in the future")
	}

	if err := svc.Remove(ctx, jane.UserID, item.CartID); err != nil {
		t.Fatalf("own remove: %v", err)
	}
	cart, err = svc.GetCart(ctx, jane.UserID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart, got %d items", len(cart.Items))
	}
}
