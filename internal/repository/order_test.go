package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"abc-retail-backend/internal/model"
)

func addLine(t *testing.T, repo CartRepository, userID uint, productID, price string, qty int) {
	t.Helper()
	_, err := repo.Add(context.Background(), &model.CartItem{
		UserID:      userID,
		ProductID:   productID,
		ProductName: "Product " + productID,
		Quantity:    qty,
		UnitPrice:   decimal.RequireFromString(price),
	})
	if err != nil {
		t.Fatalf("add cart line %s: %v", productID, err)
	}
}

func TestCheckoutCreatesOneOrderPerLine(t *testing.T) {
	db := testDB(t)
	address := "42 Main Street"
	user := seedUser(t, db, "jane", &address)
	cartRepo := NewCartRepository(db)
	orderRepo := NewOrderRepository(db)
	ctx := context.Background()

	addLine(t, cartRepo, user.UserID, "prod-a", "9.99", 2)
	addLine(t, cartRepo, user.UserID, "prod-b", "3.50", 1)

	created, err := orderRepo.CreateFromCart(ctx, user.UserID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if created != 2 {
		t.Fatalf("created = %d, want 2", created)
	}

	orders, err := orderRepo.GetUserOrders(ctx, user.UserID)
	if err != nil {
		t.Fatalf("get orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("orders = %d, want 2", len(orders))
	}
	byProduct := map[string]*model.Order{}
	for _, o := range orders {
		byProduct[o.ProductID] = o
	}

	a := byProduct["prod-a"]
	if a == nil {
		t.Fatal("no order for prod-a")
	}
	if a.Quantity != 2 || !a.UnitPrice.Equal(decimal.RequireFromString("9.99")) {
		t.Errorf("prod-a snapshot = qty %d price %s, want 2 / 9.99", a.Quantity, a.UnitPrice)
	}
	if !a.TotalPrice.Equal(decimal.RequireFromString("19.98")) {
		t.Errorf("prod-a total = %s, want 19.98", a.TotalPrice)
	}
	if a.Status != model.StatusSubmitted {
		t.Errorf("status = %q, want %q", a.Status, model.StatusSubmitted)
	}
	if a.ShippingAddress != address {
		t.Errorf("shipping address = %q, want %q", a.ShippingAddress, address)
	}

	items, _ := cartRepo.GetUserCart(ctx, user.UserID)
	if len(items) != 0 {
		t.Errorf("cart still has %d lines after checkout", len(items))
	}
}

func TestCheckoutEmptyCartIsNoOp(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "jane", nil)
	orderRepo := NewOrderRepository(db)
	ctx := context.Background()

	created, err := orderRepo.CreateFromCart(ctx, user.UserID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if created != 0 {
		t.Errorf("created = %d, want 0", created)
	}

	var count int64
	db.Model(&model.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders table has %d rows, want 0", count)
	}
}

func TestCheckoutMissingAddressFallsBack(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "jane", nil)
	cartRepo := NewCartRepository(db)
	orderRepo := NewOrderRepository(db)
	ctx := context.Background()

	addLine(t, cartRepo, user.UserID, "prod-a", "1.00", 1)

	if _, err := orderRepo.CreateFromCart(ctx, user.UserID); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	orders, _ := orderRepo.GetUserOrders(ctx, user.UserID)
	if orders[0].ShippingAddress != noAddressFallback {
		t.Errorf("address = %q, want %q", orders[0].ShippingAddress, noAddressFallback)
	}
}

func TestCheckoutRollsBackOnFailure(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "jane", nil)
	cartRepo := NewCartRepository(db)
	orderRepo := NewOrderRepository(db)
	ctx := context.Background()

	addLine(t, cartRepo, user.UserID, "prod-a", "1.00", 1)
	addLine(t, cartRepo, user.UserID, "boom", "2.00", 1)
	addLine(t, cartRepo, user.UserID, "prod-c", "3.00", 1)

	// Fail the insert of one order mid-transaction.
	err := db.Exec(`CREATE TRIGGER orders_fail BEFORE INSERT ON orders
		WHEN NEW.product_id = 'boom'
		BEGIN SELECT RAISE(ABORT, 'forced failure'); END`).Error
	if err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	if _, err := orderRepo.CreateFromCart(ctx, user.UserID); err == nil {
		t.Fatal("checkout succeeded, want failure")
	}

	var orderCount int64
	db.Model(&model.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Errorf("orders table has %d rows after rollback, want 0", orderCount)
	}
	items, _ := cartRepo.GetUserCart(ctx, user.UserID)
	if len(items) != 3 {
		t.Errorf("cart has %d lines after rollback, want all 3", len(items))
	}
}

func TestUpdateStatusReturnsPrevious(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "jane", nil)
	cartRepo := NewCartRepository(db)
	orderRepo := NewOrderRepository(db)
	ctx := context.Background()

	addLine(t, cartRepo, user.UserID, "prod-a", "1.00", 1)
	if _, err := orderRepo.CreateFromCart(ctx, user.UserID); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	orders, _ := orderRepo.GetUserOrders(ctx, user.UserID)

	previous, err := orderRepo.UpdateStatus(ctx, orders[0].OrderID, model.StatusProcessing)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if previous != model.StatusSubmitted {
		t.Errorf("previous = %q, want %q", previous, model.StatusSubmitted)
	}

	reloaded, err := orderRepo.FindByID(ctx, orders[0].OrderID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != model.StatusProcessing {
		t.Errorf("status = %q, want %q", reloaded.Status, model.StatusProcessing)
	}

	// No transition graph: any string may follow any other.
	if _, err := orderRepo.UpdateStatus(ctx, orders[0].OrderID, model.StatusSubmitted); err != nil {
		t.Errorf("backwards transition rejected: %v", err)
	}
}
