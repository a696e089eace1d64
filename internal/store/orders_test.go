package store

import (
	"context"
	"errors"
	"testing"

	"github.com/smartmed/smartmed/internal/db"
	"github.com/smartmed/smartmed/internal/model"
)

func TestCreateOrderDeductsStock(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddStock(ctx, database, "gloves", 100)

	order, err := CreateOrder(ctx, database, "City Hospital", "gloves", 30)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.Status != model.OrderStatusDispatched {
		t.Errorf("expected status Dispatched, got %q", order.Status)
	}
	if order.Quantity != 30 {
		t.Errorf("expected quantity 30, got %d", order.Quantity)
	}

	item, _ := GetItemByName(ctx, database, "gloves")
	if item.Quantity != 70 {
		t.Errorf("expected 70 gloves left, got %d", item.Quantity)
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddStock(ctx, database, "gloves", 100)
	CreateOrder(ctx, database, "City Hospital", "gloves", 30)

	_, err := CreateOrder(ctx, database, "City Hospital", "gloves", 1000)
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.Available != 70 {
		t.Errorf("expected available 70 in error, got %d", insufficient.Available)
	}

	// Ledger unchanged, no order created.
	item, _ := GetItemByName(ctx, database, "gloves")
	if item.Quantity != 70 {
		t.Errorf("expected quantity still 70 after failed order, got %d", item.Quantity)
	}
	orders, _ := ListOrders(ctx, database)
	if len(orders) != 1 {
		t.Errorf("expected 1 order, got %d", len(orders))
	}
}

func TestCreateOrderItemNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddStock(ctx, database, "gloves", 100)

	_, err := CreateOrder(ctx, database, "City Hospital", "masks", 5)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	orders, _ := ListOrders(ctx, database)
	if len(orders) != 0 {
		t.Errorf("expected no orders, got %d", len(orders))
	}
}

func TestCreateOrderExactStock(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddStock(ctx, database, "masks", 5)

	if _, err := CreateOrder(ctx, database, "County Clinic", "masks", 5); err != nil {
		t.Fatalf("CreateOrder for exact stock: %v", err)
	}

	item, _ := GetItemByName(ctx, database, "masks")
	if item.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", item.Quantity)
	}
}

func TestCreateOrderRejectsNonPositive(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddStock(ctx, database, "gloves", 10)

	if _, err := CreateOrder(ctx, database, "City Hospital", "gloves", 0); err == nil {
		t.Error("expected error for zero quantity")
	}
	if _, err := CreateOrder(ctx, database, "City Hospital", "gloves", -3); err == nil {
		t.Error("expected error for negative quantity")
	}

	item, _ := GetItemByName(ctx, database, "gloves")
	if item.Quantity != 10 {
		t.Errorf("expected quantity unchanged at 10, got %d", item.Quantity)
	}
}

func TestToggleOrderStatus(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddStock(ctx, database, "gloves", 100)
	order, _ := CreateOrder(ctx, database, "City Hospital", "gloves", 30)

	toggled, err := ToggleOrderStatus(ctx, database, order.ID)
	if err != nil {
		t.Fatalf("ToggleOrderStatus: %v", err)
	}
	if toggled.Status != model.OrderStatusDelivered {
		t.Errorf("expected Delivered after first toggle, got %q", toggled.Status)
	}

	toggled, err = ToggleOrderStatus(ctx, database, order.ID)
	if err != nil {
		t.Fatalf("ToggleOrderStatus: %v", err)
	}
	if toggled.Status != model.OrderStatusDispatched {
		t.Errorf("expected Dispatched after second toggle, got %q", toggled.Status)
	}
}

func TestToggleOrderStatusUnknownValue(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddStock(ctx, database, "gloves", 10)
	order, _ := CreateOrder(ctx, database, "City Hospital", "gloves", 1)

	// A legacy status value is treated as Dispatched.
	database.ExecContext(ctx, `UPDATE orders SET status = 'Pending' WHERE id = ?`, order.ID)

	toggled, err := ToggleOrderStatus(ctx, database, order.ID)
	if err != nil {
		t.Fatalf("ToggleOrderStatus: %v", err)
	}
	if toggled.Status != model.OrderStatusDelivered {
		t.Errorf("expected Delivered, got %q", toggled.Status)
	}
}

func TestToggleOrderStatusNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := ToggleOrderStatus(ctx, database, 42)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestGetCounts(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "alice", "hash")
	AddStock(ctx, database, "gloves", 100)
	AddStock(ctx, database, "masks", 50)
	CreateOrder(ctx, database, "City Hospital", "gloves", 10)

	counts, err := GetCounts(ctx, database)
	if err != nil {
		t.Fatalf("GetCounts: %v", err)
	}
	if counts.Users != 1 || counts.Inventory != 2 || counts.Orders != 1 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}
