package store

import (
	"context"
	"errors"
	"testing"

	"github.com/smartmed/smartmed/internal/db"
)

func TestAddStockCreatesItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := AddStock(ctx, database, "gloves", 100)
	if err != nil {
		t.Fatalf("AddStock: %v", err)
	}
	if item.ItemName != "gloves" {
		t.Errorf("expected item name 'gloves', got %q", item.ItemName)
	}
	if item.Quantity != 100 {
		t.Errorf("expected quantity 100, got %d", item.Quantity)
	}
}

func TestAddStockIncrementsExisting(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, _ := AddStock(ctx, database, "masks", 10)
	second, err := AddStock(ctx, database, "masks", 25)
	if err != nil {
		t.Fatalf("AddStock: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected increment of existing row, got new row %d", second.ID)
	}
	if second.Quantity != 35 {
		t.Errorf("expected quantity 35, got %d", second.Quantity)
	}

	// Only one row for the name.
	items, _ := ListInventory(ctx, database)
	if len(items) != 1 {
		t.Errorf("expected 1 inventory row, got %d", len(items))
	}
}

func TestAddStockSumOrderIndependent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	for _, q := range []int{7, 1, 12, 30} {
		if _, err := AddStock(ctx, database, "syringes", q); err != nil {
			t.Fatalf("AddStock(%d): %v", q, err)
		}
	}

	item, _ := GetItemByName(ctx, database, "syringes")
	if item.Quantity != 50 {
		t.Errorf("expected final quantity 50, got %d", item.Quantity)
	}
}

func TestAddStockRejectsNonPositive(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := AddStock(ctx, database, "gloves", 0); err == nil {
		t.Error("expected error for zero quantity")
	}
	if _, err := AddStock(ctx, database, "gloves", -5); err == nil {
		t.Error("expected error for negative quantity")
	}

	items, _ := ListInventory(ctx, database)
	if len(items) != 0 {
		t.Errorf("expected empty ledger after rejected additions, got %d rows", len(items))
	}
}

func TestSearchInventory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddStock(ctx, database, "surgical gloves", 10)
	AddStock(ctx, database, "nitrile gloves", 20)
	AddStock(ctx, database, "face masks", 30)

	matches, err := SearchInventory(ctx, database, "gloves")
	if err != nil {
		t.Fatalf("SearchInventory: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches for 'gloves', got %d", len(matches))
	}

	none, _ := SearchInventory(ctx, database, "ventilator")
	if len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}

func TestSetQuantity(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := AddStock(ctx, database, "gowns", 5)
	if err := SetQuantity(ctx, database, item.ID, 42); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}

	got, _ := GetItem(ctx, database, item.ID)
	if got.Quantity != 42 {
		t.Errorf("expected quantity 42, got %d", got.Quantity)
	}

	if err := SetQuantity(ctx, database, item.ID, -1); err == nil {
		t.Error("expected error for negative quantity")
	}

	if err := SetQuantity(ctx, database, 9999, 10); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteItemLeavesOrders(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := AddStock(ctx, database, "gloves", 100)
	order, err := CreateOrder(ctx, database, "City Hospital", "gloves", 30)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if err := DeleteItem(ctx, database, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	// The order keeps its (now dangling) item name.
	got, _ := GetOrder(ctx, database, order.ID)
	if got == nil || got.ItemName != "gloves" {
		t.Errorf("expected order to survive item deletion with item name intact, got %+v", got)
	}

	if err := DeleteItem(ctx, database, item.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound for second delete, got %v", err)
	}
}

func TestItemImageRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := AddStock(ctx, database, "gloves", 1)

	data, mime, err := GetItemImage(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItemImage: %v", err)
	}
	if data != nil {
		t.Error("expected no image for fresh item")
	}

	if err := SetItemImage(ctx, database, item.ID, []byte{0x1, 0x2}, "image/jpeg"); err != nil {
		t.Fatalf("SetItemImage: %v", err)
	}

	data, mime, err = GetItemImage(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItemImage: %v", err)
	}
	if len(data) != 2 || mime != "image/jpeg" {
		t.Errorf("unexpected image data %v mime %q", data, mime)
	}

	if err := SetItemImage(ctx, database, 9999, []byte{0x1}, "image/jpeg"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}
