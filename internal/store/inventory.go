package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smartmed/smartmed/internal/model"
)

// AddStock adds stock of a named item. If the item already exists its
// quantity is incremented, otherwise a new row is created. Quantity must be
// positive (callers validate input before reaching the ledger). Returns the
// item with its new total.
func AddStock(ctx context.Context, db *sql.DB, itemName string, quantity int) (*model.InventoryItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO inventory (item_name, quantity) VALUES (?, ?)
		 ON CONFLICT (item_name) DO UPDATE SET
		     quantity = quantity + excluded.quantity,
		     updated_at = CURRENT_TIMESTAMP`,
		itemName, quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("adding stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing stock addition: %w", err)
	}

	return GetItemByName(ctx, db, itemName)
}

// GetItem returns an inventory item by ID, or nil if no such item exists.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.InventoryItem, error) {
	item := &model.InventoryItem{}
	var imageMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, item_name, quantity, image_mime, created_at, updated_at
		 FROM inventory WHERE id = ?`, id,
	).Scan(&item.ID, &item.ItemName, &item.Quantity, &imageMime, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.ImageMime = imageMime.String
	return item, nil
}

// GetItemByName returns an inventory item by name, or nil if no such item exists.
func GetItemByName(ctx context.Context, db *sql.DB, itemName string) (*model.InventoryItem, error) {
	item := &model.InventoryItem{}
	var imageMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, item_name, quantity, image_mime, created_at, updated_at
		 FROM inventory WHERE item_name = ?`, itemName,
	).Scan(&item.ID, &item.ItemName, &item.Quantity, &imageMime, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item by name: %w", err)
	}
	item.ImageMime = imageMime.String
	return item, nil
}

// ListInventory returns all inventory items.
func ListInventory(ctx context.Context, db *sql.DB) ([]model.InventoryItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, item_name, quantity, image_mime, created_at, updated_at
		 FROM inventory ORDER BY item_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// SearchInventory returns inventory items whose name contains the given
// substring.
func SearchInventory(ctx context.Context, db *sql.DB, name string) ([]model.InventoryItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, item_name, quantity, image_mime, created_at, updated_at
		 FROM inventory WHERE item_name LIKE '%' || ? || '%' ORDER BY item_name`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("searching inventory: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// SetQuantity overwrites an item's quantity. Returns ErrItemNotFound if the
// item does not exist.
func SetQuantity(ctx context.Context, db *sql.DB, id int64, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}

	result, err := db.ExecContext(ctx,
		`UPDATE inventory SET quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		quantity, id,
	)
	if err != nil {
		return fmt.Errorf("updating quantity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating quantity: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// DeleteItem removes an inventory item. Orders referencing the item by name
// are left untouched.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// SetItemImage stores an item's photo.
func SetItemImage(ctx context.Context, db *sql.DB, id int64, data []byte, mime string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE inventory SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		data, mime, id,
	)
	if err != nil {
		return fmt.Errorf("saving item image: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("saving item image: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// GetItemImage returns an item's photo and MIME type, or nil data if the
// item has no photo.
func GetItemImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var data []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM inventory WHERE id = ?`, id,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return data, mime.String, nil
}

func scanItems(rows *sql.Rows) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	for rows.Next() {
		var item model.InventoryItem
		var imageMime sql.NullString
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Quantity, &imageMime, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.ImageMime = imageMime.String
		items = append(items, item)
	}
	return items, rows.Err()
}
