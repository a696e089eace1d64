package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smartmed/smartmed/internal/model"
)

// CreateOrder creates a dispatch order, deducting the ordered quantity from
// the inventory in the same transaction: either both the decrement and the
// order persist, or neither does.
//
// Returns ErrItemNotFound if no inventory item has the given name, and
// *InsufficientStockError if the item holds less than the ordered quantity.
// In both cases the ledger is unchanged and no order is created.
func CreateOrder(ctx context.Context, db *sql.DB, hospitalName, itemName string, quantity int) (*model.Order, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Check availability. The check and the decrement run inside one
	// transaction; SQLite serializes writers, so no second order can slip
	// between them.
	var itemID int64
	var available int
	err = tx.QueryRowContext(ctx,
		`SELECT id, quantity FROM inventory WHERE item_name = ?`, itemName,
	).Scan(&itemID, &available)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("checking available stock: %w", err)
	}

	if available < quantity {
		return nil, &InsufficientStockError{Available: available}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE inventory SET quantity = quantity - ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		quantity, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("deducting stock: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO orders (hospital_name, item_name, quantity, status) VALUES (?, ?, ?, ?)`,
		hospitalName, itemName, quantity, model.OrderStatusDispatched,
	)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing order: %w", err)
	}

	orderID, _ := result.LastInsertId()
	return GetOrder(ctx, db, orderID)
}

// GetOrder returns an order by ID, or nil if no such order exists.
func GetOrder(ctx context.Context, db *sql.DB, id int64) (*model.Order, error) {
	o := &model.Order{}
	err := db.QueryRowContext(ctx,
		`SELECT id, hospital_name, item_name, quantity, status, created_at, updated_at
		 FROM orders WHERE id = ?`, id,
	).Scan(&o.ID, &o.HospitalName, &o.ItemName, &o.Quantity, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	return o, nil
}

// ListOrders returns all orders, newest first.
func ListOrders(ctx context.Context, db *sql.DB) ([]model.Order, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, hospital_name, item_name, quantity, status, created_at, updated_at
		 FROM orders ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.HospitalName, &o.ItemName, &o.Quantity, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// ToggleOrderStatus flips an order between Dispatched and Delivered. Any
// status other than Delivered is treated as Dispatched, so a legacy row
// still toggles to Delivered. Returns the updated order, or ErrOrderNotFound.
func ToggleOrderStatus(ctx context.Context, db *sql.DB, id int64) (*model.Order, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = ?`, id).Scan(&status)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting order status: %w", err)
	}

	next := model.OrderStatusDelivered
	if status == model.OrderStatusDelivered {
		next = model.OrderStatusDispatched
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		next, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing status update: %w", err)
	}

	return GetOrder(ctx, db, id)
}
