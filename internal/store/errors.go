package store

import (
	"errors"
	"fmt"
)

// Business-rule failures. Handlers map these to user-visible rejections;
// anything else coming out of the store is a storage error.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrItemNotFound      = errors.New("item does not exist in inventory")
	ErrOrderNotFound     = errors.New("order not found")
)

// InsufficientStockError is returned when an order asks for more stock than
// the ledger holds. Available is the quantity at the time of the check.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock, available: %d", e.Available)
}
