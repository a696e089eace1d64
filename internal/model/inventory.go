package model

import "time"

// InventoryItem represents a named stock line. Item names are unique, so a
// repeated stock addition increments the existing row instead of creating a
// duplicate.
type InventoryItem struct {
	ID        int64     `json:"id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	ImageMime string    `json:"image_mime,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
