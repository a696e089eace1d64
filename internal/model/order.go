package model

import "time"

// Order represents a dispatch of stock to a hospital. ItemName references
// the inventory item by name, not by id: the order stays readable even if
// the item is later deleted.
type Order struct {
	ID           int64     `json:"id"`
	HospitalName string    `json:"hospital_name"`
	ItemName     string    `json:"item_name"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Order statuses.
const (
	OrderStatusDispatched = "Dispatched"
	OrderStatusDelivered  = "Delivered"
)
