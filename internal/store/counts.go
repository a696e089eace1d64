package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Counts holds the row counts shown on the dashboard and health endpoint.
type Counts struct {
	Users     int `json:"users"`
	Inventory int `json:"inventory"`
	Orders    int `json:"orders"`
}

// GetCounts returns the committed row counts at query time. No caching:
// the health surface must reflect the store exactly.
func GetCounts(ctx context.Context, db *sql.DB) (*Counts, error) {
	c := &Counts{}

	queries := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM users`, &c.Users},
		{`SELECT COUNT(*) FROM inventory`, &c.Inventory},
		{`SELECT COUNT(*) FROM orders`, &c.Orders},
	}

	for _, q := range queries {
		if err := db.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("counting rows: %w", err)
		}
	}

	return c, nil
}
