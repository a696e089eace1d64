package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/smartmed/smartmed/internal/store"
)

// HealthHandler reports liveness, database reachability, and row counts.
type HealthHandler struct {
	DB *sql.DB
}

type healthResponse struct {
	Status    string `json:"status"`
	Database  bool   `json:"database"`
	Users     int    `json:"users"`
	Inventory int    `json:"inventory"`
	Orders    int    `json:"orders"`
}

// Health handles GET /api/health (and GET /health on the web surface).
// Counts are read fresh on every call, never cached.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Database: true}

	if err := h.DB.PingContext(r.Context()); err != nil {
		slog.Error("health check: database unreachable", "error", err)
		resp.Status = "degraded"
		resp.Database = false
		jsonResponse(w, http.StatusServiceUnavailable, resp)
		return
	}

	counts, err := store.GetCounts(r.Context(), h.DB)
	if err != nil {
		slog.Error("health check: counting rows failed", "error", err)
		resp.Status = "degraded"
		resp.Database = false
		jsonResponse(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp.Users = counts.Users
	resp.Inventory = counts.Inventory
	resp.Orders = counts.Orders
	jsonResponse(w, http.StatusOK, resp)
}
