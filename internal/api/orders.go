package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/smartmed/smartmed/internal/model"
	"github.com/smartmed/smartmed/internal/store"
)

// OrdersHandler handles the order workflow endpoints.
type OrdersHandler struct {
	DB *sql.DB
}

type createOrderRequest struct {
	HospitalName string `json:"hospital_name"`
	ItemName     string `json:"item_name"`
	Quantity     int    `json:"quantity"`
}

// List handles GET /api/orders.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := store.ListOrders(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list orders", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	jsonResponse(w, http.StatusOK, orders)
}

// Create handles POST /api/orders.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.HospitalName == "" || req.ItemName == "" {
		jsonError(w, http.StatusBadRequest, "hospital_name and item_name required")
		return
	}
	if req.Quantity <= 0 {
		jsonError(w, http.StatusBadRequest, "quantity must be a positive integer")
		return
	}

	order, err := store.CreateOrder(r.Context(), h.DB, req.HospitalName, req.ItemName, req.Quantity)
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusBadRequest, "item does not exist in inventory")
		return
	}
	var insufficient *store.InsufficientStockError
	if errors.As(err, &insufficient) {
		jsonError(w, http.StatusBadRequest, insufficient.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create order", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("order created", "user", claims.Username,
		"hospital", order.HospitalName, "item", order.ItemName, "quantity", order.Quantity)
	jsonResponse(w, http.StatusCreated, order)
}

// Get handles GET /api/orders/{id}.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := store.GetOrder(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get order", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get order")
		return
	}
	if order == nil {
		jsonError(w, http.StatusNotFound, "order not found")
		return
	}
	jsonResponse(w, http.StatusOK, order)
}

// UpdateStatus handles PUT /api/orders/{id}: toggles Dispatched/Delivered.
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := store.ToggleOrderStatus(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrOrderNotFound) {
		jsonError(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		slog.Error("failed to update order status", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update order")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("order status updated", "user", claims.Username, "order", order.ID, "status", order.Status)
	jsonResponse(w, http.StatusOK, order)
}
