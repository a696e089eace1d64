package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/smartmed/smartmed/internal/model"
	"github.com/smartmed/smartmed/internal/store"
)

type ordersPageData struct {
	PageData
	Orders []model.Order
	Items  []model.InventoryItem
}

func (s *Server) renderOrders(w http.ResponseWriter, r *http.Request, errMsg string) {
	claims := GetWebClaims(r.Context())

	orders, err := store.ListOrders(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list orders", "error", err)
	}
	// Current stock snapshot for the order form.
	items, err := store.ListInventory(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list inventory", "error", err)
	}

	s.Templates.Render(w, "orders.html", &ordersPageData{
		PageData: PageData{Title: "Orders", User: claims, Error: errMsg},
		Orders:   orders,
		Items:    items,
	})
}

// OrdersPage handles GET /orders.
func (s *Server) OrdersPage(w http.ResponseWriter, r *http.Request) {
	s.renderOrders(w, r, "")
}

// OrderSubmit handles POST /orders.
func (s *Server) OrderSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	hospitalName := r.FormValue("hospital_name")
	itemName := r.FormValue("item_name")
	quantity, err := strconv.Atoi(r.FormValue("quantity"))

	if hospitalName == "" || itemName == "" {
		s.renderOrders(w, r, "Hospital name and item name are required.")
		return
	}
	if err != nil || quantity <= 0 {
		s.renderOrders(w, r, "Quantity must be a positive whole number.")
		return
	}

	order, err := store.CreateOrder(r.Context(), s.DB, hospitalName, itemName, quantity)
	if errors.Is(err, store.ErrItemNotFound) {
		s.renderOrders(w, r, "Item does not exist in inventory.")
		return
	}
	var insufficient *store.InsufficientStockError
	if errors.As(err, &insufficient) {
		s.renderOrders(w, r, "Insufficient stock available: "+strconv.Itoa(insufficient.Available)+" left.")
		return
	}
	if err != nil {
		slog.Error("failed to create order", "error", err)
		s.renderOrders(w, r, "Failed to create order.")
		return
	}

	slog.Info("order created", "user", claims.Username,
		"hospital", order.HospitalName, "item", order.ItemName, "quantity", order.Quantity)
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// OrderUpdate handles GET /orders/update/{id}: toggles Dispatched/Delivered.
func (s *Server) OrderUpdate(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	order, err := store.ToggleOrderStatus(r.Context(), s.DB, id)
	if errors.Is(err, store.ErrOrderNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to update order status", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("order status updated", "user", claims.Username, "order", order.ID, "status", order.Status)
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}
