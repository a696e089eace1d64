package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/smartmed/smartmed/internal/model"
	"github.com/smartmed/smartmed/internal/store"
)

type inventoryPageData struct {
	PageData
	Items []model.InventoryItem
}

func (s *Server) renderInventory(w http.ResponseWriter, r *http.Request, errMsg string) {
	claims := GetWebClaims(r.Context())
	items, err := store.ListInventory(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list inventory", "error", err)
	}

	s.Templates.Render(w, "inventory.html", &inventoryPageData{
		PageData: PageData{Title: "Inventory", User: claims, Error: errMsg},
		Items:    items,
	})
}

// InventoryPage handles GET /inventory.
func (s *Server) InventoryPage(w http.ResponseWriter, r *http.Request) {
	s.renderInventory(w, r, "")
}

// InventorySubmit handles POST /inventory: add-or-increment by item name.
func (s *Server) InventorySubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	itemName := r.FormValue("item_name")
	quantity, err := strconv.Atoi(r.FormValue("quantity"))

	if itemName == "" {
		s.renderInventory(w, r, "Item name is required.")
		return
	}
	if err != nil || quantity <= 0 {
		s.renderInventory(w, r, "Quantity must be a positive whole number.")
		return
	}

	item, err := store.AddStock(r.Context(), s.DB, itemName, quantity)
	if err != nil {
		slog.Error("failed to add stock", "error", err)
		s.renderInventory(w, r, "Failed to add stock.")
		return
	}

	slog.Info("stock added", "user", claims.Username, "item", item.ItemName, "quantity", quantity, "total", item.Quantity)
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

// InventoryDelete handles GET /inventory/delete/{id}.
func (s *Server) InventoryDelete(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	err = store.DeleteItem(r.Context(), s.DB, id)
	if errors.Is(err, store.ErrItemNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to delete item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("item deleted", "user", claims.Username, "item_id", id)
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}
