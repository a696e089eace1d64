package api

import (
	"database/sql"
	"net/http"
	"time"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, secretKey string, sessionTTL time.Duration) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, SecretKey: secretKey, SessionTTL: sessionTTL}
	inventoryHandler := &InventoryHandler{DB: db}
	ordersHandler := &OrdersHandler{DB: db}
	healthHandler := &HealthHandler{DB: db}

	authMW := AuthMiddleware(secretKey, db)

	// Public: health, register, login.
	mux.HandleFunc("GET /api/health", healthHandler.Health)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	mux.Handle("GET /api/inventory", authMW(http.HandlerFunc(inventoryHandler.List)))
	mux.Handle("POST /api/inventory", authMW(http.HandlerFunc(inventoryHandler.AddStock)))
	mux.Handle("GET /api/inventory/search", authMW(http.HandlerFunc(inventoryHandler.Search)))
	mux.Handle("GET /api/inventory/{id}", authMW(http.HandlerFunc(inventoryHandler.Get)))
	mux.Handle("PUT /api/inventory/{id}", authMW(http.HandlerFunc(inventoryHandler.Update)))
	mux.Handle("DELETE /api/inventory/{id}", authMW(http.HandlerFunc(inventoryHandler.Delete)))
	mux.Handle("PUT /api/inventory/{id}/image", authMW(http.HandlerFunc(inventoryHandler.UploadImage)))
	mux.Handle("GET /api/inventory/{id}/image", authMW(http.HandlerFunc(inventoryHandler.GetImage)))

	mux.Handle("GET /api/orders", authMW(http.HandlerFunc(ordersHandler.List)))
	mux.Handle("POST /api/orders", authMW(http.HandlerFunc(ordersHandler.Create)))
	mux.Handle("GET /api/orders/{id}", authMW(http.HandlerFunc(ordersHandler.Get)))
	mux.Handle("PUT /api/orders/{id}", authMW(http.HandlerFunc(ordersHandler.UpdateStatus)))

	return mux
}
