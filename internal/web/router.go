package web

import (
	"database/sql"
	"net/http"
	"time"

	webembed "github.com/smartmed/smartmed/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, secretKey string, sessionTTL time.Duration) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:         db,
		Templates:  templates,
		SecretKey:  secretKey,
		SessionTTL: sessionTTL,
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(secretKey, db)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /register", s.RegisterPage)
	mux.HandleFunc("POST /register", s.RegisterSubmit)
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("GET /logout", s.Logout)

	// Authenticated routes.
	mux.Handle("GET /{$}", cookieAuth(http.HandlerFunc(s.Dashboard)))

	mux.Handle("GET /inventory", cookieAuth(http.HandlerFunc(s.InventoryPage)))
	mux.Handle("POST /inventory", cookieAuth(http.HandlerFunc(s.InventorySubmit)))
	mux.Handle("GET /inventory/delete/{id}", cookieAuth(http.HandlerFunc(s.InventoryDelete)))

	mux.Handle("GET /orders", cookieAuth(http.HandlerFunc(s.OrdersPage)))
	mux.Handle("POST /orders", cookieAuth(http.HandlerFunc(s.OrderSubmit)))
	mux.Handle("GET /orders/update/{id}", cookieAuth(http.HandlerFunc(s.OrderUpdate)))

	return mux, nil
}
