package web

import (
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartmed/smartmed/internal/auth"
	"github.com/smartmed/smartmed/internal/store"
)

// RegisterPage handles GET /register.
func (s *Server) RegisterPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "register.html", &PageData{Title: "Register"})
}

// RegisterSubmit handles POST /register.
func (s *Server) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		s.Templates.Render(w, "register.html", &PageData{
			Title: "Register",
			Error: "Username and password are required.",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.Templates.Render(w, "register.html", &PageData{
			Title: "Register",
			Error: "Registration failed.",
		})
		return
	}

	user, err := store.CreateUser(r.Context(), s.DB, username, string(hash))
	if errors.Is(err, store.ErrDuplicateUsername) {
		s.Templates.Render(w, "register.html", &PageData{
			Title: "Register",
			Error: "Username already exists.",
		})
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		s.Templates.Render(w, "register.html", &PageData{
			Title: "Register",
			Error: "Registration failed.",
		})
		return
	}

	slog.Info("user registered", "user", user.Username)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &PageData{Title: "Log in"})
}

// LoginSubmit handles POST /login. Unknown usernames and wrong passwords
// render the same generic failure.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log in",
			Error: "Enter a username and password.",
		})
		return
	}

	user, err := store.GetUserByUsername(r.Context(), s.DB, username)
	if err != nil || user == nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log in",
			Error: "Invalid credentials.",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Warn("login failed", "username", username, "remote", r.RemoteAddr)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log in",
			Error: "Invalid credentials.",
		})
		return
	}

	token, err := auth.GenerateToken(s.SecretKey, user.ID, user.Username, s.SessionTTL)
	if err != nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log in",
			Error: "Login failed.",
		})
		return
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = auth.DefaultTokenExpiry
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(ttl.Seconds()),
	})

	slog.Info("user logged in", "user", user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles GET /logout. Revokes the session token and clears the cookie.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateToken(s.SecretKey, cookie.Value); err == nil {
			if claims.ID != "" && claims.ExpiresAt != nil {
				if err := store.RevokeToken(r.Context(), s.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
					slog.Error("failed to revoke token", "error", err)
				}
			}
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
