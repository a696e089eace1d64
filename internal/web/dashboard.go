package web

import (
	"log/slog"
	"net/http"

	"github.com/smartmed/smartmed/internal/store"
)

// Dashboard handles GET /.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	counts, err := store.GetCounts(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to get counts for dashboard", "error", err)
		counts = &store.Counts{}
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Counts *store.Counts
	}{
		PageData: PageData{Title: "Dashboard", User: claims},
		Counts:   counts,
	})
}
