package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	mux.HandleFunc("GET /dashboard", h.View)
	mux.HandleFunc("POST /dashboard/reload", h.Reload)
	mux.HandleFunc("POST /dashboard/search", h.Search)
	mux.HandleFunc("POST /dashboard/sort", h.Sort)
	mux.HandleFunc("POST /dashboard/page", h.Page)
	mux.HandleFunc("POST /dashboard/page-size", h.PageSize)
	mux.HandleFunc("DELETE /dashboard/error", h.DismissError)

	mux.HandleFunc("POST /dashboard/editor", h.OpenEditor)
	mux.HandleFunc("DELETE /dashboard/editor", h.CloseEditor)
	mux.HandleFunc("POST /dashboard/players", h.CreatePlayer)
	mux.HandleFunc("PUT /dashboard/players/{id}", h.UpdatePlayer)
	mux.HandleFunc("GET /dashboard/players/{id}/description", h.Description)
	mux.HandleFunc("DELETE /dashboard/detail", h.CloseDescription)

	mux.HandleFunc("POST /dashboard/players/{id}/delete", h.RequestDelete)
	mux.HandleFunc("POST /dashboard/deletes/{token}", h.ConfirmDelete)
	mux.HandleFunc("DELETE /dashboard/deletes/{token}", h.CancelDelete)
	return mux
}
