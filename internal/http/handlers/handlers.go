package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/dashboard"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/poller"
)

// Reloader runs an immediate collection reload and reports readiness-relevant failures.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Handler wires HTTP routes to the dashboard engine.
type Handler struct {
	engine   *dashboard.Engine
	reloader Reloader
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. When reloader is nil, reloads go straight to the engine.
func NewHandler(engine *dashboard.Engine, reloader Reloader, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	if reloader == nil && engine != nil {
		reloader = engineReloader{engine}
	}
	return &Handler{
		engine:   engine,
		reloader: reloader,
		logger:   logger,
		statusFn: statusFn,
	}
}

type engineReloader struct {
	engine *dashboard.Engine
}

func (e engineReloader) Reload(ctx context.Context) error {
	return e.engine.Load(ctx)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the player collection has been loaded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}
