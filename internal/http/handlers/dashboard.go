package handlers

import (
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/dashboard"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/logging"
)

type searchRequest struct {
	Term string `json:"term"`
}

type sortRequest struct {
	Key string `json:"key"`
}

type pageRequest struct {
	Index *int `json:"index"`
}

type pageSizeRequest struct {
	Size *int `json:"size"`
}

type editorRequest struct {
	ID int `json:"id"`
}

type deleteResponse struct {
	Token dashboard.Token `json:"token"`
}

// View returns the current display state.
func (h *Handler) View(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.engine.View(), h.logger)
}

// Reload refreshes the collection from the data source.
func (h *Handler) Reload(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := h.reloader.Reload(r.Context()); err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	h.View(w, r)
}

// Search applies a name filter.
func (h *Handler) Search(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req searchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	h.engine.ApplySearch(req.Term)
	h.View(w, r)
}

// Sort requests a sort on a column, toggling direction when it is already active.
func (h *Handler) Sort(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req sortRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	key, err := players.ParseSortKey(req.Key)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err := h.engine.RequestSort(key); err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	h.View(w, r)
}

// Page moves to a page index.
func (h *Handler) Page(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req pageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if req.Index == nil {
		writeError(w, r, nethttp.StatusBadRequest, "index required", h.logger)
		return
	}
	h.engine.SetPage(*req.Index)
	h.View(w, r)
}

// PageSize changes the number of rows per page.
func (h *Handler) PageSize(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req pageSizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if req.Size == nil {
		writeError(w, r, nethttp.StatusBadRequest, "size required", h.logger)
		return
	}
	if err := h.engine.SetPageSize(*req.Size); err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	h.View(w, r)
}

// OpenEditor opens the edit dialog for a player, or a blank draft for id 0.
func (h *Handler) OpenEditor(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req editorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	form, err := h.engine.OpenEditor(req.ID)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, form, h.logger)
}

func (h *Handler) CloseEditor(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.engine.CloseEditor()
	w.WriteHeader(nethttp.StatusNoContent)
}

// CreatePlayer commits a new player.
func (h *Handler) CreatePlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	var form players.Form
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	form.ID = 0

	created, err := h.engine.CommitCreate(r.Context(), form)
	if err != nil && !h.persistedDespite(r, err) {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusCreated, created, h.logger)
}

// UpdatePlayer commits changes to an existing player.
func (h *Handler) UpdatePlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var form players.Form
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	form.ID = id

	updated, err := h.engine.CommitUpdate(r.Context(), form)
	if err != nil && !h.persistedDespite(r, err) {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, updated, h.logger)
}

// RequestDelete issues a confirmation token for deleting a player.
func (h *Handler) RequestDelete(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	token, err := h.engine.RequestDelete(id)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusAccepted, deleteResponse{Token: token}, h.logger)
}

// ConfirmDelete performs a pending delete.
func (h *Handler) ConfirmDelete(w nethttp.ResponseWriter, r *nethttp.Request) {
	token := dashboard.Token(r.PathValue("token"))
	err := h.engine.ConfirmDelete(r.Context(), token)
	if err != nil && !h.persistedDespite(r, err) {
		h.writeEngineError(w, r, err)
		return
	}
	w.WriteHeader(nethttp.StatusNoContent)
}

// CancelDelete drops a pending delete.
func (h *Handler) CancelDelete(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.engine.CancelDelete(dashboard.Token(r.PathValue("token")))
	w.WriteHeader(nethttp.StatusNoContent)
}

// Description loads a player's description into the detail slot.
func (h *Handler) Description(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.engine.LoadDescription(r.Context(), id)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, detail, h.logger)
}

func (h *Handler) CloseDescription(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.engine.CloseDescription()
	w.WriteHeader(nethttp.StatusNoContent)
}

func (h *Handler) DismissError(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.engine.DismissError()
	w.WriteHeader(nethttp.StatusNoContent)
}

func (h *Handler) pathID(w nethttp.ResponseWriter, r *nethttp.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return 0, false
	}
	return id, true
}

// persistedDespite reports whether err is only the failed reload after a mutation
// that the data source accepted. The view keeps showing the reload error.
func (h *Handler) persistedDespite(r *nethttp.Request, err error) bool {
	if _, ok := dashboard.AsFetchError(err); !ok {
		return false
	}
	logger := loggerFromContext(r, h.logger)
	logging.Warn(logger, "mutation persisted but reload failed", "error", err)
	return true
}

func (h *Handler) writeEngineError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	if verr, ok := players.AsValidationError(err); ok {
		fields := make(map[string]string, len(verr.Fields))
		for _, f := range verr.Fields {
			fields[f.Field] = f.Message
		}
		writeErrorBody(w, r, nethttp.StatusUnprocessableEntity, map[string]any{
			"error":  verr.Error(),
			"fields": fields,
		}, h.logger)
		return
	}
	if perr, ok := dashboard.AsPersistenceError(err); ok {
		writeError(w, r, nethttp.StatusBadGateway, perr.UserMessage(), h.logger)
		return
	}
	if ferr, ok := dashboard.AsFetchError(err); ok {
		writeError(w, r, nethttp.StatusBadGateway, ferr.UserMessage(), h.logger)
		return
	}

	switch {
	case errors.Is(err, dashboard.ErrPlayerNotFound), errors.Is(err, dashboard.ErrUnknownConfirmation):
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
	case errors.Is(err, dashboard.ErrUnsupportedPageSize), errors.Is(err, players.ErrUnknownSortKey):
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
	default:
		logging.Error(loggerFromContext(r, h.logger), "unhandled dashboard error", err)
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
	}
}
