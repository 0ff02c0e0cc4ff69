package dashboard

import (
	"slices"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
)

// View is the read-only display state handed to the rendering layer.
type View struct {
	Rows          []players.Player               `json:"rows"`
	TotalCount    int                            `json:"totalCount"`
	FilteredCount int                            `json:"filteredCount"`
	SearchTerm    string                         `json:"searchTerm"`
	SortKey       players.SortKey                `json:"sortKey"`
	SortDirection players.Direction              `json:"sortDirection"`
	PageIndex     int                            `json:"pageIndex"`
	DisplayPage   int                            `json:"displayPage"`
	PageCount     int                            `json:"pageCount"`
	PageSize      int                            `json:"pageSize"`
	PageSizes     []int                          `json:"pageSizes"`
	Loading       bool                           `json:"loading"`
	Error         string                         `json:"error,omitempty"`
	Editor        *players.Form                  `json:"editor,omitempty"`
	Detail        *players.PlayerWithDescription `json:"detail,omitempty"`
}

// View snapshots the current display state.
func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	filtered := SortPlayers(Filter(e.collection, e.query.SearchTerm), e.query.SortKey, e.query.Direction)
	v := View{
		Rows:          Page(filtered, e.query.PageIndex, e.query.PageSize),
		TotalCount:    len(e.collection),
		FilteredCount: len(filtered),
		SearchTerm:    e.query.SearchTerm,
		SortKey:       e.query.SortKey,
		SortDirection: e.query.Direction,
		PageIndex:     e.query.PageIndex,
		DisplayPage:   ClampPage(e.query.PageIndex, len(filtered), e.query.PageSize),
		PageCount:     PageCount(len(filtered), e.query.PageSize),
		PageSize:      e.query.PageSize,
		PageSizes:     slices.Clone(e.pageSizes),
		Loading:       e.inFlight > 0,
		Error:         userMessage(e.lastErr),
	}
	if e.editor != nil {
		form := *e.editor
		v.Editor = &form
	}
	if e.detail != nil {
		detail := *e.detail
		v.Detail = &detail
	}
	return v
}
