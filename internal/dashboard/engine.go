package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/logging"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers"
)

const defaultPageSize = 10

var defaultPageSizes = []int{5, 10, 25}

// Token identifies a pending delete awaiting confirmation.
type Token string

// Config wires an Engine to its collaborators.
type Config struct {
	Source          providers.DataSource
	Logger          *slog.Logger
	PageSizes       []int
	DefaultPageSize int
	// Now supplies the default year for new player drafts.
	Now func() time.Time
	// Tokens generates delete confirmation tokens.
	Tokens func() string
}

// Engine owns the player collection and every piece of table state derived from it.
//
// The mutex is never held across a data source call, so operations may interleave
// while a call is in flight. Results that arrive after a newer load, or after the
// detail view was closed, are dropped.
type Engine struct {
	source    providers.DataSource
	logger    *slog.Logger
	pageSizes []int
	now       func() time.Time
	tokens    func() string

	mu         sync.Mutex
	collection []players.Player
	query      Query
	inFlight   int
	lastErr    error
	editor     *players.Form
	detail     *players.PlayerWithDescription
	pending    map[Token]int
	loadedAt   time.Time

	loadSeq    uint64
	appliedSeq uint64
	detailSeq  uint64
	editorSeq  uint64
}

// New constructs an Engine with the default sort (id ascending) on the first page.
func New(cfg Config) (*Engine, error) {
	if cfg.Source == nil {
		return nil, ErrNoSource
	}
	sizes := cfg.PageSizes
	if len(sizes) == 0 {
		sizes = defaultPageSizes
	}
	size := cfg.DefaultPageSize
	if size == 0 {
		size = defaultPageSize
	}
	if !slices.Contains(sizes, size) {
		return nil, fmt.Errorf("%w: default %d not in %v", ErrUnsupportedPageSize, size, sizes)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = uuid.NewString
	}

	return &Engine{
		source:    cfg.Source,
		logger:    cfg.Logger,
		pageSizes: slices.Clone(sizes),
		now:       now,
		tokens:    tokens,
		query: Query{
			SortKey:   players.SortByID,
			Direction: players.Ascending,
			PageSize:  size,
		},
		collection: []players.Player{},
		pending:    make(map[Token]int),
	}, nil
}

// Load replaces the collection with the data source's current contents and
// discards the search term. On failure the previous collection is kept.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	e.loadSeq++
	seq := e.loadSeq
	e.inFlight++
	e.lastErr = nil
	e.mu.Unlock()

	items, err := e.source.ListPlayers(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight--

	if seq <= e.appliedSeq {
		logging.Debug(e.logger, "discarding stale load", logging.FieldOp, providers.OpList)
		if err != nil {
			return &FetchError{Op: providers.OpList, Err: err}
		}
		return nil
	}
	e.appliedSeq = seq

	if err != nil {
		ferr := &FetchError{Op: providers.OpList, Err: err}
		e.lastErr = ferr
		logging.Error(e.logger, "load players failed", err, logging.FieldOp, providers.OpList)
		return ferr
	}
	if items == nil {
		items = []players.Player{}
	}
	e.collection = items
	e.query.SearchTerm = ""
	e.loadedAt = time.Now()
	logging.Debug(e.logger, "players loaded", logging.FieldCount, len(items))
	return nil
}

// LastLoad reports when a load last replaced the collection. It is zero until one has.
// Reloads after mutations count, not only scheduled ones.
func (e *Engine) LastLoad() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadedAt
}

// ApplySearch sets the name filter and returns to the first page.
func (e *Engine) ApplySearch(term string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.SearchTerm = term
	e.query.PageIndex = 0
}

// RequestSort flips the direction when key is already active, otherwise sorts by key ascending.
func (e *Engine) RequestSort(key players.SortKey) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %q", players.ErrUnknownSortKey, key)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.query.SortKey == key {
		e.query.Direction = e.query.Direction.Flip()
		return nil
	}
	e.query.SortKey = key
	e.query.Direction = players.Ascending
	return nil
}

// SetPage moves to index. Negative values become 0; pages past the end show no rows.
func (e *Engine) SetPage(index int) {
	if index < 0 {
		index = 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.PageIndex = index
}

// SetPageSize changes the page size and returns to the first page.
func (e *Engine) SetPageSize(size int) error {
	if !slices.Contains(e.pageSizes, size) {
		return fmt.Errorf("%w: %d", ErrUnsupportedPageSize, size)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.PageSize = size
	e.query.PageIndex = 0
	return nil
}

// VisibleRows returns the rows on the current page.
func (e *Engine) VisibleRows() []players.Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Pipeline(e.collection, e.query)
}

// Query returns the current pipeline inputs.
func (e *Engine) Query() Query {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query
}

// Collection returns a copy of the loaded players in data source order.
func (e *Engine) Collection() []players.Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.collection)
}

// DismissError clears the error slot.
func (e *Engine) DismissError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastErr = nil
}

// Err returns the error currently shown in the error slot.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}
