package dashboard

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/logging"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers"
)

// CommitCreate validates draft, assigns the next id and sends it to the data source,
// then reloads. Validation failures return *players.ValidationError without any call.
// When the create succeeds but the reload fails, the created player is returned with
// the reload's *FetchError. An editor opened while the write was in flight stays open.
func (e *Engine) CommitCreate(ctx context.Context, draft players.Form) (players.Player, error) {
	p, err := draft.Validate()
	if err != nil {
		return players.Player{}, err
	}

	e.mu.Lock()
	p.ID = players.MaxID(e.collection) + 1
	editor := e.editorSeq
	e.mu.Unlock()

	created, err := e.source.CreatePlayer(ctx, p)
	if err != nil {
		return players.Player{}, e.persistenceFailed(providers.OpCreate, p.ID, err)
	}
	logging.Info(e.logger, "player created", logging.FieldPlayerID, p.ID)

	e.closeEditorFrom(editor)
	return created, e.Load(ctx)
}

// CommitUpdate validates form and sends it to the data source keyed by its id, then reloads.
func (e *Engine) CommitUpdate(ctx context.Context, form players.Form) (players.Player, error) {
	if form.ID == 0 {
		return players.Player{}, fmt.Errorf("%w: update needs an id", ErrPlayerNotFound)
	}
	e.mu.Lock()
	_, ok := players.Find(e.collection, form.ID)
	editor := e.editorSeq
	e.mu.Unlock()
	if !ok {
		return players.Player{}, fmt.Errorf("%w: %d", ErrPlayerNotFound, form.ID)
	}

	p, err := form.Validate()
	if err != nil {
		return players.Player{}, err
	}

	updated, err := e.source.UpdatePlayer(ctx, p)
	if err != nil {
		return players.Player{}, e.persistenceFailed(providers.OpUpdate, p.ID, err)
	}
	logging.Info(e.logger, "player updated", logging.FieldPlayerID, p.ID)

	e.closeEditorFrom(editor)
	return updated, e.Load(ctx)
}

// RequestDelete starts the two-step delete. Nothing is sent until ConfirmDelete
// is called with the returned token.
func (e *Engine) RequestDelete(id int) (Token, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := players.Find(e.collection, id); !ok {
		return "", fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	token := Token(e.tokens())
	e.pending[token] = id
	return token, nil
}

// ConfirmDelete consumes token and deletes the player it was issued for, then reloads.
// A failed delete is reported, not retried; a new token is needed to try again.
func (e *Engine) ConfirmDelete(ctx context.Context, token Token) error {
	e.mu.Lock()
	id, ok := e.pending[token]
	delete(e.pending, token)
	e.mu.Unlock()
	if !ok {
		return ErrUnknownConfirmation
	}

	if err := e.source.DeletePlayer(ctx, id); err != nil {
		return e.persistenceFailed(providers.OpDelete, id, err)
	}
	logging.Info(e.logger, "player deleted", logging.FieldPlayerID, id)

	return e.Load(ctx)
}

// CancelDelete drops a pending delete. Unknown tokens are ignored.
func (e *Engine) CancelDelete(token Token) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.pending, token)
}

func (e *Engine) persistenceFailed(op string, id int, err error) error {
	perr := &PersistenceError{Op: op, ID: id, Err: err}
	e.mu.Lock()
	e.lastErr = perr
	e.mu.Unlock()
	logging.Error(e.logger, "persist player failed", err,
		logging.FieldOp, op,
		logging.FieldPlayerID, id,
	)
	return perr
}
