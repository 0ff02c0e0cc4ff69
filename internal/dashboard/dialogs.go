package dashboard

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/logging"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers"
)

// OpenEditor opens the edit dialog. id 0 opens an empty draft for the current year.
func (e *Engine) OpenEditor(id int) (players.Form, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var form players.Form
	if id == 0 {
		form = players.NewForm(e.now().Year())
	} else {
		p, ok := players.Find(e.collection, id)
		if !ok {
			return players.Form{}, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
		}
		form = players.FormFor(p)
	}
	e.editor = &form
	e.editorSeq++
	return form, nil
}

// CloseEditor closes the edit dialog without saving.
func (e *Engine) CloseEditor() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editor = nil
	e.editorSeq++
}

// closeEditorFrom closes the editor only if it is still the one open at seq.
func (e *Engine) closeEditorFrom(seq uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editorSeq != seq {
		return
	}
	e.editor = nil
	e.editorSeq++
}

// LoadDescription fetches the player's description into the detail slot.
// A response that arrives after CloseDescription or a newer LoadDescription is dropped.
func (e *Engine) LoadDescription(ctx context.Context, id int) (players.PlayerWithDescription, error) {
	e.mu.Lock()
	e.detailSeq++
	seq := e.detailSeq
	e.mu.Unlock()

	got, err := e.source.DescribePlayer(ctx, id)

	e.mu.Lock()
	defer e.mu.Unlock()
	current := seq == e.detailSeq

	if err != nil {
		ferr := &FetchError{Op: providers.OpDescribe, ID: id, Err: err}
		logging.Error(e.logger, "load player description failed", err,
			logging.FieldOp, providers.OpDescribe,
			logging.FieldPlayerID, id,
		)
		if current {
			e.detail = nil
			e.lastErr = ferr
		}
		return players.PlayerWithDescription{}, ferr
	}

	if current {
		e.detail = &got
	} else {
		logging.Debug(e.logger, "discarding stale description", logging.FieldPlayerID, id)
	}
	return got, nil
}

// CloseDescription empties the detail slot and drops any fetch still in flight.
func (e *Engine) CloseDescription() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.detailSeq++
	e.detail = nil
}
