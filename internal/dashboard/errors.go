package dashboard

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers"
)

var (
	// ErrNoSource is returned by New when no data source is configured.
	ErrNoSource = errors.New("dashboard: data source required")
	// ErrPlayerNotFound is returned when an id is not in the loaded collection.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrUnknownConfirmation is returned when a delete token was never issued or was already used.
	ErrUnknownConfirmation = errors.New("unknown delete confirmation")
	// ErrUnsupportedPageSize is returned for page sizes outside the configured set.
	ErrUnsupportedPageSize = errors.New("unsupported page size")
)

// PersistenceError reports a create, update or delete the data source did not accept.
// The collection is left unchanged.
type PersistenceError struct {
	Op  string
	ID  int
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s player %d: %v", e.Op, e.ID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown in the dashboard's error slot.
func (e *PersistenceError) UserMessage() string {
	if e.Op == providers.OpDelete {
		return "Failed to delete player. Please try again later."
	}
	return "Failed to save player. Please try again later."
}

// FetchError reports a failed collection load or description fetch.
type FetchError struct {
	Op  string
	ID  int
	Err error
}

func (e *FetchError) Error() string {
	if e.Op == providers.OpDescribe {
		return fmt.Sprintf("describe player %d: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("list players: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown in the dashboard's error slot.
func (e *FetchError) UserMessage() string {
	if e.Op == providers.OpDescribe {
		return "Failed to load player description. Please try again later."
	}
	return "Failed to load players. Please try again later."
}

// AsPersistenceError attempts to unwrap an error into a PersistenceError.
func AsPersistenceError(err error) (*PersistenceError, bool) {
	var perr *PersistenceError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var ferr *FetchError
	if errors.As(err, &ferr) {
		return ferr, true
	}
	return nil, false
}

type userFacing interface {
	UserMessage() string
}

func userMessage(err error) string {
	if err == nil {
		return ""
	}
	var uf userFacing
	if errors.As(err, &uf) {
		return uf.UserMessage()
	}
	return err.Error()
}
