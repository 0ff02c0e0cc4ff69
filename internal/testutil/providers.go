package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers"
)

// ErrSource fails every call with Err.
type ErrSource struct {
	Err error
}

func (s ErrSource) ListPlayers(ctx context.Context) ([]players.Player, error) {
	return nil, s.Err
}

func (s ErrSource) DescribePlayer(ctx context.Context, id int) (players.PlayerWithDescription, error) {
	return players.PlayerWithDescription{}, s.Err
}

func (s ErrSource) CreatePlayer(ctx context.Context, p players.Player) (players.Player, error) {
	return players.Player{}, s.Err
}

func (s ErrSource) UpdatePlayer(ctx context.Context, p players.Player) (players.Player, error) {
	return players.Player{}, s.Err
}

func (s ErrSource) DeletePlayer(ctx context.Context, id int) error {
	return s.Err
}

// UnavailableSource returns providers.ErrProviderUnavailable from every call.
func UnavailableSource() ErrSource {
	return ErrSource{Err: providers.ErrProviderUnavailable}
}

// FlakySource delegates to Inner but fails the operations named in Fail.
// Operation names are the providers.Op* constants.
type FlakySource struct {
	Inner providers.DataSource

	mu   sync.Mutex
	fail map[string]error
}

// NewFlakySource wraps inner with no failing operations.
func NewFlakySource(inner providers.DataSource) *FlakySource {
	return &FlakySource{Inner: inner, fail: map[string]error{}}
}

// FailOn makes op return err until cleared with a nil err.
func (s *FlakySource) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.fail, op)
		return
	}
	s.fail[op] = err
}

func (s *FlakySource) failure(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fail[op]
}

func (s *FlakySource) ListPlayers(ctx context.Context) ([]players.Player, error) {
	if err := s.failure(providers.OpList); err != nil {
		return nil, err
	}
	return s.Inner.ListPlayers(ctx)
}

func (s *FlakySource) DescribePlayer(ctx context.Context, id int) (players.PlayerWithDescription, error) {
	if err := s.failure(providers.OpDescribe); err != nil {
		return players.PlayerWithDescription{}, err
	}
	return s.Inner.DescribePlayer(ctx, id)
}

func (s *FlakySource) CreatePlayer(ctx context.Context, p players.Player) (players.Player, error) {
	if err := s.failure(providers.OpCreate); err != nil {
		return players.Player{}, err
	}
	return s.Inner.CreatePlayer(ctx, p)
}

func (s *FlakySource) UpdatePlayer(ctx context.Context, p players.Player) (players.Player, error) {
	if err := s.failure(providers.OpUpdate); err != nil {
		return players.Player{}, err
	}
	return s.Inner.UpdatePlayer(ctx, p)
}

func (s *FlakySource) DeletePlayer(ctx context.Context, id int) error {
	if err := s.failure(providers.OpDelete); err != nil {
		return err
	}
	return s.Inner.DeletePlayer(ctx, id)
}
