package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/logging"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/metrics"
)

// Operation names reported in metrics and logs.
const (
	OpList     = "list"
	OpDescribe = "describe"
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
)

// instrumentedSource wraps a DataSource and records every call. It never retries.
type instrumentedSource struct {
	inner    DataSource
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewInstrumented decorates inner with call metrics and failure logging under the given name.
func NewInstrumented(inner DataSource, name string, logger *slog.Logger, recorder *metrics.Recorder) DataSource {
	return &instrumentedSource{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func (s *instrumentedSource) ListPlayers(ctx context.Context) ([]players.Player, error) {
	if s.inner == nil {
		return nil, s.unavailable(ctx, OpList)
	}
	start := s.now()
	items, err := s.inner.ListPlayers(ctx)
	s.observe(ctx, OpList, 0, start, err, slog.Int(logging.FieldCount, len(items)))
	return items, err
}

func (s *instrumentedSource) DescribePlayer(ctx context.Context, id int) (players.PlayerWithDescription, error) {
	if s.inner == nil {
		return players.PlayerWithDescription{}, s.unavailable(ctx, OpDescribe)
	}
	start := s.now()
	p, err := s.inner.DescribePlayer(ctx, id)
	s.observe(ctx, OpDescribe, id, start, err)
	return p, err
}

func (s *instrumentedSource) CreatePlayer(ctx context.Context, p players.Player) (players.Player, error) {
	if s.inner == nil {
		return players.Player{}, s.unavailable(ctx, OpCreate)
	}
	start := s.now()
	created, err := s.inner.CreatePlayer(ctx, p)
	s.observe(ctx, OpCreate, p.ID, start, err)
	return created, err
}

func (s *instrumentedSource) UpdatePlayer(ctx context.Context, p players.Player) (players.Player, error) {
	if s.inner == nil {
		return players.Player{}, s.unavailable(ctx, OpUpdate)
	}
	start := s.now()
	updated, err := s.inner.UpdatePlayer(ctx, p)
	s.observe(ctx, OpUpdate, p.ID, start, err)
	return updated, err
}

func (s *instrumentedSource) DeletePlayer(ctx context.Context, id int) error {
	if s.inner == nil {
		return s.unavailable(ctx, OpDelete)
	}
	start := s.now()
	err := s.inner.DeletePlayer(ctx, id)
	s.observe(ctx, OpDelete, id, start, err)
	return err
}

func (s *instrumentedSource) observe(ctx context.Context, op string, id int, start time.Time, err error, extra ...any) {
	duration := s.now().Sub(start)
	s.recorder.RecordDataSourceCall(s.name, op, duration, err)

	args := []any{
		slog.String(logging.FieldOp, op),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	}
	if id != 0 {
		args = append(args, slog.Int(logging.FieldPlayerID, id))
	}
	if err != nil {
		args = append(args, slog.Any("err", err))
		logWithProvider(ctx, s.logger, slog.LevelWarn, s.name, "data source call failed", args...)
		return
	}
	args = append(args, extra...)
	logWithProvider(ctx, s.logger, slog.LevelDebug, s.name, "data source call", args...)
}

func (s *instrumentedSource) unavailable(ctx context.Context, op string) error {
	s.recorder.RecordDataSourceCall(s.name, op, 0, ErrProviderUnavailable)
	logWithProvider(ctx, s.logger, slog.LevelWarn, s.name, "provider unavailable", slog.String(logging.FieldOp, op))
	return ErrProviderUnavailable
}
