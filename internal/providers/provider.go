package providers

import (
	"context"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
)

//go:generate mockgen -destination=mocks/mock_datasource.go -package=mocks github.com/preston-bernstein/baseball-stats-dashboard/internal/providers DataSource

// DataSource is the external store of player records.
// Every method is a single round trip; implementations must not retry.
type DataSource interface {
	// ListPlayers returns the full collection.
	ListPlayers(ctx context.Context) ([]players.Player, error)
	// DescribePlayer returns the player with its generated description.
	DescribePlayer(ctx context.Context, id int) (players.PlayerWithDescription, error)
	// CreatePlayer stores a new record whose id has already been assigned by the caller.
	CreatePlayer(ctx context.Context, p players.Player) (players.Player, error)
	// UpdatePlayer replaces the record with the same id.
	UpdatePlayer(ctx context.Context, p players.Player) (players.Player, error)
	DeletePlayer(ctx context.Context, id int) error
}
