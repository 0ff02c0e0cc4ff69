package fixture

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers"
)

// ProviderName identifies this data source in logs and metrics.
const ProviderName = "fixture"

// Provider is an in-memory data source useful for local runs and tests.
// It answers the way the players REST API does, including its error statuses.
type Provider struct {
	mu      sync.Mutex
	players []players.Player
}

var _ providers.DataSource = (*Provider)(nil)

// New creates a fixture provider seeded with Seed().
func New() *Provider {
	return NewWith(Seed())
}

// NewWith creates a fixture provider holding a copy of items.
func NewWith(items []players.Player) *Provider {
	return &Provider{players: append([]players.Player(nil), items...)}
}

// Seed returns a deterministic set of players.
func Seed() []players.Player {
	return []players.Player{
		{ID: 1, Name: "Mike Trout", Year: 2021, AgeThatYear: "29", Hits: 147, HomeRuns: 39, RBI: 104, Bats: "319", Rank: "15"},
		{ID: 2, Name: "Mookie Betts", Year: 2021, AgeThatYear: "28", Hits: 142, HomeRuns: 29, RBI: 87, Bats: "301", Rank: "2"},
		{ID: 3, Name: "Aaron Judge", Year: 2022, AgeThatYear: "30", Hits: 177, HomeRuns: 62, RBI: 131, Bats: "R", Rank: "1"},
		{ID: 4, Name: "Freddie Freeman", Year: 2022, AgeThatYear: "32", Hits: 199, HomeRuns: 21, RBI: 100, Bats: "L", Rank: "4"},
		{ID: 5, Name: "Shohei Ohtani", Year: 2023, AgeThatYear: "28", Hits: 151, HomeRuns: 44, RBI: 95, Bats: "L", Rank: "3"},
	}
}

// ListPlayers returns a copy of the stored players in insertion order.
func (p *Provider) ListPlayers(ctx context.Context) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return append(make([]players.Player, 0, len(p.players)), p.players...), nil
}

// DescribePlayer returns the player with the fallback description the backend
// produces when no generated text is available.
func (p *Provider) DescribePlayer(ctx context.Context, id int) (players.PlayerWithDescription, error) {
	if err := ctx.Err(); err != nil {
		return players.PlayerWithDescription{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.indexOf(id)
	if idx < 0 {
		return players.PlayerWithDescription{}, notFound("describe player", id)
	}
	found := p.players[idx]
	return players.PlayerWithDescription{Player: found, Description: Describe(found)}, nil
}

// CreatePlayer stores p. An id already in use is rejected with 400.
func (p *Provider) CreatePlayer(ctx context.Context, pl players.Player) (players.Player, error) {
	if err := ctx.Err(); err != nil {
		return players.Player{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.indexOf(pl.ID) >= 0 {
		return players.Player{}, &providers.StatusError{
			Op:         "create player",
			StatusCode: http.StatusBadRequest,
			Body:       fmt.Sprintf("Player with ID %d already exists", pl.ID),
		}
	}
	p.players = append(p.players, pl)
	return pl, nil
}

// UpdatePlayer replaces the stored record with the same id.
func (p *Provider) UpdatePlayer(ctx context.Context, pl players.Player) (players.Player, error) {
	if err := ctx.Err(); err != nil {
		return players.Player{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.indexOf(pl.ID)
	if idx < 0 {
		return players.Player{}, notFound("update player", pl.ID)
	}
	p.players[idx] = pl
	return pl, nil
}

// DeletePlayer removes the record with the given id.
func (p *Provider) DeletePlayer(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.indexOf(id)
	if idx < 0 {
		return notFound("delete player", id)
	}
	p.players = append(p.players[:idx], p.players[idx+1:]...)
	return nil
}

// Describe builds the backend's fallback player description.
func Describe(p players.Player) string {
	return fmt.Sprintf(
		"No AI-generated description available for %s at this time. During the %d season, they recorded %d hits at age %s.",
		p.Name, p.Year, p.Hits, p.AgeThatYear,
	)
}

func (p *Provider) indexOf(id int) int {
	for i, pl := range p.players {
		if pl.ID == id {
			return i
		}
	}
	return -1
}

func notFound(op string, id int) error {
	return &providers.StatusError{
		Op:         op,
		StatusCode: http.StatusNotFound,
		Body:       fmt.Sprintf("Player with ID %d not found", id),
	}
}
