package testutil

import (
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
)

// SamplePlayer returns a minimal valid player with the provided id and name.
func SamplePlayer(id int, name string) players.Player {
	return players.Player{
		ID:          id,
		Name:        name,
		Year:        2023,
		AgeThatYear: "30",
		Hits:        150,
		HomeRuns:    20,
		RBI:         80,
		Bats:        "R",
		Rank:        "1",
	}
}

// SamplePlayers returns two players whose id order and name order disagree.
func SamplePlayers() []players.Player {
	trout := SamplePlayer(1, "Trout")
	trout.Hits = 120
	betts := SamplePlayer(2, "Betts")
	betts.Hits = 180
	return []players.Player{trout, betts}
}
