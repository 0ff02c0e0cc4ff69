package players

// Player is one season's batting line for one athlete. JSON names follow the
// data source's wire format.
type Player struct {
	ID          int    `json:"id"`
	Name        string `json:"Player"`
	Year        int    `json:"Year"`
	AgeThatYear string `json:"AgeThatYear"`
	Hits        int    `json:"Hits"`
	HomeRuns    int    `json:"HomeRuns"`
	RBI         int    `json:"RBI"`
	Bats        string `json:"Bats"`
	Rank        string `json:"Rank"`
}

// IsNew reports whether the player has not been persisted yet (id 0 is the unsaved sentinel).
func (p Player) IsNew() bool {
	return p.ID == 0
}

// PlayerWithDescription is a player plus the description generated by the data source.
type PlayerWithDescription struct {
	Player
	Description string `json:"description"`
}

// MaxID returns the largest id in items, or 0 when items is empty.
func MaxID(items []Player) int {
	maxID := 0
	for _, p := range items {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID
}

// Find returns the player with the given id.
func Find(items []Player, id int) (Player, bool) {
	for _, p := range items {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}
