package dashboard

import (
	"slices"
	"strings"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
)

// Query holds every input of the visible-rows pipeline besides the collection.
type Query struct {
	SearchTerm string
	SortKey    players.SortKey
	Direction  players.Direction
	PageIndex  int
	PageSize   int
}

// Pipeline derives the rows to display: filter, then stable sort, then slice.
// It never modifies collection. A page past the end yields an empty slice, and
// a non-positive page size disables paging.
func Pipeline(collection []players.Player, q Query) []players.Player {
	rows := SortPlayers(Filter(collection, q.SearchTerm), q.SortKey, q.Direction)
	return Page(rows, q.PageIndex, q.PageSize)
}

// Filter returns the players whose name contains term, ignoring case.
// An empty term matches everything. The result never aliases collection.
func Filter(collection []players.Player, term string) []players.Player {
	out := make([]players.Player, 0, len(collection))
	needle := strings.ToLower(term)
	for _, p := range collection {
		if needle == "" || strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// SortPlayers stable-sorts items in place by key and returns it.
func SortPlayers(items []players.Player, key players.SortKey, dir players.Direction) []players.Player {
	collator := players.NewCollator()
	slices.SortStableFunc(items, func(a, b players.Player) int {
		c := players.Compare(a, b, key, collator)
		if dir == players.Descending {
			return -c
		}
		return c
	})
	return items
}

// Page returns the window [index*size, index*size+size) of rows.
func Page(rows []players.Player, index, size int) []players.Player {
	if size <= 0 {
		return rows
	}
	if index < 0 {
		index = 0
	}
	if index > len(rows)/size {
		return []players.Player{}
	}
	start := index * size
	if start >= len(rows) {
		return []players.Player{}
	}
	end := min(start+size, len(rows))
	return rows[start:end]
}

// PageCount returns ceil(count/size).
func PageCount(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// ClampPage bounds index to [0, pageCount-1] for display.
func ClampPage(index, count, size int) int {
	last := PageCount(count, size) - 1
	if index > last {
		index = last
	}
	if index < 0 {
		index = 0
	}
	return index
}
