package players

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names a sortable player column.
type SortKey string

// Sortable columns. Numeric keys compare as integers; the rest compare as text.
const (
	SortByID          SortKey = "id"
	SortByName        SortKey = "name"
	SortByYear        SortKey = "year"
	SortByAgeThatYear SortKey = "ageThatYear"
	SortByHits        SortKey = "hits"
	SortByHomeRuns    SortKey = "homeRuns"
	SortByRBI         SortKey = "rbi"
	SortByBats        SortKey = "bats"
	SortByRank        SortKey = "rank"
)

type column struct {
	numeric func(Player) int
	text    func(Player) string
}

var columns = map[SortKey]column{
	SortByID:          {numeric: func(p Player) int { return p.ID }},
	SortByName:        {text: func(p Player) string { return p.Name }},
	SortByYear:        {numeric: func(p Player) int { return p.Year }},
	SortByAgeThatYear: {text: func(p Player) string { return p.AgeThatYear }},
	SortByHits:        {numeric: func(p Player) int { return p.Hits }},
	SortByHomeRuns:    {numeric: func(p Player) int { return p.HomeRuns }},
	SortByRBI:         {numeric: func(p Player) int { return p.RBI }},
	SortByBats:        {text: func(p Player) string { return p.Bats }},
	SortByRank:        {text: func(p Player) string { return p.Rank }},
}

// wire names as sent by the data source, accepted as aliases.
var sortKeyAliases = map[string]SortKey{
	"player": SortByName,
}

// SortKeys lists every sortable column in display order.
func SortKeys() []SortKey {
	return []SortKey{
		SortByID, SortByName, SortByYear, SortByAgeThatYear, SortByHits,
		SortByHomeRuns, SortByRBI, SortByBats, SortByRank,
	}
}

// ParseSortKey resolves a column name case-insensitively. Both the dashboard names
// ("ageThatYear") and the wire names ("AgeThatYear", "Player") are accepted.
func ParseSortKey(raw string) (SortKey, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if key, ok := sortKeyAliases[name]; ok {
		return key, nil
	}
	for _, key := range SortKeys() {
		if strings.ToLower(string(key)) == name {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, raw)
}

// Valid reports whether k is a known column.
func (k SortKey) Valid() bool {
	_, ok := columns[k]
	return ok
}

// Numeric reports whether k compares as an integer column.
func (k SortKey) Numeric() bool {
	return columns[k].numeric != nil
}

// Direction is the sort order of the active column.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// NewCollator returns a case-insensitive, locale-aware collator for text columns.
// Collators keep internal buffers and must not be shared between goroutines.
func NewCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// Compare orders a and b by key in ascending order. Unknown keys compare equal.
func Compare(a, b Player, key SortKey, c *collate.Collator) int {
	col, ok := columns[key]
	if !ok {
		return 0
	}
	if col.numeric != nil {
		return cmp.Compare(col.numeric(a), col.numeric(b))
	}
	if c == nil {
		c = NewCollator()
	}
	return c.CompareString(col.text(a), col.text(b))
}
