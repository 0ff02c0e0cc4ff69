package players

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FormValue is free text typed into a numeric form field. It decodes from either a
// JSON string or a JSON number so clients may send whichever they hold.
type FormValue string

// UnmarshalJSON accepts "2021", 2021 and null.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*v = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}

// Int parses the value as a base-10 integer after trimming whitespace.
func (v FormValue) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(v)))
}

// Form is the edit dialog's working copy of a player. Year and Hits stay text until
// Validate so that bad input can be reported per field.
type Form struct {
	ID          int       `json:"id"`
	Name        string    `json:"Player"`
	Year        FormValue `json:"Year"`
	AgeThatYear string    `json:"AgeThatYear"`
	Hits        FormValue `json:"Hits"`
	HomeRuns    int       `json:"HomeRuns"`
	RBI         int       `json:"RBI"`
	Bats        string    `json:"Bats"`
	Rank        string    `json:"Rank"`
}

// NewForm returns an empty draft for a player that does not exist yet.
func NewForm(year int) Form {
	return Form{
		Year: FormValue(strconv.Itoa(year)),
		Hits: "0",
	}
}

// FormFor returns a form prefilled from an existing player.
func FormFor(p Player) Form {
	return Form{
		ID:          p.ID,
		Name:        p.Name,
		Year:        FormValue(strconv.Itoa(p.Year)),
		AgeThatYear: p.AgeThatYear,
		Hits:        FormValue(strconv.Itoa(p.Hits)),
		HomeRuns:    p.HomeRuns,
		RBI:         p.RBI,
		Bats:        p.Bats,
		Rank:        p.Rank,
	}
}

// Validate checks the fields the dashboard requires and converts the form into a Player.
// All field problems are reported together in a *ValidationError.
func (f Form) Validate() (Player, error) {
	var verr ValidationError

	name := strings.TrimSpace(f.Name)
	if name == "" {
		verr.add(FieldName, "name required")
	}
	year, err := f.Year.Int()
	if err != nil {
		verr.add(FieldYear, "year must be numeric")
	}
	hits, err := f.Hits.Int()
	if err != nil {
		verr.add(FieldHits, "hits must be numeric")
	}
	if len(verr.Fields) > 0 {
		return Player{}, &verr
	}

	return Player{
		ID:          f.ID,
		Name:        name,
		Year:        year,
		AgeThatYear: f.AgeThatYear,
		Hits:        hits,
		HomeRuns:    f.HomeRuns,
		RBI:         f.RBI,
		Bats:        f.Bats,
		Rank:        f.Rank,
	}, nil
}
