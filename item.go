package fuzzy

import (
	"encoding/json"
	"sort"
)

// Item is a ranked suggestion produced from one candidate string.
type Item struct {
	UID          string
	Title        string
	Subtitle     string
	Autocomplete string
	Arg          string
	Icon         string

	// Score and Pieces come from matching the title.
	Score  float64
	Pieces []Piece
}

// Items is a list of ranked suggestions.
type Items []Item

// MarshalJSON marshals a list of Items in the launcher script-filter shape.
func (i Items) MarshalJSON() ([]byte, error) {
	var items struct {
		Items []jsonItem `json:"items"`
	}

	items.Items = make([]jsonItem, 0, len(i))
	for _, item := range i {
		ji := jsonItem{
			UID:          item.UID,
			Title:        item.Title,
			Subtitle:     item.Subtitle,
			Arg:          item.Arg,
			Autocomplete: item.Autocomplete,
			Valid:        item.Arg != "",
		}
		if item.Icon != "" {
			ji.Icon = &jsonIcon{Path: item.Icon}
		}
		items.Items = append(items.Items, ji)
	}

	return json.Marshal(items)
}

// SortByScore sorts items in place by descending score. The sort is stable
// and compares with strict >, so items with equal scores keep their original
// order.
func SortByScore(items Items) {
	sort.Stable(byScore(items))
}

// support ---------------------------------------------------------------

// jsonItem is the JSON representation of a suggestion.
type jsonItem struct {
	UID          string    `json:"uid,omitempty"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle,omitempty"`
	Arg          string    `json:"arg,omitempty"`
	Icon         *jsonIcon `json:"icon,omitempty"`
	Valid        bool      `json:"valid"`
	Autocomplete string    `json:"autocomplete,omitempty"`
}

// jsonIcon represents an icon
type jsonIcon struct {
	Type string `json:"type,omitempty"`
	Path string `json:"path"`
}

type byScore Items

func (b byScore) Len() int {
	return len(b)
}

func (b byScore) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}

func (b byScore) Less(i, j int) bool {
	return b[i].Score > b[j].Score
}
