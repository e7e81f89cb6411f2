package domain

import "time"

// DefaultRecentDays is the recency window used when the caller gives none.
const DefaultRecentDays = 7

// Board is a Trello board as returned by the boards endpoints.
type Board struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	URL    string `json:"url"`
	Closed bool   `json:"closed"`
}

// List is a column on a board. Pos orders lists left to right.
type List struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Closed bool    `json:"closed"`
	Pos    float64 `json:"pos"`
}

// Label is a colored card tag; Name may be empty.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DisplayName is the label name, or its raw color code when unnamed.
func (l Label) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.Color
}

// Card is a Trello card. Due is nil when no due date is set, and
// DateLastActivity decides whether the card counts as recent.
type Card struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Desc             string     `json:"desc"`
	Due              *time.Time `json:"due"`
	DueComplete      bool       `json:"dueComplete"`
	Closed           bool       `json:"closed"`
	IDList           string     `json:"idList"`
	Labels           []Label    `json:"labels"`
	DateLastActivity time.Time  `json:"dateLastActivity"`
	URL              string     `json:"url"`
}

// BoardWithDetails is one board joined with its open lists and all of its
// cards. The board fields are flattened into the JSON object.
type BoardWithDetails struct {
	Board
	Lists []List `json:"lists"`
	Cards []Card `json:"cards"`
}

// RecentCards is the JSON view of a board's recently active cards.
type RecentCards struct {
	BoardID   string `json:"boardId"`
	BoardName string `json:"boardName"`
	Days      int    `json:"days"`
	Cards     []Card `json:"cards"`
}
