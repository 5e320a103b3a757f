package entities

import "time"

const AnonymousUser = "anonymous"

type Visit struct {
	UserID    string    `json:"user_id" db:"user_id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	UserAgent string    `json:"user_agent" db:"user_agent"`
}

// ColorSelection is one counted pick of a palette color.
type ColorSelection struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Index int    `json:"index"`
}

type CombinationSelection struct {
	CombinationIndex int      `json:"combinationIndex"`
	Colors           []string `json:"colors"`
	UserID           string   `json:"userId"`
}

type ColorStat struct {
	Name  string `json:"name" db:"name"`
	Hex   string `json:"hex" db:"hex"`
	Index int    `json:"index" db:"index"`
	Count int    `json:"count" db:"count"`
}

type CombinationStat struct {
	CombinationIndex int       `json:"combinationIndex"`
	Colors           []string  `json:"colors"`
	Count            int       `json:"selectionCount"`
	LastSelected     time.Time `json:"lastSelected"`
}

type GenderStat struct {
	Gender string `json:"gender" db:"gender"`
	Count  int    `json:"count" db:"count"`
}

// PopularColor is a color stat joined with its palette entry.
type PopularColor struct {
	Name           string `json:"name"`
	Hex            string `json:"hex"`
	Index          int    `json:"index"`
	RGB            string `json:"rgb,omitempty"`
	Combinations   []int  `json:"combinations,omitempty"`
	SelectionCount int    `json:"selectionCount"`
}
