package model

import "time"

// Match statuses.
const (
	StatusActive   = "active"
	StatusFinished = "finished"
)

// Match is one recorded AI-vs-AI game.
type Match struct {
	ID         string        `json:"id" db:"id"`
	Name       string        `json:"name" db:"name"`
	Status     string        `json:"status" db:"status"` // active, finished
	Seed       int64         `json:"seed" db:"seed"`
	MaxTurns   int           `json:"max_turns" db:"max_turns"`
	Turns      int           `json:"turns" db:"turns"`
	Winner     string        `json:"winner,omitempty" db:"winner"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	FinishedAt *time.Time    `json:"finished_at,omitempty" db:"finished_at"`
	Players    []MatchPlayer `json:"players,omitempty" db:"-"`
}

// MatchPlayer is a seat in a match and, once it finishes, its final standing.
type MatchPlayer struct {
	MatchID     string   `json:"match_id" db:"match_id"`
	Seat        int      `json:"seat" db:"seat"`
	Name        string   `json:"name" db:"name"`
	Colour      string   `json:"colour" db:"colour"`
	Playstyle   string   `json:"playstyle" db:"playstyle"`
	Human       bool     `json:"human" db:"human"`
	Settlements int      `json:"settlements" db:"settlements"`
	Units       int      `json:"units" db:"units"`
	Wealth      float64  `json:"wealth" db:"wealth"`
	Blessings   []string `json:"blessings,omitempty" db:"-"`
}

// TurnRecord is one player's state at the end of a turn.
type TurnRecord struct {
	MatchID     string    `json:"match_id" db:"match_id"`
	Turn        int       `json:"turn" db:"turn"`
	Player      string    `json:"player" db:"player"`
	Wealth      float64   `json:"wealth" db:"wealth"`
	Settlements int       `json:"settlements" db:"settlements"`
	Units       int       `json:"units" db:"units"`
	Ongoing     string    `json:"ongoing,omitempty" db:"ongoing"`
	Blessings   []string  `json:"blessings,omitempty" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
