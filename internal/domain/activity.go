package domain

import "time"

// ActivitySession is one agent session's contribution to a user's day.
// Rows are keyed (user, day, session) so concurrent agents never clobber
// each other: each session keeps its own maximum observed minutes, and
// reads sum the sessions per day.
type ActivitySession struct {
	UserID    string
	Day       string // YYYY-MM-DD in the user's local calendar
	SessionID string
	Minutes   float64
	Country   string
	UpdatedAt time.Time
}

// ActivityDay is a per-day total aggregated across sessions.
type ActivityDay struct {
	Day       string    `json:"date"`
	Minutes   float64   `json:"minutesActive"`
	UpdatedAt time.Time `json:"lastUpdated"`
}
