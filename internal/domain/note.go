package domain

import "time"

// Note is a free-form user note. Notes expire: the worker deletes notes
// older than the retention period.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
