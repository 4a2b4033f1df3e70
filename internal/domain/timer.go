package domain

import "time"

// TimerSession is a user's pomodoro timer state. One row per user,
// upserted on every change so any client can resume where another left off.
type TimerSession struct {
	UserID      string     `json:"-"`
	FocusTime   int        `json:"focusTime"` // seconds
	RestTime    int        `json:"restTime"`  // seconds
	TimeLeft    int        `json:"timeLeft"`  // seconds
	IsFocusMode bool       `json:"isFocusMode"`
	IsRunning   bool       `json:"isRunning"`
	StartTime   *time.Time `json:"startTime"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
