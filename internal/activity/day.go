// Package activity holds the domain model for the per-day activity log:
// local-calendar-day bucketing, the capped upsert-by-day log, and the
// derived 7-day window and streak.
package activity

import (
	"fmt"
	"time"
)

// DayKeyFormat is the canonical storage key for a local calendar day.
const DayKeyFormat = "2006-01-02"

// Day is a local calendar day. It carries no time-of-day and no UTC offset;
// construction from a time.Time buckets by that value's own location so that
// activity observed at 23:59 and 00:01 local lands in different days
// regardless of the machine's offset from UTC.
type Day struct {
	year  int
	month time.Month
	day   int
}

// DayOf buckets a timestamp into its local calendar day. Both the recorder
// and the aggregator must go through this function; it is the single place
// day bucketing happens.
func DayOf(t time.Time) Day {
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDay parses a YYYY-MM-DD key into a Day.
func ParseDay(key string) (Day, error) {
	t, err := time.Parse(DayKeyFormat, key)
	if err != nil {
		return Day{}, fmt.Errorf("activity: invalid day key %q: %w", key, err)
	}
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// Key returns the canonical YYYY-MM-DD representation.
func (d Day) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Label returns a short display label such as "Mar 22".
func (d Day) Label() string {
	return fmt.Sprintf("%s %02d", d.month.String()[:3], d.day)
}

// AddDays returns the day shifted by n calendar days. time.Date normalizes
// out-of-range values, so month and year boundaries are handled for free.
func (d Day) AddDays(n int) Day {
	t := time.Date(d.year, d.month, d.day+n, 0, 0, 0, 0, time.UTC)
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Prev returns the previous calendar day.
func (d Day) Prev() Day {
	return d.AddDays(-1)
}

// Equal reports whether two days are the same calendar day.
func (d Day) Equal(other Day) bool {
	return d == other
}

// Before reports whether d is an earlier calendar day than other.
func (d Day) Before(other Day) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// IsZero reports whether the day is the zero value.
func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	return d.Key()
}
