package activity

import (
	"encoding/json"
	"sort"
	"time"
)

const (
	// LogKey is the fixed key the local log is stored under.
	LogKey = "userActivities"
	// MaxLogDays caps the number of per-day records kept locally. Older
	// records are pruned on every write.
	MaxLogDays = 14
)

// Record is one day's worth of observed activity.
type Record struct {
	Date          string  `json:"date"`
	MinutesActive float64 `json:"minutesActive"`
	LastUpdated   string  `json:"lastUpdated"`
}

// Log is the local activity log, ordered most-recent-first and unique by
// date. The recorder owns writes; the aggregator only reads.
type Log []Record

// DecodeLog parses stored log bytes. Missing or malformed data degrades to
// an empty log; corruption is never an error the caller has to handle.
func DecodeLog(data []byte) Log {
	if len(data) == 0 {
		return Log{}
	}
	var log Log
	if err := json.Unmarshal(data, &log); err != nil {
		return Log{}
	}
	out := log[:0]
	for _, rec := range log {
		if _, err := ParseDay(rec.Date); err != nil {
			continue
		}
		if rec.MinutesActive < 0 {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Encode serializes the log for storage.
func (l Log) Encode() ([]byte, error) {
	return json.Marshal(l)
}

// Find returns the record for the given day, if present.
func (l Log) Find(day Day) (Record, bool) {
	key := day.Key()
	for _, rec := range l {
		if rec.Date == key {
			return rec, true
		}
	}
	return Record{}, false
}

// Upsert sets the minutes for the given day, creating the record if absent,
// then re-sorts most-recent-first and prunes past the retention cap. The
// returned log is a new slice; the receiver is not modified.
func (l Log) Upsert(day Day, minutes float64, now time.Time) Log {
	key := day.Key()
	updated := Record{
		Date:          key,
		MinutesActive: minutes,
		LastUpdated:   now.Format(time.RFC3339),
	}

	out := make(Log, 0, len(l)+1)
	replaced := false
	for _, rec := range l {
		if rec.Date == key {
			out = append(out, updated)
			replaced = true
			continue
		}
		out = append(out, rec)
	}
	if !replaced {
		out = append(out, updated)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	if len(out) > MaxLogDays {
		out = out[:MaxLogDays]
	}
	return out
}
