package activity

// WindowDays is the size of the trailing display window.
const WindowDays = 7

// DaySummary is one entry of the display window. It always exists for each
// day of the window, defaulting to zero minutes when the log has no record.
type DaySummary struct {
	Date          string  `json:"date"`
	Minutes       float64 `json:"minutes"`
	FormattedDate string  `json:"formattedDate"`
}

// Window projects the log onto the trailing WindowDays days ending at today,
// oldest first. The result always has exactly WindowDays entries.
func Window(log Log, today Day) []DaySummary {
	out := make([]DaySummary, 0, WindowDays)
	for i := WindowDays - 1; i >= 0; i-- {
		day := today.AddDays(-i)
		minutes := 0.0
		if rec, ok := log.Find(day); ok {
			minutes = rec.MinutesActive
		}
		out = append(out, DaySummary{
			Date:          day.Key(),
			Minutes:       minutes,
			FormattedDate: day.Label(),
		})
	}
	return out
}

// Streak counts consecutive days ending at today with more than zero
// recorded minutes. A missing record for today, or a zero-minute record,
// yields zero regardless of earlier days.
func Streak(log Log, today Day) int {
	streak := 0
	for day := today; ; day = day.Prev() {
		rec, ok := log.Find(day)
		if !ok || rec.MinutesActive <= 0 {
			break
		}
		streak++
	}
	return streak
}
