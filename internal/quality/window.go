package quality

import "time"

// Historical collection depth: twenty years, with a six-day cushion so
// leap years never shave the window short.
const fetchWindowDays = 20*365 + 6

// FetchWindow returns the inclusive daily collection window ending at
// the given day.
func FetchWindow(today time.Time) (start, end time.Time) {
	return today.AddDate(0, 0, -fetchWindowDays), today
}
