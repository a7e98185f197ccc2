package utils

import "time"

const dateKeyLayout = "2006-01-02"

// DateKeyFor returns the canonical YYYY-MM-DD key for the local calendar
// day the timestamp falls on. Two timestamps on the same local day always
// produce the same key.
func DateKeyFor(t time.Time) string {
	return t.In(time.Local).Format(dateKeyLayout)
}

// TodayKey is shorthand for DateKeyFor(time.Now()).
func TodayKey() string {
	return DateKeyFor(time.Now())
}

// ParseDateKey parses a YYYY-MM-DD key back into local midnight of that day.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, time.Local)
}
