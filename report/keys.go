package report

import "time"

// UnknownKey buckets orders whose timestamp is missing or unparseable.
// It sorts ahead of every ISO key under descending order ("U" > digits).
const UnknownKey = "Unknown"

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// DayKey truncates an ISO timestamp to YYYY-MM-DD
func DayKey(ts string) string {
	if len(ts) < len(dayLayout) {
		return UnknownKey
	}
	key := ts[:len(dayLayout)]
	if _, err := time.Parse(dayLayout, key); err != nil {
		return UnknownKey
	}
	return key
}

// MonthKey truncates a day key (or timestamp) to YYYY-MM
func MonthKey(day string) string {
	if len(day) < len(monthLayout) {
		return UnknownKey
	}
	key := day[:len(monthLayout)]
	if _, err := time.Parse(monthLayout, key); err != nil {
		return UnknownKey
	}
	return key
}

// TodayKey is the UTC calendar day of t
func TodayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
