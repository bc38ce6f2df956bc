package util

import (
	"strings"
	"time"
)

const (
	// DateLayout is the compact date format used by disclosure filings.
	DateLayout = "20060102"
	// TimestampLayout is the human-readable generation stamp of a report.
	TimestampLayout = "2006-01-02 15:04"
)

var periodDays = map[string]int{
	"1W": 7,
	"1M": 30,
	"3M": 90,
}

// WindowStart returns the inclusive lower bound of a trailing window of the
// given number of days, formatted as YYYYMMDD.
func WindowStart(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(DateLayout)
}

// InWindow reports whether a YYYYMMDD date falls on or after start.
// Both values share the same fixed-width layout so a string comparison is exact.
func InWindow(date, start string) bool {
	return date >= start
}

// ParseDate parses a YYYYMMDD date. Returns (t, true) if it worked.
func ParseDate(s string) (time.Time, bool) {
	if len(s) != len(DateLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PeriodDays maps a period label (1W, 1M, 3M) to its length in days.
func PeriodDays(label string) (int, bool) {
	d, ok := periodDays[strings.ToUpper(strings.TrimSpace(label))]
	return d, ok
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
