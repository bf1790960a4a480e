// Package dateutils provides common date parsing and calendar-window
// operations used by the parsers and the query resolver.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Common date format constants used throughout the application.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutSlash    = "2006/01/02"
	DateLayoutUS       = "01/02/2006"
	DateLayoutISOTime  = "2006-01-02 15:04:05"
	DateLayoutISOShort = "2006-01-02 15:04"
)

// DateFormats is the list of layouts tried when parsing a statement date
// column, in priority order.
var DateFormats = []string{
	DateLayoutISO,
	DateLayoutSlash,
	DateLayoutUS,
}

// TimeFormats is the list of layouts tried for a separate time-of-day column.
var TimeFormats = []string{
	"15:04:05",
	"15:04",
}

// ParseDate attempts to parse a date string using the known layouts.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range DateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ParseTime attempts to parse a time-of-day string using the known layouts.
func ParseTime(timeStr string) (time.Time, error) {
	timeStr = strings.TrimSpace(timeStr)
	for _, format := range TimeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time: %s", timeStr)
}

// CombineDateTime merges a parsed date and a parsed time of day into one
// timestamp in the date's location.
func CombineDateTime(day, tod time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, day.Location())
}

// ParseDateTime parses a date string optionally combined with a separate
// time-of-day string. An empty or unparseable time component leaves the
// timestamp at midnight; callers that must reject a bad time value parse
// the components separately with ParseDate and ParseTime.
func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	day, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	if strings.TrimSpace(timeStr) == "" {
		return day, nil
	}
	tod, err := ParseTime(timeStr)
	if err != nil {
		return day, nil
	}
	return CombineDateTime(day, tod), nil
}

// StartOfDay returns the given instant truncated to midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of the given day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns midnight of the Monday of the ISO week containing t.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

// WeekRange returns the inclusive Monday-to-Sunday range of the ISO week
// containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	start := StartOfWeek(t)
	return start, EndOfDay(start.AddDate(0, 0, 6))
}

// PreviousWeekRange returns the inclusive Monday-to-Sunday range of the ISO
// week preceding the one containing t.
func PreviousWeekRange(t time.Time) (time.Time, time.Time) {
	return WeekRange(StartOfWeek(t).AddDate(0, 0, -1))
}

// StartOfMonth returns midnight of the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthRange returns the inclusive first-to-last-day range of the calendar
// month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := StartOfMonth(t)
	return start, EndOfDay(start.AddDate(0, 1, -1))
}

// PreviousMonthRange returns the inclusive range of the calendar month
// preceding the one containing t.
func PreviousMonthRange(t time.Time) (time.Time, time.Time) {
	return MonthRange(StartOfMonth(t).AddDate(0, 0, -1))
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
