package timeparse

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	monthYearLayout = "01-2006"
)

// ParseShiftClock parses a 24-hour "HH:MM" shift boundary such as "09:00" or "9:30".
func ParseShiftClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		t, err = time.Parse("15:4", strings.TrimSpace(s))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid shift time %q: %w", s, err)
		}
	}
	return t.Hour(), t.Minute(), nil
}

// wall-clock layouts accepted from biometric exports and manual entries
var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
}

// ParseWallClock parses a bare wall-clock time in either 24-hour ("14:30",
// "14:30:15") or 12-hour ("2:30 PM", "02:30:15 pm") form.
func ParseWallClock(s string) (hour, minute, second int, ok bool) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, norm); err == nil {
			return t.Hour(), t.Minute(), t.Second(), true
		}
	}
	return 0, 0, 0, false
}

// absolute timestamp layouts accepted in punch payloads
var absoluteLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseAbsolute parses a full date-time string.
func ParseAbsolute(s string) (time.Time, bool) {
	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// At anchors a wall-clock time onto the given calendar date, preserving the
// date's location.
func At(date time.Time, hour, minute, second int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, date.Location())
}

// MinutesBetween returns the signed whole-minute distance from a to b, rounded
// to the nearest minute. This is the single canonical rounding used for every
// lateness and earliness calculation.
func MinutesBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Minutes()))
}

// FormatHoursMinutes renders a minute count as "7h 30m". Negative counts
// collapse to "0h 0m".
func FormatHoursMinutes(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// DateKey formats a date as the "YYYY-MM-DD" bucket key.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateKey parses a "YYYY-MM-DD" date key.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// MonthYearKey formats a date as the "MM-YYYY" month bucket key.
func MonthYearKey(t time.Time) string {
	return t.Format(monthYearLayout)
}

// ParseMonthYear parses a "MM-YYYY" month bucket key to the first day of that
// month.
func ParseMonthYear(s string) (time.Time, error) {
	t, err := time.Parse(monthYearLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid monthYear %q: %w", s, err)
	}
	return t, nil
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// DatesInMonth returns every calendar day of the month containing t, at
// midnight.
func DatesInMonth(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	n := DaysInMonth(t)
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, first.AddDate(0, 0, i))
	}
	return dates
}

// DatesBetween returns the inclusive span of days from start to end at
// midnight. An inverted span yields an empty slice.
func DatesBetween(start, end time.Time) []time.Time {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
