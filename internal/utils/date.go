package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/sanctum/internal/constants"
)

// ParseDate parses a YYYY-MM-DD string as midnight UTC.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}
	return t, nil
}

// ValidateDate reports whether date is a well-formed calendar date.
func ValidateDate(date string) bool {
	_, err := ParseDate(date)
	return err == nil
}

// ShiftDate returns the date deltaDays away from date. Negative values move
// backward. Unparseable input is returned unchanged.
func ShiftDate(date string, deltaDays int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, deltaDays).Format(constants.DateFormat)
}

// WeekStart returns the Monday on or before date.
func WeekStart(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	// Sunday is 0, so shift it to the end of the week
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(constants.DateFormat)
}

// MonthKey returns the YYYY-MM prefix of date.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// DaysBetween returns the whole number of days from "from" to "to".
// The result is negative when to is earlier than from.
func DaysBetween(from, to string) (int, error) {
	start, err := ParseDate(from)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	// Both are UTC midnights, so the difference is an exact multiple of 24h
	return int(end.Sub(start).Hours() / 24), nil
}
