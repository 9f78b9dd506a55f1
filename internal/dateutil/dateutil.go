// Package dateutil provides date normalization and loose date parsing.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrUnparseableDate is returned when loose parsing recognizes nothing.
var ErrUnparseableDate = errors.New("unrecognized date")

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DateOnly returns the calendar date of t as a midnight UTC instant. All
// journal dates are normalized this way so that subtraction yields exact
// multiples of 24 hours.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseLoose parses a free-form date string relative to now.
//
// Recognized, in order: the keywords "today", "yesterday" and "tomorrow";
// weekday names (today if it matches, else the next occurrence); a bare
// four-digit year (month and day filled in from now); and finally any
// format dateparse can identify. Other all-digit strings are rejected
// rather than guessed at. Matching is case-insensitive.
func ParseLoose(s string, now time.Time) (time.Time, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if input == "" {
		return time.Time{}, ErrUnparseableDate
	}

	today := DateOnly(now)

	switch input {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if weekday, ok := weekdayMap[input]; ok {
		ahead := (int(weekday) - int(today.Weekday()) + 7) % 7
		return today.AddDate(0, 0, ahead), nil
	}

	if isDigits(input) {
		if len(input) == 4 {
			year, _ := strconv.Atoi(input)
			return time.Date(year, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, s)
	}

	parsed, err := dateparse.ParseAny(input)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, s)
	}
	return DateOnly(parsed), nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
