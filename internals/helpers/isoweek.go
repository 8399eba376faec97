package helper

import (
	"fmt"
	"time"
)

// ISOWeekStart returns the Monday that opens the given ISO week, at midnight UTC.
// Jan 4 is always inside ISO week 1, so the week grid is anchored there.
func ISOWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	monday := jan4.AddDate(0, 0, -(wd - 1))
	return monday.AddDate(0, 0, (week-1)*7)
}

// ISOWeekdayNumber maps time.Weekday to the 1..7 Monday-first numbering
// used across weekday settings and plan assignments.
func ISOWeekdayNumber(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// WeekdayOccurrenceInMonth returns 1 for the first occurrence of the day's
// weekday within its month, 2 for the second, and so on.
func WeekdayOccurrenceInMonth(d time.Time) int {
	return (d.Day()-1)/7 + 1
}

// ValidateISOWeek rejects (year, week) pairs outside the ISO calendar.
func ValidateISOWeek(year, week int) error {
	if year < 1 || week < 1 || week > 53 {
		return fmt.Errorf("invalid ISO week %d/%d", year, week)
	}
	if week == 53 {
		// Week 53 exists only in long ISO years.
		end := ISOWeekStart(year, 53)
		if y, w := end.ISOWeek(); y != year || w != 53 {
			return fmt.Errorf("year %d has no week 53", year)
		}
	}
	return nil
}
