package helper

import (
	"testing"
	"time"
)

func TestISOWeekStart(t *testing.T) {
	cases := []struct {
		year, week int
		want       string
	}{
		{2026, 1, "2025-12-29"}, // 2026 starts mid-week
		{2026, 10, "2026-03-02"},
		{2024, 1, "2024-01-01"},
		{2021, 1, "2021-01-04"},
		{2020, 53, "2020-12-28"},
	}
	for _, tc := range cases {
		got := ISOWeekStart(tc.year, tc.week).Format("2006-01-02")
		if got != tc.want {
			t.Errorf("ISOWeekStart(%d, %d) = %s, want %s", tc.year, tc.week, got, tc.want)
		}
	}
}

func TestISOWeekStart_RoundTrips(t *testing.T) {
	for week := 1; week <= 52; week++ {
		start := ISOWeekStart(2026, week)
		if y, w := start.ISOWeek(); y != 2026 || w != week {
			t.Errorf("week %d: ISOWeek() = %d/%d", week, y, w)
		}
		if start.Weekday() != time.Monday {
			t.Errorf("week %d does not start on Monday", week)
		}
	}
}

func TestISOWeekdayNumber(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if got := ISOWeekdayNumber(monday); got != 1 {
		t.Errorf("Monday = %d, want 1", got)
	}
	sunday := monday.AddDate(0, 0, 6)
	if got := ISOWeekdayNumber(sunday); got != 7 {
		t.Errorf("Sunday = %d, want 7", got)
	}
}

func TestWeekdayOccurrenceInMonth(t *testing.T) {
	cases := []struct {
		day  int
		want int
	}{
		{1, 1}, {7, 1}, {8, 2}, {14, 2}, {15, 3}, {28, 4}, {29, 5},
	}
	for _, tc := range cases {
		d := time.Date(2026, 3, tc.day, 0, 0, 0, 0, time.UTC)
		if got := WeekdayOccurrenceInMonth(d); got != tc.want {
			t.Errorf("day %d: occurrence %d, want %d", tc.day, got, tc.want)
		}
	}
}

func TestValidateISOWeek(t *testing.T) {
	valid := []struct{ year, week int }{
		{2026, 1}, {2026, 52},
		{2026, 53}, // long year, starts on a Thursday
		{2020, 53}, // long leap year
	}
	for _, tc := range valid {
		if err := ValidateISOWeek(tc.year, tc.week); err != nil {
			t.Errorf("%d/%d should be valid: %v", tc.year, tc.week, err)
		}
	}

	invalid := []struct{ year, week int }{
		{2026, 0}, {2026, 54}, {0, 1}, {-5, 10},
		{2023, 53}, {2024, 53},
	}
	for _, tc := range invalid {
		if err := ValidateISOWeek(tc.year, tc.week); err == nil {
			t.Errorf("%d/%d should be rejected", tc.year, tc.week)
		}
	}
}
