package stats

import (
	"testing"
	"time"
)

func TestDayWindow(t *testing.T) {
	now := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

	got := DayWindow(now)
	if !got.Start.Equal(day(2026, time.March, 14)) {
		t.Fatalf("start = %v, want midnight of the same day", got.Start)
	}
	if !got.End.Equal(day(2026, time.March, 15)) {
		t.Fatalf("end = %v, want midnight of the next day", got.End)
	}
}

func TestDayWindowKeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	now := time.Date(2026, time.March, 14, 0, 30, 0, 0, loc)

	got := DayWindow(now)
	if got.Start.Location() != loc {
		t.Fatalf("start location = %v, want %v", got.Start.Location(), loc)
	}
	if got.Start.Hour() != 0 {
		t.Fatalf("start hour = %d, want 0", got.Start.Hour())
	}
}

func TestTrailingWindow(t *testing.T) {
	now := time.Date(2026, time.March, 14, 15, 0, 0, 0, time.UTC)

	got := TrailingWindow(now, 7)
	if !got.End.Equal(now) {
		t.Fatalf("end = %v, want now", got.End)
	}
	if !got.Start.Equal(time.Date(2026, time.March, 7, 15, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v, want 7 days before now", got.Start)
	}
}

func TestMonthStart(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"mid month", time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC), day(2026, time.March, 1)},
		{"first of month", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), day(2026, time.March, 1)},
		{"new year", time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC), day(2026, time.January, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthStart(tc.now)
			if !got.Equal(tc.want) {
				t.Fatalf("MonthStart(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}
