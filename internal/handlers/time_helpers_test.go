package handlers

import (
	"testing"
	"time"
)

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	if !isValidDate("2026-08-28") {
		t.Fatalf("expected 2026-08-28 to be valid")
	}
	for _, s := range []string{"", "28-08-2026", "2026-13-01", "2026-08-28T10:00", "tomorrow"} {
		if isValidDate(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestShorthandRange(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 28, 15, 30, 0, 0, time.UTC)

	date, upcoming, ok := shorthandRange("today", now)
	if !ok || upcoming || date != "2026-08-28" {
		t.Fatalf("today: got (%q, %v, %v)", date, upcoming, ok)
	}

	date, upcoming, ok = shorthandRange("tomorrow", now)
	if !ok || upcoming || date != "2026-08-29" {
		t.Fatalf("tomorrow: got (%q, %v, %v)", date, upcoming, ok)
	}

	date, upcoming, ok = shorthandRange("upcoming", now)
	if !ok || !upcoming || date != "" {
		t.Fatalf("upcoming: got (%q, %v, %v)", date, upcoming, ok)
	}

	if _, _, ok := shorthandRange("yesterday", now); ok {
		t.Fatalf("yesterday should not resolve")
	}
}

func TestShorthandRange_MonthRollover(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)
	date, _, ok := shorthandRange("tomorrow", now)
	if !ok || date != "2026-09-01" {
		t.Fatalf("month rollover: got %q", date)
	}
}
