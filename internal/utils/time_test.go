package utils

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
		hour    int
		minute  int
	}{
		{"08:30", false, 8, 30},
		{"23:59", false, 23, 59},
		{"07:15:42", false, 7, 15},
		{"25:00", true, 0, 0},
		{"not-a-time", true, 0, 0},
		{"", true, 0, 0},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got nil", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got.Hour() != tt.hour || got.Minute() != tt.minute {
			t.Errorf("ParseClock(%q) = %02d:%02d, want %02d:%02d", tt.input, got.Hour(), got.Minute(), tt.hour, tt.minute)
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	got, err := NormalizeClock("09:05:30")
	if err != nil {
		t.Fatalf("NormalizeClock failed: %v", err)
	}
	if got != "09:05" {
		t.Errorf("expected 09:05, got %s", got)
	}

	if _, err := NormalizeClock("9am"); err == nil {
		t.Error("expected error for invalid clock string")
	}
}

func TestSleepDurationMin(t *testing.T) {
	// Same-day window
	dur, err := SleepDurationMin("13:00", "14:30")
	if err != nil {
		t.Fatalf("SleepDurationMin failed: %v", err)
	}
	if dur != 90 {
		t.Errorf("expected 90 minutes, got %d", dur)
	}

	// Cross-midnight window
	dur, err = SleepDurationMin("23:00", "07:00")
	if err != nil {
		t.Fatalf("SleepDurationMin failed: %v", err)
	}
	if dur != 8*60 {
		t.Errorf("expected 480 minutes, got %d", dur)
	}

	// Wake equal to bedtime reads as a full day
	dur, err = SleepDurationMin("22:00", "22:00")
	if err != nil {
		t.Fatalf("SleepDurationMin failed: %v", err)
	}
	if dur != 24*60 {
		t.Errorf("expected 1440 minutes, got %d", dur)
	}
}

func TestWeekWindow(t *testing.T) {
	// 2024-01-03 is a Wednesday
	day := time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC)
	start, end := WeekWindow(day)
	if start != "2024-01-01" {
		t.Errorf("expected week start 2024-01-01, got %s", start)
	}
	if end != "2024-01-07" {
		t.Errorf("expected week end 2024-01-07, got %s", end)
	}

	// Sunday belongs to the week it closes
	sunday := time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC)
	start, end = WeekWindow(sunday)
	if start != "2024-01-01" || end != "2024-01-07" {
		t.Errorf("expected 2024-01-01..2024-01-07, got %s..%s", start, end)
	}
}

func TestRelativePhrase(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	if got := RelativePhrase(now.Add(5*time.Minute), now); got != "in 5 minutes" {
		t.Errorf("expected %q, got %q", "in 5 minutes", got)
	}
	if got := RelativePhrase(now.Add(-3*time.Minute), now); got != "3 minutes ago" {
		t.Errorf("expected %q, got %q", "3 minutes ago", got)
	}
	if got := RelativePhrase(now.Add(20*time.Second), now); got != "now" {
		t.Errorf("expected %q, got %q", "now", got)
	}
}

func TestCombineDateAndTime(t *testing.T) {
	combined, err := CombineDateAndTime("2024-06-15", "18:45", time.UTC)
	if err != nil {
		t.Fatalf("CombineDateAndTime failed: %v", err)
	}
	want := time.Date(2024, 6, 15, 18, 45, 0, 0, time.UTC)
	if !combined.Equal(want) {
		t.Errorf("expected %v, got %v", want, combined)
	}

	if _, err := CombineDateAndTime("15/06/2024", "18:45", time.UTC); err == nil {
		t.Error("expected error for invalid date format")
	}
}
