package utils

import (
	"fmt"
	"time"

	"github.com/vitalog-app/vitalog/internal/constants"
)

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the specified timezone.
// This ensures that "today" is determined by the user's configured timezone, not the system timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseClock parses a time-of-day string. HH:MM is the canonical format;
// HH:MM:SS is tolerated for rows written by older revisions.
func ParseClock(timeStr string) (time.Time, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err == nil {
		return t, nil
	}
	if t, err2 := time.Parse(constants.TimeFormatSeconds, timeStr); err2 == nil {
		return t, nil
	}
	return time.Time{}, err
}

// NormalizeClock parses a clock string and re-formats it as HH:MM.
// Persistence code calls this on every write so reads never deal with
// mixed formats.
func NormalizeClock(timeStr string) (string, error) {
	t, err := ParseClock(timeStr)
	if err != nil {
		return "", fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}
	return t.Format(constants.TimeFormat), nil
}

// ParseClockToMinutes parses a clock string and returns minutes from midnight.
func ParseClockToMinutes(timeStr string) (int, error) {
	t, err := ParseClock(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// SleepDurationMin returns the minutes slept between a bedtime and a wake
// time. A wake time at or before the bedtime is treated as crossing midnight.
func SleepDurationMin(sleepTime, wakeTime string) (int, error) {
	sleepMin, err := ParseClockToMinutes(sleepTime)
	if err != nil {
		return 0, fmt.Errorf("invalid sleep time: %w", err)
	}
	wakeMin, err := ParseClockToMinutes(wakeTime)
	if err != nil {
		return 0, fmt.Errorf("invalid wake time: %w", err)
	}

	if wakeMin <= sleepMin {
		wakeMin += 24 * 60
	}
	return wakeMin - sleepMin, nil
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) in the specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	// Return the date at midnight in the specified timezone
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// CombineDateAndTime combines a date string (YYYY-MM-DD) and time string (HH:MM)
// into a single time.Time in the specified timezone.
func CombineDateAndTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}

	timeOfDay, err := ParseClock(timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		loc,
	), nil
}

// WeekWindow returns the Monday and Sunday date strings of the week
// containing the given day.
func WeekWindow(day time.Time) (string, string) {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week
	}
	monday := day.AddDate(0, 0, -(weekday - 1))
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(constants.DateFormat), sunday.Format(constants.DateFormat)
}

// RelativePhrase describes the signed offset between a scheduled instant and
// now: "in N minutes", "N minutes ago", or "now" inside one minute.
func RelativePhrase(scheduled, now time.Time) string {
	minutes := int(scheduled.Sub(now).Minutes())
	switch {
	case minutes > 0:
		return fmt.Sprintf("in %d minutes", minutes)
	case minutes < 0:
		return fmt.Sprintf("%d minutes ago", -minutes)
	default:
		return "now"
	}
}

// ValidateTimeFormat checks if the string matches an accepted time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseClock(timeStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
