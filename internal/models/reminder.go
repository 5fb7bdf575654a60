package models

import (
	"fmt"
	"time"

	"github.com/vitalog-app/vitalog/internal/constants"
)

// Reminder is a one-time scheduled notification. A reminder is either pending
// (Completed false) or completed; once completed it is never re-triggered.
type Reminder struct {
	ID        int64                      `json:"id"`
	UserID    int64                      `json:"user_id"`
	Date      string                     `json:"date"` // YYYY-MM-DD
	Time      string                     `json:"time"` // HH:MM
	Category  constants.ReminderCategory `json:"category"`
	Content   string                     `json:"content"`
	Completed bool                       `json:"completed"`
	CreatedAt time.Time                  `json:"created_at"`
}

func (r *Reminder) Validate() error {
	if r.Content == "" {
		return fmt.Errorf("reminder content cannot be empty")
	}

	if _, err := time.Parse(constants.DateFormat, r.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}

	if _, err := time.Parse(constants.TimeFormat, r.Time); err != nil {
		return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}

	if !ValidCategory(r.Category) {
		return fmt.Errorf("invalid reminder category: %s", r.Category)
	}

	return nil
}

// At returns the reminder's scheduled instant in the given location.
func (r *Reminder) At(loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, r.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}

	clock, err := time.Parse(constants.TimeFormat, r.Time)
	if err != nil {
		// Older revisions stored seconds; tolerate them on read.
		clock, err = time.Parse(constants.TimeFormatSeconds, r.Time)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time format: %w", err)
		}
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		loc,
	), nil
}

// ValidCategory reports whether c is one of the known reminder categories.
func ValidCategory(c constants.ReminderCategory) bool {
	for _, known := range constants.ReminderCategories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryLabel returns the human-readable label used in notification titles.
func CategoryLabel(c constants.ReminderCategory) string {
	switch c {
	case constants.CategoryExercise:
		return "Exercise"
	case constants.CategoryMeal:
		return "Meal"
	case constants.CategorySleep:
		return "Sleep"
	case constants.CategoryStudy:
		return "Study"
	default:
		return "Reminder"
	}
}
