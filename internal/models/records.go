package models

import (
	"fmt"
	"time"

	"github.com/vitalog-app/vitalog/internal/constants"
)

// ExerciseEntry is a single logged workout.
type ExerciseEntry struct {
	ID             string    `json:"id"`
	UserID         int64     `json:"user_id"`
	Date           string    `json:"date"` // YYYY-MM-DD
	ExerciseType   string    `json:"exercise_type"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned float64   `json:"calories_burned"`
	CreatedAt      time.Time `json:"created_at"`
}

func (e *ExerciseEntry) Validate() error {
	if e.ExerciseType == "" {
		return fmt.Errorf("exercise type cannot be empty")
	}
	if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	if e.DurationMin <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if e.CaloriesBurned < 0 {
		return fmt.Errorf("calories burned cannot be negative")
	}
	return nil
}

// DietEntry is a single logged food item. Macro grams are optional; zero
// means "not recorded", and the analyzer treats missing macros as zero
// contribution rather than an error.
type DietEntry struct {
	ID        string             `json:"id"`
	UserID    int64              `json:"user_id"`
	Date      string             `json:"date"` // YYYY-MM-DD
	Meal      constants.MealType `json:"meal"`
	FoodName  string             `json:"food_name"`
	Calories  float64            `json:"calories"`
	ProteinG  float64            `json:"protein_g"`
	FatG      float64            `json:"fat_g"`
	CarbsG    float64            `json:"carbs_g"`
	CreatedAt time.Time          `json:"created_at"`
}

func (d *DietEntry) Validate() error {
	if d.FoodName == "" {
		return fmt.Errorf("food name cannot be empty")
	}
	if _, err := time.Parse(constants.DateFormat, d.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	valid := false
	for _, m := range constants.MealTypes {
		if d.Meal == m {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid meal type: %s", d.Meal)
	}
	if d.Calories < 0 || d.ProteinG < 0 || d.FatG < 0 || d.CarbsG < 0 {
		return fmt.Errorf("nutrition values cannot be negative")
	}
	return nil
}

// SleepEntry is a single logged night. Duration is derived from the sleep
// and wake clock times at the persistence boundary so the analyzer never
// re-parses clock strings.
type SleepEntry struct {
	ID          string                 `json:"id"`
	UserID      int64                  `json:"user_id"`
	Date        string                 `json:"date"`       // YYYY-MM-DD (morning of waking)
	SleepTime   string                 `json:"sleep_time"` // HH:MM
	WakeTime    string                 `json:"wake_time"`  // HH:MM
	DurationMin int                    `json:"duration_min"`
	Quality     constants.SleepQuality `json:"quality"`
	CreatedAt   time.Time              `json:"created_at"`
}

func (s *SleepEntry) Validate() error {
	if _, err := time.Parse(constants.DateFormat, s.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	if _, err := time.Parse(constants.TimeFormat, s.SleepTime); err != nil {
		return fmt.Errorf("invalid sleep time format (expected HH:MM): %w", err)
	}
	if _, err := time.Parse(constants.TimeFormat, s.WakeTime); err != nil {
		return fmt.Errorf("invalid wake time format (expected HH:MM): %w", err)
	}
	if s.Quality < constants.SleepQualityMin || s.Quality > constants.SleepQualityMax {
		return fmt.Errorf("sleep quality must be between %d and %d", constants.SleepQualityMin, constants.SleepQualityMax)
	}
	return nil
}

// ExerciseDay is one day of exercise totals inside a weekly window. Absence
// of a row for a date means no activity was logged that day, not zero.
type ExerciseDay struct {
	Date           string  `json:"date"`
	DurationMin    int     `json:"duration_min"`
	CaloriesBurned float64 `json:"calories_burned"`
}

// DietDay is one day of diet totals inside a weekly window.
type DietDay struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
}

// SleepDay is one day of sleep averages inside a weekly window.
type SleepDay struct {
	Date        string  `json:"date"`
	DurationMin float64 `json:"duration_min"`
	Quality     float64 `json:"quality"`
}
