package records

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/models"
	"github.com/vitalog-app/vitalog/internal/utils"
)

type ExerciseAddCmd struct {
	Type     string  `arg:"" help:"Exercise type, e.g. running, swimming."`
	Duration int     `help:"Duration in minutes." required:""`
	Calories float64 `help:"Calories burned." default:"0"`
	Date     string  `help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *ExerciseAddCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}
	date, err := cli.ResolveDate(c.Date, settings.Timezone)
	if err != nil {
		return err
	}

	entry := models.ExerciseEntry{
		ID:             uuid.New().String(),
		UserID:         constants.DefaultUserID,
		Date:           date,
		ExerciseType:   c.Type,
		DurationMin:    c.Duration,
		CaloriesBurned: c.Calories,
		CreatedAt:      time.Now(),
	}
	if err := ctx.Store.AddExercise(entry); err != nil {
		return fmt.Errorf("failed to add exercise record: %w", err)
	}

	fmt.Printf("✓ Exercise logged: %s for %d min on %s\n", c.Type, c.Duration, date)
	return nil
}

type ExerciseListCmd struct {
	Week string `help:"Any date (YYYY-MM-DD) inside the week to list. Defaults to the current week."`
}

func (c *ExerciseListCmd) Run(ctx *cli.Context) error {
	startDate, endDate, err := weekRange(ctx, c.Week)
	if err != nil {
		return err
	}

	entries, err := ctx.Store.ListExercise(constants.DefaultUserID, startDate, endDate)
	if err != nil {
		return fmt.Errorf("failed to list exercise records: %w", err)
	}
	if len(entries) == 0 {
		fmt.Printf("No exercise records between %s and %s.\n", startDate, endDate)
		return nil
	}

	fmt.Printf("%-36s %-12s %-15s %-10s %-8s\n", "ID", "Date", "Type", "Duration", "Kcal")
	fmt.Println(strings.Repeat("-", 86))
	for _, entry := range entries {
		fmt.Printf("%-36s %-12s %-15s %-10d %-8.0f\n",
			entry.ID, entry.Date, entry.ExerciseType, entry.DurationMin, entry.CaloriesBurned)
	}
	return nil
}

// weekRange resolves a Monday..Sunday window around the given date, or
// around today when empty.
func weekRange(ctx *cli.Context, date string) (string, string, error) {
	settings, err := ctx.LoadSettings()
	if err != nil {
		return "", "", err
	}

	date, err = cli.ResolveDate(date, settings.Timezone)
	if err != nil {
		return "", "", err
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return "", "", err
	}
	day, err := utils.ParseDateInLocation(date, loc)
	if err != nil {
		return "", "", err
	}
	startDate, endDate := utils.WeekWindow(day)
	return startDate, endDate, nil
}
