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

type SleepAddCmd struct {
	SleepTime string `help:"Time you fell asleep (HH:MM)." required:""`
	WakeTime  string `help:"Time you woke up (HH:MM)." required:""`
	Quality   int    `help:"Sleep quality score 0-5." default:"3"`
	Date      string `help:"Morning date (YYYY-MM-DD). Defaults to today."`
}

func (c *SleepAddCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}
	date, err := cli.ResolveDate(c.Date, settings.Timezone)
	if err != nil {
		return err
	}

	// Duration is derived once here; a sleep time after the wake time is
	// read as crossing midnight.
	duration, err := utils.SleepDurationMin(c.SleepTime, c.WakeTime)
	if err != nil {
		return err
	}

	entry := models.SleepEntry{
		ID:          uuid.New().String(),
		UserID:      constants.DefaultUserID,
		Date:        date,
		SleepTime:   c.SleepTime,
		WakeTime:    c.WakeTime,
		DurationMin: duration,
		Quality:     constants.SleepQuality(c.Quality),
		CreatedAt:   time.Now(),
	}
	if err := ctx.Store.AddSleep(entry); err != nil {
		return fmt.Errorf("failed to add sleep record: %w", err)
	}

	fmt.Printf("✓ Sleep logged: %s to %s (%.1f h, quality %d) on %s\n",
		c.SleepTime, c.WakeTime, float64(duration)/60, c.Quality, date)
	return nil
}

type SleepListCmd struct {
	Week string `help:"Any date (YYYY-MM-DD) inside the week to list. Defaults to the current week."`
}

func (c *SleepListCmd) Run(ctx *cli.Context) error {
	startDate, endDate, err := weekRange(ctx, c.Week)
	if err != nil {
		return err
	}

	entries, err := ctx.Store.ListSleep(constants.DefaultUserID, startDate, endDate)
	if err != nil {
		return fmt.Errorf("failed to list sleep records: %w", err)
	}
	if len(entries) == 0 {
		fmt.Printf("No sleep records between %s and %s.\n", startDate, endDate)
		return nil
	}

	fmt.Printf("%-36s %-12s %-8s %-8s %-10s %-8s\n",
		"ID", "Date", "Sleep", "Wake", "Duration", "Quality")
	fmt.Println(strings.Repeat("-", 88))
	for _, entry := range entries {
		fmt.Printf("%-36s %-12s %-8s %-8s %-10s %-8d\n",
			entry.ID, entry.Date, entry.SleepTime, entry.WakeTime,
			fmt.Sprintf("%.1f h", float64(entry.DurationMin)/60), entry.Quality)
	}
	return nil
}
