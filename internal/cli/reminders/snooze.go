package reminders

import (
	"fmt"
	"time"

	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/scheduler"
)

type ReminderSnoozeCmd struct {
	ID  int64 `arg:"" help:"Reminder ID to snooze."`
	For int   `help:"Snooze duration in minutes. Defaults to the snooze setting."`
}

func (c *ReminderSnoozeCmd) Run(ctx *cli.Context) error {
	if c.For < 0 {
		return fmt.Errorf("snooze duration must be positive")
	}

	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	sched, err := scheduler.New(ctx.Store, settings, nil)
	if err != nil {
		return err
	}
	if err := sched.Snooze(c.ID, time.Duration(c.For)*time.Minute); err != nil {
		return fmt.Errorf("failed to snooze reminder: %w", err)
	}

	reminder, err := ctx.Store.GetReminder(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Reminder #%d snoozed to %s %s\n", c.ID, reminder.Date, reminder.Time)
	return nil
}
