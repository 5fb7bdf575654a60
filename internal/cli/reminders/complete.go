package reminders

import (
	"fmt"

	"github.com/vitalog-app/vitalog/internal/cli"
)

type ReminderCompleteCmd struct {
	ID int64 `arg:"" help:"Reminder ID to mark completed."`
}

func (c *ReminderCompleteCmd) Run(ctx *cli.Context) error {
	reminder, err := ctx.Store.GetReminder(c.ID)
	if err != nil {
		return err
	}
	if reminder.Completed {
		fmt.Printf("Reminder #%d is already completed.\n", c.ID)
		return nil
	}

	if err := ctx.Store.CompleteReminder(c.ID); err != nil {
		return fmt.Errorf("failed to complete reminder: %w", err)
	}
	fmt.Printf("✓ Reminder #%d completed: %s\n", c.ID, reminder.Content)
	return nil
}
