package reminders

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/vitalog-app/vitalog/internal/cli"
)

type ReminderDeleteCmd struct {
	ID  int64 `arg:"" help:"Reminder ID to delete."`
	Yes bool  `help:"Skip the confirmation prompt."`
}

func (c *ReminderDeleteCmd) Run(ctx *cli.Context) error {
	reminder, err := ctx.Store.GetReminder(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete reminder #%d (%s at %s)?", c.ID, reminder.Content, reminder.Time)).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteReminder(c.ID); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	fmt.Printf("✓ Reminder #%d deleted: %s\n", c.ID, reminder.Content)
	return nil
}
