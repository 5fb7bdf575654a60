package reminders

import (
	"fmt"

	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/constants"
)

type ReminderListCmd struct {
	All bool `help:"Include completed reminders."`
}

func (c *ReminderListCmd) Run(ctx *cli.Context) error {
	reminders, err := ctx.Store.GetReminders(constants.DefaultUserID, c.All)
	if err != nil {
		return fmt.Errorf("failed to list reminders: %w", err)
	}

	if len(reminders) == 0 {
		fmt.Println("No reminders configured.")
		return nil
	}

	fmt.Println(cli.ReminderListHeader())
	for _, reminder := range reminders {
		fmt.Println(cli.FormatReminderRow(reminder))
	}
	return nil
}
