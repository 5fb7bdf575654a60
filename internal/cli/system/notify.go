package system

import (
	"fmt"

	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/notifier"
	"github.com/vitalog-app/vitalog/internal/scheduler"
	"github.com/vitalog-app/vitalog/internal/utils"
)

// NotifyCmd runs a single due-reminder sweep. Meant to be called from cron
// or a systemd timer as an alternative to the long-running watch command.
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	sink := scheduler.SinkFunc(notifier.New().Notify)
	if c.DryRun {
		sink = func(id int64, title, message string) error {
			fmt.Printf("[DryRun] #%d %s: %s\n", id, title, message)
			return nil
		}
	}

	sched, err := scheduler.New(ctx.Store, settings, sink)
	if err != nil {
		return fmt.Errorf("failed to build scheduler: %w", err)
	}

	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return err
	}

	due, err := sched.CheckDue(now)
	if err != nil {
		return err
	}
	if c.DryRun && len(due) == 0 {
		fmt.Println("No reminders due.")
	}
	return nil
}
