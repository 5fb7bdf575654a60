package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/logger"
	"github.com/vitalog-app/vitalog/internal/notifier"
	"github.com/vitalog-app/vitalog/internal/scheduler"
)

// WatchCmd runs the reminder scheduler in the foreground until interrupted.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	if !settings.NotificationsEnabled {
		fmt.Println("Notifications are disabled in settings. Enable them with 'vitalog settings --notifications-enabled'.")
		return nil
	}

	sched, err := scheduler.New(ctx.Store, settings, notifier.New().Notify)
	if err != nil {
		return fmt.Errorf("failed to build scheduler: %w", err)
	}

	sched.Start()
	logger.Info("scheduler started", "poll_interval_sec", settings.PollIntervalSec, "tolerance_min", settings.ToleranceMin)
	fmt.Printf("Watching for due reminders every %d seconds. Press Ctrl+C to stop.\n", settings.PollIntervalSec)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nStopping scheduler...")
	sched.Stop()
	logger.Info("scheduler stopped")
	return nil
}
