package settings

import (
	"fmt"

	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	NotificationsEnabled *bool   `help:"Enable or disable notifications."`
	PollIntervalSec      *int    `help:"Scheduler polling interval in seconds."`
	ToleranceMin         *int    `help:"Trigger tolerance window in minutes."`
	SnoozeMin            *int    `help:"Default snooze duration in minutes."`
	EvictionHorizonMin   *int    `help:"Suppression horizon for unacknowledged reminders in minutes."`
	Timezone             *string `help:"IANA timezone name, or Local."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Poll Interval:         %d sec\n", settings.PollIntervalSec)
		fmt.Printf("  Tolerance Window:      %d min\n", settings.ToleranceMin)
		fmt.Printf("  Snooze Duration:       %d min\n", settings.SnoozeMin)
		fmt.Printf("  Eviction Horizon:      %d min\n", settings.EvictionHorizonMin)
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		return nil
	}

	updated := false
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.PollIntervalSec != nil {
		if *c.PollIntervalSec < 1 {
			return fmt.Errorf("poll interval must be at least 1 second")
		}
		settings.PollIntervalSec = *c.PollIntervalSec
		updated = true
	}
	if c.ToleranceMin != nil {
		if *c.ToleranceMin < 1 {
			return fmt.Errorf("tolerance must be at least 1 minute")
		}
		settings.ToleranceMin = *c.ToleranceMin
		updated = true
	}
	if c.SnoozeMin != nil {
		if *c.SnoozeMin < 1 {
			return fmt.Errorf("snooze duration must be at least 1 minute")
		}
		settings.SnoozeMin = *c.SnoozeMin
		updated = true
	}
	if c.EvictionHorizonMin != nil {
		if *c.EvictionHorizonMin < 1 {
			return fmt.Errorf("eviction horizon must be at least 1 minute")
		}
		settings.EvictionHorizonMin = *c.EvictionHorizonMin
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}
	return nil
}
