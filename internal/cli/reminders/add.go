package reminders

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/models"
	"github.com/vitalog-app/vitalog/internal/utils"
)

type ReminderAddCmd struct {
	Content  string `arg:"" help:"Reminder text."`
	Time     string `help:"Time for the reminder (HH:MM)." required:""`
	Date     string `help:"Date for the reminder (YYYY-MM-DD). Defaults to today."`
	Category string `help:"Category (exercise|meal|sleep|study|other)." default:"other"`
	Yes      bool   `help:"Skip the past-date confirmation prompt."`
}

func (c *ReminderAddCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	date, err := cli.ResolveDate(c.Date, settings.Timezone)
	if err != nil {
		return err
	}

	if !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time format (expected HH:MM): %s", c.Time)
	}

	reminder := models.Reminder{
		UserID:    constants.DefaultUserID,
		Date:      date,
		Time:      c.Time,
		Category:  constants.ReminderCategory(c.Category),
		Content:   c.Content,
		CreatedAt: time.Now(),
	}
	if err := reminder.Validate(); err != nil {
		return err
	}

	// A reminder in the past will fire late or never; make sure that is
	// what the user wants.
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}
	scheduled, err := reminder.At(loc)
	if err != nil {
		return err
	}
	if scheduled.Before(time.Now().In(loc)) && !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Scheduled time %s %s is in the past. Add anyway?", date, c.Time)).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reminder not added.")
			return nil
		}
	}

	id, err := ctx.Store.AddReminder(reminder)
	if err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}

	fmt.Printf("✓ Reminder #%d added: %s at %s on %s (%s)\n",
		id, reminder.Content, reminder.Time, reminder.Date, reminder.Category)
	return nil
}
