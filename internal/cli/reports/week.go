package reports

import (
	"fmt"

	"github.com/vitalog-app/vitalog/internal/analyzer"
	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/models"
	"github.com/vitalog-app/vitalog/internal/report"
	"github.com/vitalog-app/vitalog/internal/utils"
)

type WeekCmd struct {
	Date string `help:"Any date (YYYY-MM-DD) inside the week to report on. Defaults to the current week."`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	date, err := cli.ResolveDate(c.Date, settings.Timezone)
	if err != nil {
		return err
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}
	day, err := utils.ParseDateInLocation(date, loc)
	if err != nil {
		return err
	}
	startDate, endDate := utils.WeekWindow(day)

	// A missing profile is fine; the analyzer falls back to default
	// recommendations.
	profile, err := ctx.Store.GetProfile(constants.DefaultUserID)
	if err != nil {
		profile = models.Profile{}
	}

	exercise, err := ctx.Store.WeeklyExercise(constants.DefaultUserID, startDate, endDate)
	if err != nil {
		return fmt.Errorf("failed to load weekly exercise: %w", err)
	}
	diet, err := ctx.Store.WeeklyDiet(constants.DefaultUserID, startDate, endDate)
	if err != nil {
		return fmt.Errorf("failed to load weekly diet: %w", err)
	}
	sleep, err := ctx.Store.WeeklySleep(constants.DefaultUserID, startDate, endDate)
	if err != nil {
		return fmt.Errorf("failed to load weekly sleep: %w", err)
	}

	result := analyzer.AnalyzeWeek(profile, exercise, diet, sleep)
	fmt.Print(report.Render(startDate, endDate, result))
	return nil
}
