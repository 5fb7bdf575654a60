package profile

import (
	"fmt"

	"github.com/vitalog-app/vitalog/internal/analyzer"
	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/models"
)

type ProfileCmd struct {
	Show bool `help:"Show the current profile."`

	Name   *string  `help:"Display name."`
	Gender *string  `help:"Gender (female|male)."`
	Age    *int     `help:"Age in years."`
	Height *float64 `help:"Height in centimeters."`
	Weight *float64 `help:"Weight in kilograms."`
}

func (c *ProfileCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.Store.GetProfile(constants.DefaultUserID)
	if err != nil {
		return err
	}

	updated := false
	if c.Name != nil {
		profile.Name = *c.Name
		updated = true
	}
	if c.Gender != nil {
		profile.Gender = models.Gender(*c.Gender)
		updated = true
	}
	if c.Age != nil {
		profile.Age = *c.Age
		updated = true
	}
	if c.Height != nil {
		profile.HeightCm = *c.Height
		updated = true
	}
	if c.Weight != nil {
		profile.WeightKg = *c.Weight
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		fmt.Println("Profile updated successfully.")
	}

	if c.Show || !updated {
		fmt.Println("Current Profile:")
		fmt.Printf("  Name:    %s\n", profile.Name)
		fmt.Printf("  Gender:  %s\n", profile.Gender)
		fmt.Printf("  Age:     %d\n", profile.Age)
		fmt.Printf("  Height:  %.1f cm\n", profile.HeightCm)
		fmt.Printf("  Weight:  %.1f kg\n", profile.WeightKg)
		fmt.Println("\nDaily Targets:")
		fmt.Printf("  Calories: %d kcal\n", analyzer.RecommendedCalories(profile))
		fmt.Printf("  Protein:  %d g\n", analyzer.RecommendedProtein(profile))
		fmt.Printf("  Sleep:    %.1f h\n", analyzer.RecommendedSleep(profile))
	}
	return nil
}
