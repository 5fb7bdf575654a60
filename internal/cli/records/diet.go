package records

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/models"
)

type DietAddCmd struct {
	Food     string  `arg:"" help:"Food name."`
	Meal     string  `help:"Meal (breakfast|lunch|dinner|snack)." required:""`
	Calories float64 `help:"Calories." required:""`
	Protein  float64 `help:"Protein in grams." default:"0"`
	Fat      float64 `help:"Fat in grams." default:"0"`
	Carbs    float64 `help:"Carbohydrates in grams." default:"0"`
	Date     string  `help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *DietAddCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}
	date, err := cli.ResolveDate(c.Date, settings.Timezone)
	if err != nil {
		return err
	}

	entry := models.DietEntry{
		ID:        uuid.New().String(),
		UserID:    constants.DefaultUserID,
		Date:      date,
		Meal:      constants.MealType(c.Meal),
		FoodName:  c.Food,
		Calories:  c.Calories,
		ProteinG:  c.Protein,
		FatG:      c.Fat,
		CarbsG:    c.Carbs,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddDiet(entry); err != nil {
		return fmt.Errorf("failed to add diet record: %w", err)
	}

	fmt.Printf("✓ Diet logged: %s (%s, %.0f kcal) on %s\n", c.Food, c.Meal, c.Calories, date)
	return nil
}

type DietListCmd struct {
	Week string `help:"Any date (YYYY-MM-DD) inside the week to list. Defaults to the current week."`
}

func (c *DietListCmd) Run(ctx *cli.Context) error {
	startDate, endDate, err := weekRange(ctx, c.Week)
	if err != nil {
		return err
	}

	entries, err := ctx.Store.ListDiet(constants.DefaultUserID, startDate, endDate)
	if err != nil {
		return fmt.Errorf("failed to list diet records: %w", err)
	}
	if len(entries) == 0 {
		fmt.Printf("No diet records between %s and %s.\n", startDate, endDate)
		return nil
	}

	fmt.Printf("%-36s %-12s %-10s %-20s %-8s %-6s %-6s %-6s\n",
		"ID", "Date", "Meal", "Food", "Kcal", "P(g)", "F(g)", "C(g)")
	fmt.Println(strings.Repeat("-", 110))
	for _, entry := range entries {
		food := entry.FoodName
		if len(food) > 18 {
			food = food[:15] + "..."
		}
		fmt.Printf("%-36s %-12s %-10s %-20s %-8.0f %-6.1f %-6.1f %-6.1f\n",
			entry.ID, entry.Date, entry.Meal, food,
			entry.Calories, entry.ProteinG, entry.FatG, entry.CarbsG)
	}
	return nil
}
