package records

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/storage"
)

type RecordDeleteCmd struct {
	Kind string `arg:"" help:"Record kind (exercise|diet|sleep)."`
	ID   string `arg:"" help:"Record ID to delete."`
	Yes  bool   `help:"Skip the confirmation prompt."`
}

func (c *RecordDeleteCmd) Run(ctx *cli.Context) error {
	switch c.Kind {
	case storage.RecordExercise, storage.RecordDiet, storage.RecordSleep:
	default:
		return fmt.Errorf("unknown record kind: %s (must be exercise, diet, or sleep)", c.Kind)
	}

	if !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %s record %s?", c.Kind, c.ID)).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteRecord(c.Kind, c.ID); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	fmt.Printf("✓ %s record deleted: %s\n", c.Kind, c.ID)
	return nil
}
