package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if storage.IsPostgresConnString(dbPath) {
			return fmt.Errorf("--force is not supported for PostgreSQL databases; drop and recreate the database manually")
		}
		// Refuse to delete the database we are about to migrate from.
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized vitalog storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

// allDates is a date range wide enough to cover every stored record.
const (
	allDatesStart = "0000-01-01"
	allDatesEnd   = "9999-12-31"
)

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	var sourceStore storage.Provider
	if storage.IsPostgresConnString(sourcePath) {
		if storage.HasEmbeddedCredentials(sourcePath) {
			return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use the keyring, environment variables, or .pgpass instead")
		}
		sourceStore = storage.NewPostgresStore(sourcePath)
	} else {
		sourceStore = storage.NewSQLiteStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating profile...")
	profile, err := sourceStore.GetProfile(constants.DefaultUserID)
	if err != nil {
		return fmt.Errorf("failed to get profile from source: %w", err)
	}
	if err := ctx.Store.SaveProfile(profile); err != nil {
		return fmt.Errorf("failed to save profile to destination: %w", err)
	}

	fmt.Println("  Migrating reminders...")
	reminders, err := sourceStore.GetReminders(constants.DefaultUserID, true)
	if err != nil {
		return fmt.Errorf("failed to get reminders from source: %w", err)
	}
	for _, reminder := range reminders {
		id, err := ctx.Store.AddReminder(reminder)
		if err != nil {
			return fmt.Errorf("failed to add reminder %d: %w", reminder.ID, err)
		}
		if reminder.Completed {
			if err := ctx.Store.CompleteReminder(id); err != nil {
				return fmt.Errorf("failed to mark reminder %d completed: %w", id, err)
			}
		}
	}
	fmt.Printf("    Migrated %d reminders\n", len(reminders))

	fmt.Println("  Migrating exercise records...")
	exercise, err := sourceStore.ListExercise(constants.DefaultUserID, allDatesStart, allDatesEnd)
	if err != nil {
		return fmt.Errorf("failed to get exercise records from source: %w", err)
	}
	for _, entry := range exercise {
		if err := ctx.Store.AddExercise(entry); err != nil {
			return fmt.Errorf("failed to add exercise record %s: %w", entry.ID, err)
		}
	}
	fmt.Printf("    Migrated %d exercise records\n", len(exercise))

	fmt.Println("  Migrating diet records...")
	diet, err := sourceStore.ListDiet(constants.DefaultUserID, allDatesStart, allDatesEnd)
	if err != nil {
		return fmt.Errorf("failed to get diet records from source: %w", err)
	}
	for _, entry := range diet {
		if err := ctx.Store.AddDiet(entry); err != nil {
			return fmt.Errorf("failed to add diet record %s: %w", entry.ID, err)
		}
	}
	fmt.Printf("    Migrated %d diet records\n", len(diet))

	fmt.Println("  Migrating sleep records...")
	sleep, err := sourceStore.ListSleep(constants.DefaultUserID, allDatesStart, allDatesEnd)
	if err != nil {
		return fmt.Errorf("failed to get sleep records from source: %w", err)
	}
	for _, entry := range sleep {
		if err := ctx.Store.AddSleep(entry); err != nil {
			return fmt.Errorf("failed to add sleep record %s: %w", entry.ID, err)
		}
	}
	fmt.Printf("    Migrated %d sleep records\n", len(sleep))

	return nil
}
