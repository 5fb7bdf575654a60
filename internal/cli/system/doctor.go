package system

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/vitalog-app/vitalog/internal/backup"
	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/migration"
	"github.com/vitalog-app/vitalog/internal/storage"
	"github.com/vitalog-app/vitalog/internal/storage/sqlite"
	"github.com/vitalog-app/vitalog/internal/utils"
	"github.com/vitalog-app/vitalog/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	if storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		fmt.Printf("⊘ Backups present: SKIPPED (PostgreSQL storage)\n")
	} else if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if dbReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (database not reachable)\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	if dbReachable {
		if err := checkReminderIntegrity(ctx); err != nil {
			fmt.Printf("❌ Reminder integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Reminder integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Reminder integrity: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkRecordDates(ctx); err != nil {
			fmt.Printf("❌ Record date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Record date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Record date formats: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkSleepQuality(ctx); err != nil {
			fmt.Printf("❌ Sleep quality range: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Sleep quality range: OK\n")
		}
	} else {
		fmt.Printf("⊘ Sleep quality range: SKIPPED (database not reachable)\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// Postgres schema is validated on Load
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	runner := migration.NewRunner(db, subFS)

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d - run 'vitalog migrate'", currentVersion, latestVersion)
	}
	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}

	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'vitalog backup create'")
	}

	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.PollIntervalSec < 1 {
		return fmt.Errorf("poll interval is %d seconds; must be at least 1", settings.PollIntervalSec)
	}
	if settings.ToleranceMin < 1 {
		return fmt.Errorf("tolerance window is %d minutes; must be at least 1", settings.ToleranceMin)
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone in settings: %s", settings.Timezone)
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	return nil
}

func checkReminderIntegrity(ctx *cli.Context) error {
	reminders, err := ctx.Store.GetReminders(constants.DefaultUserID, true)
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}

	invalid := 0
	for _, r := range reminders {
		if err := r.Validate(); err != nil {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("found %d reminders with invalid date, time, or category", invalid)
	}

	return nil
}

func checkRecordDates(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	for _, table := range []string{"exercise_records", "diet_records", "sleep_records"} {
		var invalidCount int
		query := fmt.Sprintf(`
			SELECT COUNT(*)
			FROM %s
			WHERE date NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
		`, table)
		if err := db.QueryRow(query).Scan(&invalidCount); err != nil {
			return fmt.Errorf("failed to check %s dates: %w", table, err)
		}
		if invalidCount > 0 {
			return fmt.Errorf("found %d rows in %s with invalid date format", invalidCount, table)
		}
	}

	return nil
}

func checkSleepQuality(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var outOfRange int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM sleep_records
		WHERE quality < 1 OR quality > 5
	`).Scan(&outOfRange)
	if err != nil {
		return fmt.Errorf("failed to check sleep quality: %w", err)
	}
	if outOfRange > 0 {
		return fmt.Errorf("found %d sleep records with quality outside 1-5", outOfRange)
	}

	return nil
}
