package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/vitalog-app/vitalog/internal/backup"
	"github.com/vitalog-app/vitalog/internal/config"
	"github.com/vitalog-app/vitalog/internal/logger"
	"github.com/vitalog-app/vitalog/internal/models"
	"github.com/vitalog-app/vitalog/internal/storage"
	"github.com/vitalog-app/vitalog/internal/utils"
)

type Context struct {
	Store  storage.Provider
	Config config.Config
}

// LoadSettings reads settings and fills gaps with defaults so a partially
// populated settings table never produces zero durations.
func (c *Context) LoadSettings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	if c.Config.Timezone != "" {
		settings.Timezone = c.Config.Timezone
	}
	return settings, nil
}

// PerformAutomaticBackup creates a backup and logs instead of failing; a
// missed backup must never block the user's command. PostgreSQL databases
// are skipped, their backups belong to the server.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if storage.IsPostgresConnString(path) {
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatReminderRow renders one reminder for tabular list output.
func FormatReminderRow(r models.Reminder) string {
	content := r.Content
	if len(content) > 38 {
		content = content[:35] + "..."
	}
	status := "pending"
	if r.Completed {
		status = "done"
	}
	return fmt.Sprintf("%-6d %-12s %-7s %-10s %-40s %-8s",
		r.ID, r.Date, r.Time, string(r.Category), content, status)
}

// ReminderListHeader returns the header line matching FormatReminderRow.
func ReminderListHeader() string {
	return fmt.Sprintf("%-6s %-12s %-7s %-10s %-40s %-8s\n%s",
		"ID", "Date", "Time", "Category", "Content", "Status",
		strings.Repeat("-", 88))
}

// ResolveDate normalizes a user-supplied date flag: empty means today in the
// configured timezone.
func ResolveDate(date, timezone string) (string, error) {
	if date == "" {
		return utils.GetTodayInTimezone(timezone)
	}
	if _, err := utils.ParseDateInLocation(date, time.UTC); err != nil {
		return "", fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	return date, nil
}
