package storage

import (
	"net/url"
	"strings"
	"time"

	"github.com/vitalog-app/vitalog/internal/models"
	"github.com/vitalog-app/vitalog/internal/storage/postgres"
	"github.com/vitalog-app/vitalog/internal/storage/sqlite"
)

// Provider is the persistence boundary consumed by the CLI, the scheduler
// and the report generator. Rows cross this boundary as named structs; no
// caller ever sees a raw database row.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Profile
	GetProfile(userID int64) (models.Profile, error)
	SaveProfile(models.Profile) error

	// Reminders
	AddReminder(models.Reminder) (int64, error)
	GetReminder(id int64) (models.Reminder, error)
	GetReminders(userID int64, includeCompleted bool) ([]models.Reminder, error)
	// DueReminders returns pending reminders scheduled inside the window,
	// ordered by scheduled time ascending. The window may cross midnight.
	DueReminders(userID int64, windowStart, windowEnd time.Time) ([]models.Reminder, error)
	CompleteReminder(id int64) error
	RescheduleReminder(id int64, date, clock string) error
	DeleteReminder(id int64) error

	// Activity records
	AddExercise(models.ExerciseEntry) error
	AddDiet(models.DietEntry) error
	AddSleep(models.SleepEntry) error
	ListExercise(userID int64, startDate, endDate string) ([]models.ExerciseEntry, error)
	ListDiet(userID int64, startDate, endDate string) ([]models.DietEntry, error)
	ListSleep(userID int64, startDate, endDate string) ([]models.SleepEntry, error)
	DeleteRecord(table RecordKind, id string) error

	// Weekly aggregates, one row per date with at least one entry
	WeeklyExercise(userID int64, startDate, endDate string) ([]models.ExerciseDay, error)
	WeeklyDiet(userID int64, startDate, endDate string) ([]models.DietDay, error)
	WeeklySleep(userID int64, startDate, endDate string) ([]models.SleepDay, error)
}

// RecordKind selects an activity record table for deletion.
type RecordKind = string

const (
	RecordExercise RecordKind = "exercise"
	RecordDiet     RecordKind = "diet"
	RecordSleep    RecordKind = "sleep"
)

// NewSQLiteStore creates the default single-file store.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a PostgreSQL-backed store from a connection string.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// IsPostgresConnString reports whether the config value selects the
// PostgreSQL backend.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Credentials belong in the OS keyring, the environment,
// or .pgpass, never on the command line.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}
