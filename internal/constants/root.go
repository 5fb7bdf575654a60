package constants

import "time"

// ReminderCategory represents the category of a reminder
type ReminderCategory string

// MealType represents the meal a diet entry belongs to
type MealType string

// SleepQuality is a 0-5 quality score recorded with a sleep entry
type SleepQuality int

const (
	AppName            = "vitalog"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/vitalog/vitalog.db"
	Version            = "v0.3.1"

	// DefaultUserID is the local profile created at init. All store accessors
	// take a user id so a shared database stays possible, but the CLI always
	// operates on this one.
	DefaultUserID int64 = 1

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "vitalog-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "vitalog-notifier.lock"
	NotificationDurationMs = 10000
	TrayAppIdentifier      = "app.vitalog.tray"

	// Write retry constants. Reads are not retried: the next scheduler tick
	// is a natural retry.
	WriteMaxRetries = 3
	WriteRetryDelay = 100 * time.Millisecond

	// Reminder categories
	CategoryExercise ReminderCategory = "exercise"
	CategoryMeal     ReminderCategory = "meal"
	CategorySleep    ReminderCategory = "sleep"
	CategoryStudy    ReminderCategory = "study"
	CategoryOther    ReminderCategory = "other"

	// Meal types
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"

	// Sleep quality bounds
	SleepQualityMin SleepQuality = 0
	SleepQualityMax SleepQuality = 5
)

// ReminderCategories lists every valid category in display order.
var ReminderCategories = []ReminderCategory{
	CategoryExercise,
	CategoryMeal,
	CategorySleep,
	CategoryStudy,
	CategoryOther,
}

// MealTypes lists every valid meal type in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
