package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	tempDir := t.TempDir()
	store := NewStore(filepath.Join(tempDir, "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}

func TestInitCreatesDefaultUserAndSettings(t *testing.T) {
	store := setupTestStore(t)

	profile, err := store.GetProfile(constants.DefaultUserID)
	if err != nil {
		t.Fatalf("expected default user to exist: %v", err)
	}
	if profile.UserID != constants.DefaultUserID {
		t.Errorf("expected user id %d, got %d", constants.DefaultUserID, profile.UserID)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("expected default settings to exist: %v", err)
	}
	if settings.PollIntervalSec != int(constants.DefaultPollInterval.Seconds()) {
		t.Errorf("expected default poll interval, got %d", settings.PollIntervalSec)
	}
	if !settings.NotificationsEnabled {
		t.Error("expected notifications enabled by default")
	}
}

func TestReminderCRUD(t *testing.T) {
	store := setupTestStore(t)

	reminder := models.Reminder{
		UserID:    constants.DefaultUserID,
		Date:      "2024-01-03",
		Time:      "09:30",
		Category:  constants.CategoryMeal,
		Content:   "Eat breakfast",
		CreatedAt: time.Now(),
	}

	id, err := store.AddReminder(reminder)
	if err != nil {
		t.Fatalf("failed to add reminder: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero reminder id")
	}

	retrieved, err := store.GetReminder(id)
	if err != nil {
		t.Fatalf("failed to get reminder: %v", err)
	}
	if retrieved.Content != reminder.Content {
		t.Errorf("expected content %q, got %q", reminder.Content, retrieved.Content)
	}
	if retrieved.Time != "09:30" {
		t.Errorf("expected time 09:30, got %q", retrieved.Time)
	}
	if retrieved.Completed {
		t.Error("new reminder must be pending")
	}

	if err := store.CompleteReminder(id); err != nil {
		t.Fatalf("failed to complete reminder: %v", err)
	}
	retrieved, err = store.GetReminder(id)
	if err != nil {
		t.Fatalf("failed to get reminder: %v", err)
	}
	if !retrieved.Completed {
		t.Error("expected reminder to be completed")
	}

	pending, err := store.GetReminders(constants.DefaultUserID, false)
	if err != nil {
		t.Fatalf("failed to list reminders: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("completed reminder must not appear in pending list, got %d", len(pending))
	}
	all, err := store.GetReminders(constants.DefaultUserID, true)
	if err != nil {
		t.Fatalf("failed to list reminders: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 reminder including completed, got %d", len(all))
	}

	if err := store.DeleteReminder(id); err != nil {
		t.Fatalf("failed to delete reminder: %v", err)
	}
	if _, err := store.GetReminder(id); err == nil {
		t.Error("expected reminder to be gone after delete")
	}
}

func TestReminderNotFound(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.GetReminder(999); err == nil {
		t.Error("expected not-found error")
	}
	if err := store.CompleteReminder(999); err == nil {
		t.Error("expected not-found error on complete")
	}
	if err := store.DeleteReminder(999); err == nil {
		t.Error("expected not-found error on delete")
	}
	if err := store.RescheduleReminder(999, "2024-01-03", "10:00"); err == nil {
		t.Error("expected not-found error on reschedule")
	}
}

func TestRescheduleResetsCompletion(t *testing.T) {
	store := setupTestStore(t)

	id, err := store.AddReminder(models.Reminder{
		UserID: constants.DefaultUserID, Date: "2024-01-03", Time: "09:00",
		Category: constants.CategoryStudy, Content: "Review notes", CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to add reminder: %v", err)
	}
	if err := store.CompleteReminder(id); err != nil {
		t.Fatalf("failed to complete reminder: %v", err)
	}

	if err := store.RescheduleReminder(id, "2024-01-03", "09:15"); err != nil {
		t.Fatalf("failed to reschedule reminder: %v", err)
	}
	reminder, err := store.GetReminder(id)
	if err != nil {
		t.Fatalf("failed to get reminder: %v", err)
	}
	if reminder.Completed {
		t.Error("rescheduled reminder must be pending again")
	}
	if reminder.Time != "09:15" {
		t.Errorf("expected time 09:15, got %q", reminder.Time)
	}
}

func TestDueRemindersSameDayWindow(t *testing.T) {
	store := setupTestStore(t)

	add := func(clock string) int64 {
		id, err := store.AddReminder(models.Reminder{
			UserID: constants.DefaultUserID, Date: "2024-01-03", Time: clock,
			Category: constants.CategoryOther, Content: "at " + clock, CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("failed to add reminder: %v", err)
		}
		return id
	}

	add("11:55")
	add("12:05")
	add("12:30") // outside window
	old := add("11:30")
	if err := store.CompleteReminder(old); err != nil {
		t.Fatalf("failed to complete reminder: %v", err)
	}

	windowStart := time.Date(2024, 1, 3, 11, 50, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 1, 3, 12, 10, 0, 0, time.UTC)
	due, err := store.DueReminders(constants.DefaultUserID, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("DueReminders failed: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due reminders, got %d", len(due))
	}
	if due[0].Time != "11:55" || due[1].Time != "12:05" {
		t.Errorf("expected time-ordered results, got %q then %q", due[0].Time, due[1].Time)
	}
}

func TestDueRemindersCrossMidnight(t *testing.T) {
	store := setupTestStore(t)

	add := func(date, clock string) {
		_, err := store.AddReminder(models.Reminder{
			UserID: constants.DefaultUserID, Date: date, Time: clock,
			Category: constants.CategorySleep, Content: date + " " + clock, CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("failed to add reminder: %v", err)
		}
	}

	add("2024-01-03", "23:58") // due, first day leg
	add("2024-01-04", "00:05") // due, second day leg
	add("2024-01-03", "23:40") // before window
	add("2024-01-04", "00:20") // after window

	windowStart := time.Date(2024, 1, 3, 23, 50, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 1, 4, 0, 10, 0, 0, time.UTC)
	due, err := store.DueReminders(constants.DefaultUserID, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("DueReminders failed: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due reminders across midnight, got %d", len(due))
	}
	if due[0].Date != "2024-01-03" || due[1].Date != "2024-01-04" {
		t.Errorf("expected date-ordered results, got %q then %q", due[0].Date, due[1].Date)
	}
}

func TestDueRemindersSkipsMalformedRow(t *testing.T) {
	store := setupTestStore(t)

	add := func(clock string) int64 {
		id, err := store.AddReminder(models.Reminder{
			UserID: constants.DefaultUserID, Date: "2024-01-03", Time: clock,
			Category: constants.CategoryOther, Content: "at " + clock, CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("failed to add reminder: %v", err)
		}
		return id
	}

	bad := add("11:55")
	add("12:05")

	// Simulate a row written by a broken client.
	if _, err := store.GetDB().Exec("UPDATE reminders SET created_at = 'garbage' WHERE id = ?", bad); err != nil {
		t.Fatalf("failed to corrupt row: %v", err)
	}

	windowStart := time.Date(2024, 1, 3, 11, 50, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 1, 3, 12, 10, 0, 0, time.UTC)
	due, err := store.DueReminders(constants.DefaultUserID, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("DueReminders failed: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("expected 1 due reminder after skipping the bad row, got %d", len(due))
	}
	if due[0].Time != "12:05" {
		t.Errorf("expected the intact reminder, got %q", due[0].Time)
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	exercise := models.ExerciseEntry{
		ID: uuid.New().String(), UserID: constants.DefaultUserID,
		Date: "2024-01-03", ExerciseType: "running",
		DurationMin: 30, CaloriesBurned: 280, CreatedAt: time.Now(),
	}
	if err := store.AddExercise(exercise); err != nil {
		t.Fatalf("failed to add exercise: %v", err)
	}

	diet := models.DietEntry{
		ID: uuid.New().String(), UserID: constants.DefaultUserID,
		Date: "2024-01-03", Meal: constants.MealLunch, FoodName: "salad",
		Calories: 350, ProteinG: 12, FatG: 18, CarbsG: 35, CreatedAt: time.Now(),
	}
	if err := store.AddDiet(diet); err != nil {
		t.Fatalf("failed to add diet entry: %v", err)
	}

	sleep := models.SleepEntry{
		ID: uuid.New().String(), UserID: constants.DefaultUserID,
		Date: "2024-01-03", SleepTime: "23:30", WakeTime: "07:00",
		DurationMin: 450, Quality: 4, CreatedAt: time.Now(),
	}
	if err := store.AddSleep(sleep); err != nil {
		t.Fatalf("failed to add sleep entry: %v", err)
	}

	exercises, err := store.ListExercise(constants.DefaultUserID, "2024-01-01", "2024-01-07")
	if err != nil {
		t.Fatalf("failed to list exercise: %v", err)
	}
	if len(exercises) != 1 || exercises[0].ExerciseType != "running" {
		t.Errorf("unexpected exercise list: %+v", exercises)
	}

	diets, err := store.ListDiet(constants.DefaultUserID, "2024-01-01", "2024-01-07")
	if err != nil {
		t.Fatalf("failed to list diet: %v", err)
	}
	if len(diets) != 1 || diets[0].Meal != constants.MealLunch {
		t.Errorf("unexpected diet list: %+v", diets)
	}

	sleeps, err := store.ListSleep(constants.DefaultUserID, "2024-01-01", "2024-01-07")
	if err != nil {
		t.Fatalf("failed to list sleep: %v", err)
	}
	if len(sleeps) != 1 || sleeps[0].DurationMin != 450 {
		t.Errorf("unexpected sleep list: %+v", sleeps)
	}

	if err := store.DeleteRecord("exercise", exercise.ID); err != nil {
		t.Fatalf("failed to delete exercise record: %v", err)
	}
	exercises, err = store.ListExercise(constants.DefaultUserID, "2024-01-01", "2024-01-07")
	if err != nil {
		t.Fatalf("failed to list exercise: %v", err)
	}
	if len(exercises) != 0 {
		t.Errorf("expected empty exercise list after delete, got %d", len(exercises))
	}

	if err := store.DeleteRecord("bogus", "id"); err == nil {
		t.Error("expected error for unknown record kind")
	}
}

func TestWeeklyAggregates(t *testing.T) {
	store := setupTestStore(t)

	addExercise := func(date string, min int, kcal float64) {
		err := store.AddExercise(models.ExerciseEntry{
			ID: uuid.New().String(), UserID: constants.DefaultUserID,
			Date: date, ExerciseType: "walk", DurationMin: min, CaloriesBurned: kcal,
			CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("failed to add exercise: %v", err)
		}
	}
	addExercise("2024-01-01", 20, 100)
	addExercise("2024-01-01", 40, 200)
	addExercise("2024-01-02", 30, 150)

	days, err := store.WeeklyExercise(constants.DefaultUserID, "2024-01-01", "2024-01-07")
	if err != nil {
		t.Fatalf("WeeklyExercise failed: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 aggregated days, got %d", len(days))
	}
	if days[0].DurationMin != 60 || days[0].CaloriesBurned != 300 {
		t.Errorf("expected day 1 totals 60/300, got %d/%.0f", days[0].DurationMin, days[0].CaloriesBurned)
	}

	addSleep := func(date string, min int, quality constants.SleepQuality) {
		err := store.AddSleep(models.SleepEntry{
			ID: uuid.New().String(), UserID: constants.DefaultUserID,
			Date: date, SleepTime: "23:00", WakeTime: "07:00",
			DurationMin: min, Quality: quality, CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("failed to add sleep: %v", err)
		}
	}
	addSleep("2024-01-01", 400, 2)
	addSleep("2024-01-01", 500, 4)

	sleepDays, err := store.WeeklySleep(constants.DefaultUserID, "2024-01-01", "2024-01-07")
	if err != nil {
		t.Fatalf("WeeklySleep failed: %v", err)
	}
	if len(sleepDays) != 1 {
		t.Fatalf("expected 1 sleep day, got %d", len(sleepDays))
	}
	if sleepDays[0].DurationMin != 450 || sleepDays[0].Quality != 3 {
		t.Errorf("expected averages 450/3, got %.0f/%.1f", sleepDays[0].DurationMin, sleepDays[0].Quality)
	}
}

func TestProfileSaveAndGet(t *testing.T) {
	store := setupTestStore(t)

	profile := models.Profile{
		UserID: constants.DefaultUserID, Name: "Ada",
		Gender: models.GenderFemale, Age: 30, HeightCm: 165, WeightKg: 60,
	}
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	retrieved, err := store.GetProfile(constants.DefaultUserID)
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if retrieved.Name != "Ada" || retrieved.WeightKg != 60 {
		t.Errorf("unexpected profile: %+v", retrieved)
	}

	invalid := profile
	invalid.WeightKg = -1
	if err := store.SaveProfile(invalid); err == nil {
		t.Error("expected validation error for negative weight")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	settings := models.Settings{
		NotificationsEnabled: false,
		PollIntervalSec:      60,
		ToleranceMin:         5,
		SnoozeMin:            10,
		EvictionHorizonMin:   20,
		Timezone:             "America/New_York",
	}
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	retrieved, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if retrieved != settings {
		t.Errorf("expected %+v, got %+v", settings, retrieved)
	}
}
