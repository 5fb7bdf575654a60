package scheduler

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/models"
	"github.com/vitalog-app/vitalog/internal/storage/sqlite"
)

type captureSink struct {
	mu     sync.Mutex
	ids    []int64
	titles []string
	bodies []string
	fail   bool
}

func (c *captureSink) notify(id int64, title, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return fmt.Errorf("delivery refused")
	}
	c.ids = append(c.ids, id)
	c.titles = append(c.titles, title)
	c.bodies = append(c.bodies, message)
	return nil
}

func (c *captureSink) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.titles)
}

func setupTestScheduler(t *testing.T) (*Scheduler, *sqlite.Store, *captureSink) {
	tempDir := t.TempDir()
	store := sqlite.NewStore(filepath.Join(tempDir, "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sink := &captureSink{}
	settings := models.Settings{
		NotificationsEnabled: true,
		PollIntervalSec:      1,
		ToleranceMin:         10,
		SnoozeMin:            15,
		EvictionHorizonMin:   30,
		Timezone:             "Local",
	}
	sched, err := New(store, settings, sink.notify)
	if err != nil {
		t.Fatalf("failed to create scheduler: %v", err)
	}
	return sched, store, sink
}

func addTestReminder(t *testing.T, store *sqlite.Store, at time.Time, content string) int64 {
	id, err := store.AddReminder(models.Reminder{
		UserID:    constants.DefaultUserID,
		Date:      at.Format(constants.DateFormat),
		Time:      at.Format(constants.TimeFormat),
		Category:  constants.CategoryExercise,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to add reminder: %v", err)
	}
	return id
}

func TestCheckDueNotifiesWithinWindow(t *testing.T) {
	sched, store, sink := setupTestScheduler(t)

	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.Local)
	id := addTestReminder(t, store, now, "stretch for five minutes")
	addTestReminder(t, store, now.Add(2*time.Hour), "too far in the future")

	pushed, err := sched.CheckDue(now)
	if err != nil {
		t.Fatalf("CheckDue failed: %v", err)
	}
	if len(pushed) != 1 {
		t.Fatalf("expected 1 pushed reminder, got %d", len(pushed))
	}
	if sink.count() != 1 {
		t.Fatalf("expected 1 notification, got %d", sink.count())
	}
	if sink.ids[0] != id {
		t.Errorf("expected delivered id %d, got %d", id, sink.ids[0])
	}
	if sink.bodies[0] != "stretch for five minutes" {
		t.Errorf("unexpected notification body: %q", sink.bodies[0])
	}
	if sink.titles[0] != "Exercise (now)" {
		t.Errorf("unexpected notification title: %q", sink.titles[0])
	}
}

func TestCheckDueSuppressesDuplicates(t *testing.T) {
	sched, store, sink := setupTestScheduler(t)

	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.Local)
	addTestReminder(t, store, now, "drink water")

	if _, err := sched.CheckDue(now); err != nil {
		t.Fatalf("first CheckDue failed: %v", err)
	}
	pushed, err := sched.CheckDue(now.Add(time.Minute))
	if err != nil {
		t.Fatalf("second CheckDue failed: %v", err)
	}
	if len(pushed) != 0 {
		t.Errorf("expected duplicate suppression, got %d pushed", len(pushed))
	}
	if sink.count() != 1 {
		t.Errorf("expected 1 notification total, got %d", sink.count())
	}
}

func TestUnacknowledgedReminderResurfaces(t *testing.T) {
	sched, store, sink := setupTestScheduler(t)
	sched.horizon = 5 * time.Minute

	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.Local)
	addTestReminder(t, store, now, "take a break")

	if _, err := sched.CheckDue(now); err != nil {
		t.Fatalf("first CheckDue failed: %v", err)
	}
	// Past the horizon but still inside the tolerance window.
	pushed, err := sched.CheckDue(now.Add(6 * time.Minute))
	if err != nil {
		t.Fatalf("second CheckDue failed: %v", err)
	}
	if len(pushed) != 1 {
		t.Errorf("expected reminder to re-surface, got %d pushed", len(pushed))
	}
	if sink.count() != 2 {
		t.Errorf("expected 2 notifications, got %d", sink.count())
	}
}

func TestCompleteStopsNotification(t *testing.T) {
	sched, store, sink := setupTestScheduler(t)

	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.Local)
	id := addTestReminder(t, store, now, "log lunch")

	if err := sched.Complete(id); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	pushed, err := sched.CheckDue(now)
	if err != nil {
		t.Fatalf("CheckDue failed: %v", err)
	}
	if len(pushed) != 0 {
		t.Errorf("expected completed reminder to be skipped, got %d pushed", len(pushed))
	}
	if sink.count() != 0 {
		t.Errorf("expected no notifications, got %d", sink.count())
	}

	reminder, err := store.GetReminder(id)
	if err != nil {
		t.Fatalf("GetReminder failed: %v", err)
	}
	if !reminder.Completed {
		t.Error("expected reminder to be marked completed")
	}
}

func TestSnoozeReschedules(t *testing.T) {
	sched, store, sink := setupTestScheduler(t)

	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.Local)
	sched.now = func() time.Time { return now }
	id := addTestReminder(t, store, now, "evening walk")

	if _, err := sched.CheckDue(now); err != nil {
		t.Fatalf("CheckDue failed: %v", err)
	}
	if err := sched.Snooze(id, 20*time.Minute); err != nil {
		t.Fatalf("Snooze failed: %v", err)
	}

	reminder, err := store.GetReminder(id)
	if err != nil {
		t.Fatalf("GetReminder failed: %v", err)
	}
	if reminder.Time != "12:20" {
		t.Errorf("expected rescheduled time 12:20, got %q", reminder.Time)
	}
	if reminder.Completed {
		t.Error("snoozed reminder must stay pending")
	}

	// The new time is outside the tolerance window right now...
	pushed, err := sched.CheckDue(now)
	if err != nil {
		t.Fatalf("CheckDue failed: %v", err)
	}
	if len(pushed) != 0 {
		t.Errorf("expected no push before snooze elapses, got %d", len(pushed))
	}

	// ...but due again once it elapses.
	pushed, err = sched.CheckDue(now.Add(20 * time.Minute))
	if err != nil {
		t.Fatalf("CheckDue failed: %v", err)
	}
	if len(pushed) != 1 {
		t.Errorf("expected push after snooze elapses, got %d", len(pushed))
	}
	if sink.count() != 2 {
		t.Errorf("expected 2 notifications total, got %d", sink.count())
	}
}

func TestSnoozeDefaultDuration(t *testing.T) {
	sched, store, _ := setupTestScheduler(t)

	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.Local)
	sched.now = func() time.Time { return now }
	id := addTestReminder(t, store, now, "read a chapter")

	if err := sched.Snooze(id, 0); err != nil {
		t.Fatalf("Snooze failed: %v", err)
	}

	reminder, err := store.GetReminder(id)
	if err != nil {
		t.Fatalf("GetReminder failed: %v", err)
	}
	if reminder.Time != "12:15" {
		t.Errorf("expected default snooze time 12:15, got %q", reminder.Time)
	}
}

func TestFailedDeliveryRetriesNextPoll(t *testing.T) {
	sched, store, sink := setupTestScheduler(t)

	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.Local)
	addTestReminder(t, store, now, "stand up")

	sink.fail = true
	if _, err := sched.CheckDue(now); err != nil {
		t.Fatalf("CheckDue failed: %v", err)
	}
	if sink.count() != 0 {
		t.Fatalf("expected no recorded delivery while failing, got %d", sink.count())
	}

	sink.fail = false
	pushed, err := sched.CheckDue(now.Add(time.Minute))
	if err != nil {
		t.Fatalf("CheckDue failed: %v", err)
	}
	if len(pushed) != 1 {
		t.Errorf("expected redelivery after sink recovers, got %d pushed", len(pushed))
	}
	if sink.count() != 1 {
		t.Errorf("expected 1 delivered notification, got %d", sink.count())
	}
}

func TestStartStopIdempotent(t *testing.T) {
	sched, _, _ := setupTestScheduler(t)

	sched.Start()
	sched.Start()
	sched.Stop()
	sched.Stop()

	sched.Start()
	sched.Stop()
}

func TestSetPollInterval(t *testing.T) {
	sched, _, _ := setupTestScheduler(t)

	if err := sched.SetPollInterval(5 * time.Second); err != nil {
		t.Fatalf("SetPollInterval failed: %v", err)
	}
	if sched.pollInterval != 5*time.Second {
		t.Errorf("expected 5s interval, got %v", sched.pollInterval)
	}
	if err := sched.SetPollInterval(0); err == nil {
		t.Error("expected error for non-positive interval")
	}
}

func TestSetPollIntervalTakesEffectWhileRunning(t *testing.T) {
	sched, _, _ := setupTestScheduler(t)

	var mu sync.Mutex
	polls := 0
	sched.now = func() time.Time {
		mu.Lock()
		polls++
		mu.Unlock()
		return time.Now()
	}

	// An hour-long cadence means only the startup poll fires on its own.
	if err := sched.SetPollInterval(time.Hour); err != nil {
		t.Fatalf("SetPollInterval failed: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	deadline := time.Now().Add(time.Second)
	for {
		mu.Lock()
		n := polls
		mu.Unlock()
		if n >= 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("startup poll never ran")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := sched.SetPollInterval(10 * time.Millisecond); err != nil {
		t.Fatalf("SetPollInterval failed: %v", err)
	}

	deadline = time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := polls
		mu.Unlock()
		if n >= 3 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("running scheduler ignored new cadence, saw %d polls", n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
