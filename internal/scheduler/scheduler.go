package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/logger"
	"github.com/vitalog-app/vitalog/internal/models"
	"github.com/vitalog-app/vitalog/internal/storage"
	"github.com/vitalog-app/vitalog/internal/utils"
)

// SinkFunc delivers a notification to the user. The id identifies the
// reminder so the consumer can route an acknowledgement back through
// Complete or Snooze; sinks that cannot surface it may ignore it. The
// scheduler treats a nil error as acknowledgement of delivery, not of the
// reminder itself; the reminder stays pending until Complete or Snooze is
// called.
type SinkFunc func(id int64, title, message string) error

// Scheduler polls the reminders table and pushes due reminders to a sink.
// Delivery is at-least-once: a reminder that is neither completed nor
// snoozed re-surfaces after the eviction horizon passes.
type Scheduler struct {
	store storage.Provider
	sink  SinkFunc
	loc   *time.Location

	pollInterval time.Duration
	tolerance    time.Duration
	snooze       time.Duration
	horizon      time.Duration

	// Function variable for testing
	now func() time.Time

	mu       sync.Mutex
	notified map[int64]time.Time // reminder id -> instant it was last pushed
	running  bool
	done     chan struct{}
	ticker   *time.Ticker
	wg       sync.WaitGroup
}

// New builds a scheduler from persisted settings. The sink is called from
// the polling goroutine; it must be safe to call concurrently with the
// rest of the program.
func New(store storage.Provider, settings models.Settings, sink SinkFunc) (*Scheduler, error) {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	s := &Scheduler{
		store:        store,
		sink:         sink,
		loc:          loc,
		pollInterval: time.Duration(settings.PollIntervalSec) * time.Second,
		tolerance:    time.Duration(settings.ToleranceMin) * time.Minute,
		snooze:       time.Duration(settings.SnoozeMin) * time.Minute,
		horizon:      time.Duration(settings.EvictionHorizonMin) * time.Minute,
		now:          time.Now,
		notified:     map[int64]time.Time{},
	}

	if s.pollInterval <= 0 {
		s.pollInterval = constants.DefaultPollInterval
	}
	if s.tolerance <= 0 {
		s.tolerance = constants.DefaultTolerance
	}
	if s.snooze <= 0 {
		s.snooze = constants.DefaultSnooze
	}
	if s.horizon <= 0 {
		s.horizon = constants.DefaultEvictionHorizon
	}

	return s, nil
}

// SetPollInterval changes the polling cadence. A running scheduler has its
// ticker reset so the new cadence applies immediately.
func (s *Scheduler) SetPollInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pollInterval = d
	if s.running && s.ticker != nil {
		s.ticker.Reset(d)
	}
	return nil
}

// Start launches the polling goroutine. Calling Start on a running
// scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.done = make(chan struct{})

	interval := s.pollInterval
	ticker := time.NewTicker(interval)
	s.ticker = ticker

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()

		// Poll immediately so reminders due at startup are not delayed
		// by a full interval.
		s.poll()

		for {
			select {
			case <-ticker.C:
				s.poll()
			case <-s.done:
				return
			}
		}
	}()

	logger.Info("scheduler started", "interval", interval)
}

// Stop halts polling and waits for the in-flight poll to finish. Calling
// Stop on a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.done)
	s.mu.Unlock()

	s.wg.Wait()
	logger.Info("scheduler stopped")
}

func (s *Scheduler) poll() {
	if _, err := s.CheckDue(s.now().In(s.loc)); err != nil {
		// A failed poll is not fatal; the next tick retries.
		logger.Error("reminder poll failed", "error", err)
	}
}

// CheckDue performs a single poll at the given instant: it queries reminders
// inside the tolerance window, pushes every one not recently notified to the
// sink, and returns the reminders that were pushed.
func (s *Scheduler) CheckDue(now time.Time) ([]models.Reminder, error) {
	windowStart := now.Add(-s.tolerance)
	windowEnd := now.Add(s.tolerance)

	due, err := s.store.DueReminders(constants.DefaultUserID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}

	s.mu.Lock()
	s.evictLocked(now)

	var pushed []models.Reminder
	for _, reminder := range due {
		if _, seen := s.notified[reminder.ID]; seen {
			continue
		}
		s.notified[reminder.ID] = now
		pushed = append(pushed, reminder)
	}
	s.mu.Unlock()

	for _, reminder := range pushed {
		if err := s.deliver(reminder, now); err != nil {
			// Forget the reminder so the next poll retries delivery.
			logger.Error("notification delivery failed", "id", reminder.ID, "error", err)
			s.mu.Lock()
			delete(s.notified, reminder.ID)
			s.mu.Unlock()
		}
	}

	return pushed, nil
}

func (s *Scheduler) deliver(reminder models.Reminder, now time.Time) error {
	scheduled, err := reminder.At(s.loc)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s (%s)", models.CategoryLabel(reminder.Category), utils.RelativePhrase(scheduled, now))
	return s.sink(reminder.ID, title, reminder.Content)
}

// Complete acknowledges a reminder permanently. It is removed from the
// suppression map so a later reminder reusing the id is not swallowed.
func (s *Scheduler) Complete(id int64) error {
	if err := s.store.CompleteReminder(id); err != nil {
		return err
	}
	s.forget(id)
	return nil
}

// Snooze reschedules a reminder to now plus the given duration, or the
// default snooze duration when d is zero. The reminder becomes eligible for
// notification again at its new time.
func (s *Scheduler) Snooze(id int64, d time.Duration) error {
	if d == 0 {
		d = s.snooze
	}
	if d < 0 {
		return fmt.Errorf("snooze duration must be positive")
	}

	next := s.now().In(s.loc).Add(d)
	date := next.Format(constants.DateFormat)
	clock := next.Format(constants.TimeFormat)

	if err := s.store.RescheduleReminder(id, date, clock); err != nil {
		return err
	}
	s.forget(id)
	return nil
}

func (s *Scheduler) forget(id int64) {
	s.mu.Lock()
	delete(s.notified, id)
	s.mu.Unlock()
}

// evictLocked drops suppression entries older than the horizon so
// unacknowledged reminders eventually re-surface. Caller holds s.mu.
func (s *Scheduler) evictLocked(now time.Time) {
	for id, at := range s.notified {
		if now.Sub(at) > s.horizon {
			delete(s.notified, id)
		}
	}
}
