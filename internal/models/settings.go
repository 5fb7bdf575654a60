package models

// Settings represents application-wide settings
type Settings struct {
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether desktop notifications are sent
	PollIntervalSec      int    `json:"poll_interval_sec"`     // scheduler polling cadence in seconds
	ToleranceMin         int    `json:"tolerance_min"`         // trigger tolerance window around "now" in minutes
	SnoozeMin            int    `json:"snooze_min"`            // default snooze duration in minutes
	EvictionHorizonMin   int    `json:"eviction_horizon_min"`  // how long notified-but-unacknowledged reminders stay suppressed
	Timezone             string `json:"timezone"`              // IANA timezone name, or "Local" for the system timezone
}
