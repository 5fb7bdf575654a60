package constants

import "time"

const (
	// General settings
	SettingNotificationsEnabled = "notifications_enabled"
	SettingPollIntervalSec      = "poll_interval_sec"
	SettingToleranceMin         = "tolerance_min"
	SettingSnoozeMin            = "snooze_min"
	SettingEvictionHorizonMin   = "eviction_horizon_min"
	SettingTimezone             = "timezone"

	// Default settings values. The poll interval, trigger tolerance and
	// eviction horizon are tunables, not normative: they bound how late a
	// notification may fire and how long an unacknowledged reminder stays
	// suppressed before it re-surfaces.
	DefaultNotificationsEnabled = true
	DefaultPollInterval         = 30 * time.Second
	DefaultTolerance            = 10 * time.Minute
	DefaultSnooze               = 15 * time.Minute
	DefaultEvictionHorizon      = 30 * time.Minute
	DefaultTimezone             = "Local" // Use system local timezone by default
)
