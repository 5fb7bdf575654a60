package models

import (
	"fmt"

	"github.com/vitalog-app/vitalog/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingPollIntervalSec:
			if _, err := fmt.Sscanf(value, "%d", &settings.PollIntervalSec); err != nil {
				return Settings{}, fmt.Errorf("parsing poll_interval_sec: %w", err)
			}
		case constants.SettingToleranceMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.ToleranceMin); err != nil {
				return Settings{}, fmt.Errorf("parsing tolerance_min: %w", err)
			}
		case constants.SettingSnoozeMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.SnoozeMin); err != nil {
				return Settings{}, fmt.Errorf("parsing snooze_min: %w", err)
			}
		case constants.SettingEvictionHorizonMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.EvictionHorizonMin); err != nil {
				return Settings{}, fmt.Errorf("parsing eviction_horizon_min: %w", err)
			}
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingNotificationsEnabled: fmt.Sprintf("%v", settings.NotificationsEnabled),
		constants.SettingPollIntervalSec:      fmt.Sprintf("%d", settings.PollIntervalSec),
		constants.SettingToleranceMin:         fmt.Sprintf("%d", settings.ToleranceMin),
		constants.SettingSnoozeMin:            fmt.Sprintf("%d", settings.SnoozeMin),
		constants.SettingEvictionHorizonMin:   fmt.Sprintf("%d", settings.EvictionHorizonMin),
		constants.SettingTimezone:             settings.Timezone,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.PollIntervalSec == 0 {
		settings.PollIntervalSec = int(constants.DefaultPollInterval.Seconds())
	}
	if settings.ToleranceMin == 0 {
		settings.ToleranceMin = int(constants.DefaultTolerance.Minutes())
	}
	if settings.SnoozeMin == 0 {
		settings.SnoozeMin = int(constants.DefaultSnooze.Minutes())
	}
	if settings.EvictionHorizonMin == 0 {
		settings.EvictionHorizonMin = int(constants.DefaultEvictionHorizon.Minutes())
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}
