package postgres

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/Stevedee925/phoenix/internal/models"
)

const (
	settingNotificationsEnabled = "notifications_enabled"
	settingDefaultFastingHours  = "default_fasting_hours"
	settingTimezone             = "timezone"
)

func (s *Store) GetSettings() (models.Settings, error) {
	var settings models.Settings

	get := func(key string) (string, error) {
		var value string
		err := s.db.QueryRow("SELECT value FROM settings WHERE key = $1", key).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return value, err
	}

	enabled, err := get(settingNotificationsEnabled)
	if err != nil {
		return settings, err
	}
	settings.NotificationsEnabled = enabled == "true"

	hours, err := get(settingDefaultFastingHours)
	if err != nil {
		return settings, err
	}
	if hours != "" {
		settings.DefaultFastingHours, err = strconv.Atoi(hours)
		if err != nil {
			return settings, err
		}
	}

	settings.Timezone, err = get(settingTimezone)
	if err != nil {
		return settings, err
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	values := map[string]string{
		settingNotificationsEnabled: strconv.FormatBool(settings.NotificationsEnabled),
		settingDefaultFastingHours:  strconv.Itoa(settings.DefaultFastingHours),
		settingTimezone:             settings.Timezone,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for key, value := range values {
		if _, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
