package models

// Settings represents application-wide settings
type Settings struct {
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether reminders are delivered at all
	DefaultFastingHours  int    `json:"default_fasting_hours"` // preselected window when starting a fast
	Timezone             string `json:"timezone"`              // IANA timezone name, or "Local" for the system timezone
}
