package constants

const (
	// Default Settings Values
	DefaultNotificationsEnabled = true
	DefaultFastingHours         = 16
	DefaultTimezone             = "Local" // Use system local timezone by default
)
