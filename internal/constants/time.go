package constants

import "time"

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Day is the length of one calendar day used for ledger math
	Day = 24 * time.Hour

	// Hour in milliseconds, the unit fasting targets are stored in
	HourMs = int64(time.Hour / time.Millisecond)
	DayMs  = 24 * HourMs
)
