package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/errors"
)

// FormatClock renders a millisecond duration as HH:MM:SS. Hours grow without
// bound (a 30h fast renders as "30:00:00"); minutes and seconds are
// zero-padded. Negative input is treated as zero.
func FormatClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Elapsed returns the milliseconds elapsed since startMs, never negative.
func Elapsed(nowMs, startMs int64) int64 {
	if nowMs < startMs {
		return 0
	}
	return nowMs - startMs
}

// Remaining returns the milliseconds left until the target duration is
// reached, never negative.
func Remaining(nowMs, startMs, targetMs int64) int64 {
	rem := targetMs - Elapsed(nowMs, startMs)
	if rem < 0 {
		return 0
	}
	return rem
}

// ProgressRatio returns elapsed/target clamped to [0, 1]. The target must be
// positive.
func ProgressRatio(elapsedMs, targetMs int64) (float64, error) {
	if targetMs <= 0 {
		return 0, fmt.Errorf("%w: target duration must be positive, got %dms", errors.ErrInvalidDuration, targetMs)
	}
	ratio := float64(elapsedMs) / float64(targetMs)
	if ratio < 0 {
		return 0, nil
	}
	if ratio > 1 {
		return 1, nil
	}
	return ratio, nil
}

// Percentage converts a progress ratio to a whole percentage clamped to
// [0, 100].
func Percentage(ratio float64) int {
	pct := int(math.Round(ratio * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// DayKey buckets a millisecond timestamp into its UTC calendar day
// (YYYY-MM-DD). All day-equality logic in the application goes through this
// so entries toggled from different zones land in one consistent bucket.
func DayKey(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(constants.DateFormat)
}

// SameDay reports whether two millisecond timestamps fall on the same UTC
// calendar day.
func SameDay(aMs, bMs int64) bool {
	return DayKey(aMs) == DayKey(bMs)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// CombineDateAndTime combines a date string (YYYY-MM-DD) and time string
// (HH:MM) into a single time.Time in the given location.
func CombineDateAndTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}

	timeOfDay, err := ParseTime(timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		loc,
	), nil
}
