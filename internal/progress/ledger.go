// Package progress maintains the date-keyed completion ledger shared by
// challenges and rituals. Days are bucketed by UTC calendar day; see
// utils.DayKey.
package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/utils"
)

// ToggleDay flips the completion flag for dateMs's calendar day, appending a
// completed entry when the day has none yet. The input slice is not
// mutated; callers swap in the returned ledger only after the whole
// operation succeeds.
func ToggleDay(entries []models.ProgressEntry, dateMs int64) []models.ProgressEntry {
	updated := make([]models.ProgressEntry, len(entries))
	copy(updated, entries)

	for i, e := range updated {
		if utils.SameDay(e.Date, dateMs) {
			updated[i].IsCompleted = !e.IsCompleted
			return updated
		}
	}

	return append(updated, models.ProgressEntry{Date: dateMs, IsCompleted: true})
}

// CompletedCount counts entries marked completed.
func CompletedCount(entries []models.ProgressEntry) int {
	count := 0
	for _, e := range entries {
		if e.IsCompleted {
			count++
		}
	}
	return count
}

// CompletionRatio derives a [0, 1] progress ratio. With a positive
// requiredCount the ratio is completed/required capped at 1; otherwise it is
// completed over total tracked days, 0 for an empty ledger.
func CompletionRatio(entries []models.ProgressEntry, requiredCount int) float64 {
	completed := CompletedCount(entries)

	if requiredCount > 0 {
		ratio := float64(completed) / float64(requiredCount)
		if ratio > 1 {
			return 1
		}
		return ratio
	}

	if len(entries) == 0 {
		return 0
	}
	return float64(completed) / float64(len(entries))
}

// ScheduledAdherence returns the whole-number adherence percentage counting
// only entries whose day the schedule covers. Entries on non-scheduled days
// are tolerated in the ledger but excluded from the denominator. Returns 0
// when no scheduled days are tracked.
func ScheduledAdherence(entries []models.ProgressEntry, scheduled func(time.Weekday) bool) int {
	tracked := 0
	completed := 0
	for _, e := range entries {
		wd := time.UnixMilli(e.Date).UTC().Weekday()
		if !scheduled(wd) {
			continue
		}
		tracked++
		if e.IsCompleted {
			completed++
		}
	}

	if tracked == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(tracked)))
}

// DaysRemainingLabel describes how much of a tracked period is left.
// A nil end date means the period never closes.
func DaysRemainingLabel(endDateMs *int64, nowMs int64) string {
	if endDateMs == nil {
		return "Ongoing"
	}

	days := int(math.Ceil(float64(*endDateMs-nowMs) / float64(constants.DayMs)))
	if days <= 0 {
		return "Completed"
	}
	if days == 1 {
		return "1 day remaining"
	}
	return fmt.Sprintf("%d days remaining", days)
}
