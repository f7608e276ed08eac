package progress

import (
	"testing"
	"time"

	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/models"
)

func dayMs(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).UnixMilli()
}

func TestToggleDay(t *testing.T) {
	d1 := dayMs(2026, 3, 1)

	entries := ToggleDay(nil, d1)
	if len(entries) != 1 || !entries[0].IsCompleted {
		t.Fatalf("expected one completed entry, got %+v", entries)
	}

	// Toggling the same calendar day from a different hour flips the flag
	// rather than appending.
	sameDayLater := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC).UnixMilli()
	entries = ToggleDay(entries, sameDayLater)
	if len(entries) != 1 || entries[0].IsCompleted {
		t.Fatalf("expected one uncompleted entry after toggle, got %+v", entries)
	}

	entries = ToggleDay(entries, d1)
	if !entries[0].IsCompleted {
		t.Error("expected third toggle to re-complete the day")
	}

	entries = ToggleDay(entries, dayMs(2026, 3, 2))
	if len(entries) != 2 {
		t.Fatalf("expected new day to append, got %d entries", len(entries))
	}
}

func TestToggleDayDoesNotMutateInput(t *testing.T) {
	original := []models.ProgressEntry{{Date: dayMs(2026, 3, 1), IsCompleted: true}}
	_ = ToggleDay(original, dayMs(2026, 3, 1))
	if !original[0].IsCompleted {
		t.Error("input slice was mutated")
	}
}

func TestCompletionRatio(t *testing.T) {
	ledger := []models.ProgressEntry{
		{Date: dayMs(2026, 3, 1), IsCompleted: true},
		{Date: dayMs(2026, 3, 2), IsCompleted: true},
		{Date: dayMs(2026, 3, 3), IsCompleted: false},
		{Date: dayMs(2026, 3, 4), IsCompleted: true},
	}

	if got := CompletionRatio(nil, 0); got != 0 {
		t.Errorf("empty ledger ratio = %v, want 0", got)
	}
	if got := CompletionRatio(ledger, 5); got != 0.6 {
		t.Errorf("required-count ratio = %v, want 0.6", got)
	}
	if got := CompletionRatio(ledger, 0); got != 0.75 {
		t.Errorf("tracked-days ratio = %v, want 0.75", got)
	}
	if got := CompletionRatio(ledger, 2); got != 1 {
		t.Errorf("over-complete ratio = %v, want capped at 1", got)
	}
}

func TestScheduledAdherence(t *testing.T) {
	// 2026-03-02 is a Monday.
	ledger := []models.ProgressEntry{
		{Date: dayMs(2026, 3, 2), IsCompleted: true},  // Mon
		{Date: dayMs(2026, 3, 3), IsCompleted: true},  // Tue, off-schedule
		{Date: dayMs(2026, 3, 4), IsCompleted: false}, // Wed
	}
	scheduled := func(wd time.Weekday) bool {
		return wd == time.Monday || wd == time.Wednesday
	}

	if got := ScheduledAdherence(ledger, scheduled); got != 50 {
		t.Errorf("adherence = %d, want 50", got)
	}
	if got := ScheduledAdherence(nil, scheduled); got != 0 {
		t.Errorf("empty adherence = %d, want 0", got)
	}
}

func TestDaysRemainingLabel(t *testing.T) {
	now := dayMs(2026, 3, 1)

	if got := DaysRemainingLabel(nil, now); got != "Ongoing" {
		t.Errorf("nil end date = %q, want Ongoing", got)
	}

	past := now - constants.DayMs
	if got := DaysRemainingLabel(&past, now); got != "Completed" {
		t.Errorf("past end date = %q, want Completed", got)
	}

	oneDay := now + constants.DayMs
	if got := DaysRemainingLabel(&oneDay, now); got != "1 day remaining" {
		t.Errorf("one day = %q", got)
	}

	tenDays := now + 10*constants.DayMs
	if got := DaysRemainingLabel(&tenDays, now); got != "10 days remaining" {
		t.Errorf("ten days = %q", got)
	}
}
