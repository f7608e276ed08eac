package reminders

import (
	"testing"
	"time"

	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/models"
)

func makeSession(start time.Time, target time.Duration) models.FastingSession {
	return models.FastingSession{
		ID:             "s1",
		StartTime:      start.UnixMilli(),
		TargetDuration: int64(target / time.Millisecond),
	}
}

func titles(rs []sessionReminder) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.title
	}
	return out
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}

func TestSessionRemindersFullSet(t *testing.T) {
	now := time.Now()
	rs := sessionReminders(makeSession(now, 16*time.Hour), now)

	if len(rs) != 3 {
		t.Fatalf("expected 3 reminders, got %d", len(rs))
	}
	got := titles(rs)
	for _, want := range []string{
		constants.ReminderHalfwayTitle,
		constants.ReminderOneHourTitle,
		constants.ReminderCompleteTitle,
	} {
		if !contains(got, want) {
			t.Errorf("missing reminder %q in %v", want, got)
		}
	}
}

func TestSessionRemindersShortFastSkipsOneHour(t *testing.T) {
	now := time.Now()
	rs := sessionReminders(makeSession(now, 45*time.Minute), now)

	if len(rs) != 2 {
		t.Fatalf("expected 2 reminders for a sub-hour fast, got %d", len(rs))
	}
	if contains(titles(rs), constants.ReminderOneHourTitle) {
		t.Error("one-hour reminder should not be scheduled for fasts under an hour")
	}
}

func TestSessionRemindersSkipsPastInstants(t *testing.T) {
	now := time.Now()
	// Started 10 hours into a 16 hour fast: halfway (8h) already passed
	rs := sessionReminders(makeSession(now.Add(-10*time.Hour), 16*time.Hour), now)

	got := titles(rs)
	if contains(got, constants.ReminderHalfwayTitle) {
		t.Error("halfway reminder is in the past and should be dropped")
	}
	if !contains(got, constants.ReminderOneHourTitle) || !contains(got, constants.ReminderCompleteTitle) {
		t.Errorf("expected one-hour and completion reminders, got %v", got)
	}
}

func TestSessionRemindersAllPast(t *testing.T) {
	now := time.Now()
	rs := sessionReminders(makeSession(now.Add(-20*time.Hour), 16*time.Hour), now)
	if len(rs) != 0 {
		t.Errorf("expected no reminders for an elapsed fast, got %d", len(rs))
	}
}

func TestReminderInstants(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	rs := sessionReminders(makeSession(start, 16*time.Hour), start)

	want := map[string]time.Time{
		constants.ReminderHalfwayTitle:  start.Add(8 * time.Hour),
		constants.ReminderOneHourTitle:  start.Add(15 * time.Hour),
		constants.ReminderCompleteTitle: start.Add(16 * time.Hour),
	}
	for _, r := range rs {
		if !r.at.Equal(want[r.title]) {
			t.Errorf("%s scheduled at %v, want %v", r.title, r.at, want[r.title])
		}
	}
}
