package models

import (
	"testing"
	"time"

	"github.com/Stevedee925/phoenix/internal/errors"
)

func validChallenge() Challenge {
	return Challenge{
		ID:          "c1",
		Title:       "Morning walks",
		Description: "Walk before breakfast",
		Kind:        ChallengeCustom,
		Frequency:   FrequencyDaily,
	}
}

func TestChallengeValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Challenge)
		valid  bool
	}{
		{"valid custom", func(c *Challenge) {}, true},
		{"valid ai-generated", func(c *Challenge) { c.Kind = ChallengeAIGenerated }, true},
		{"valid fasting", func(c *Challenge) {
			c.Kind = ChallengeFasting
			c.FastingHours = 16
			c.FastingStyle = FastingIntermittent
		}, true},
		{"empty title", func(c *Challenge) { c.Title = "" }, false},
		{"empty description", func(c *Challenge) { c.Description = "" }, false},
		{"unknown kind", func(c *Challenge) { c.Kind = "sprint" }, false},
		{"unknown frequency", func(c *Challenge) { c.Frequency = "hourly" }, false},
		{"negative days required", func(c *Challenge) { c.DaysRequired = -1 }, false},
		{"fasting without hours", func(c *Challenge) {
			c.Kind = ChallengeFasting
			c.FastingStyle = FastingOMAD
		}, false},
		{"fasting without style", func(c *Challenge) {
			c.Kind = ChallengeFasting
			c.FastingHours = 20
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validChallenge()
			tc.mutate(&c)
			err := c.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !errors.Is(err, errors.ErrValidation) {
					t.Errorf("error does not wrap ErrValidation: %v", err)
				}
			}
		})
	}
}

func TestChallengeCompletedDays(t *testing.T) {
	c := validChallenge()
	c.Progress = []ProgressEntry{
		{Date: 1, IsCompleted: true},
		{Date: 2, IsCompleted: false},
		{Date: 3, IsCompleted: true},
	}
	if got := c.CompletedDays(); got != 2 {
		t.Errorf("CompletedDays = %d, want 2", got)
	}
}

func TestRitualValidate(t *testing.T) {
	r := Ritual{
		Title:       "Evening stretch",
		Description: "10 minutes of stretching",
		Time:        "21:00",
		Days:        []time.Weekday{time.Monday, time.Thursday},
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("expected valid ritual, got %v", err)
	}

	bad := r
	bad.Days = nil
	if err := bad.Validate(); !errors.Is(err, errors.ErrValidation) {
		t.Errorf("expected ErrValidation for no weekdays, got %v", err)
	}

	bad = r
	bad.Time = "9pm"
	if err := bad.Validate(); !errors.Is(err, errors.ErrValidation) {
		t.Errorf("expected ErrValidation for bad time, got %v", err)
	}
}

func TestRitualIsDueAt(t *testing.T) {
	r := Ritual{
		Title:       "Evening stretch",
		Description: "10 minutes of stretching",
		Time:        "21:00",
		Days:        []time.Weekday{time.Monday},
		IsActive:    true,
	}

	// 2026-03-02 is a Monday.
	due := time.Date(2026, 3, 2, 21, 0, 30, 0, time.UTC)
	if !r.IsDueAt(due) {
		t.Error("expected due at scheduled minute")
	}
	if r.IsDueAt(due.Add(time.Minute)) {
		t.Error("not due one minute later")
	}
	if r.IsDueAt(due.AddDate(0, 0, 1)) {
		t.Error("not due on a non-scheduled weekday")
	}

	r.IsActive = false
	if r.IsDueAt(due) {
		t.Error("paused rituals are never due")
	}
}

func TestFastingSessionHelpers(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC).UnixMilli()
	s := FastingSession{
		ID:             "s1",
		StartTime:      start,
		TargetDuration: 16 * int64(time.Hour/time.Millisecond),
	}

	if !s.Active() {
		t.Error("session without end time should be active")
	}
	if got := s.TargetHours(); got != 16 {
		t.Errorf("TargetHours = %d, want 16", got)
	}
	wantEnd := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !s.TargetEnd().Equal(wantEnd) {
		t.Errorf("TargetEnd = %v, want %v", s.TargetEnd(), wantEnd)
	}

	end := start + 1000
	s.EndTime = &end
	if s.Active() {
		t.Error("session with end time should not be active")
	}
}
