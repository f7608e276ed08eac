package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/models"
)

func TestParseDayFlag(t *testing.T) {
	ms, err := ParseDayFlag("2026-03-01")
	if err != nil {
		t.Fatalf("ParseDayFlag: %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if ms != want {
		t.Errorf("ParseDayFlag = %d, want UTC midnight %d", ms, want)
	}

	before := time.Now().UnixMilli()
	ms, err = ParseDayFlag("")
	if err != nil {
		t.Fatalf("ParseDayFlag empty: %v", err)
	}
	if ms < before || ms > time.Now().UnixMilli() {
		t.Errorf("empty flag should resolve to now, got %d", ms)
	}

	for _, bad := range []string{"03/01/2026", "2026-3-1", "yesterday"} {
		if _, err := ParseDayFlag(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("a1b2c3d4-e5f6-7890-abcd-ef1234567890"); got != "a1b2c3d4" {
		t.Errorf("ShortID = %q", got)
	}
	if got := ShortID("plain"); got != "plain" {
		t.Errorf("ShortID without dash = %q", got)
	}
}

func TestFormatSession(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC).UnixMilli()
	s := models.FastingSession{
		ID:             "s1",
		StartTime:      start,
		TargetDuration: 16 * constants.HourMs,
	}

	line := FormatSession(s)
	if !strings.Contains(line, "2026-03-01") || !strings.Contains(line, "16h") || !strings.Contains(line, "active") {
		t.Errorf("active line = %q", line)
	}

	end := start + 16*constants.HourMs
	s.EndTime = &end
	s.IsCompleted = true
	line = FormatSession(s)
	if !strings.Contains(line, "completed") || !strings.Contains(line, "16:00:00") {
		t.Errorf("completed line = %q", line)
	}

	early := start + 2*constants.HourMs
	s.EndTime = &early
	s.IsCompleted = false
	if line = FormatSession(s); !strings.Contains(line, "ended early") {
		t.Errorf("early line = %q", line)
	}
}

func TestFormatChallengeKind(t *testing.T) {
	c := models.Challenge{Kind: models.ChallengeCustom}
	if got := FormatChallengeKind(c); got != "custom" {
		t.Errorf("custom kind = %q", got)
	}

	c = models.Challenge{
		Kind:         models.ChallengeFasting,
		FastingHours: 16,
		FastingStyle: models.FastingIntermittent,
	}
	if got := FormatChallengeKind(c); got != "fasting (16h intermittent)" {
		t.Errorf("fasting kind = %q", got)
	}
}
