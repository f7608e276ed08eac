// Package cli carries the shared command context and display helpers.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Stevedee925/phoenix/internal/backup"
	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/fasting"
	"github.com/Stevedee925/phoenix/internal/logger"
	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/storage"
	"github.com/Stevedee925/phoenix/internal/tracker"
	"github.com/Stevedee925/phoenix/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// Fasting builds the fasting engine for one-shot commands. No reminder
// gateway is attached; the remind daemon owns live scheduling.
func (c *Context) Fasting() *fasting.Engine {
	return fasting.NewEngine(c.Store, nil)
}

// Tracker builds the challenge/ritual engine, wired to the fasting engine so
// fasting challenges can start a fast.
func (c *Context) Tracker() *tracker.Tracker {
	return tracker.New(c.Store, c.Fasting())
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatSession renders one history line for a fasting session.
func FormatSession(s models.FastingSession) string {
	start := utils.DayKey(s.StartTime)
	state := "active"
	if s.EndTime != nil {
		if s.IsCompleted {
			state = "completed"
		} else {
			state = "ended early"
		}
	}

	var elapsed int64
	if s.EndTime != nil {
		elapsed = *s.EndTime - s.StartTime
	}
	return fmt.Sprintf("%s  %dh target  %s  %s", start, s.TargetHours(), utils.FormatClock(elapsed), state)
}

// FormatChallengeKind renders a challenge kind with its fasting details.
func FormatChallengeKind(c models.Challenge) string {
	if c.Kind != models.ChallengeFasting {
		return string(c.Kind)
	}
	return fmt.Sprintf("%s (%dh %s)", c.Kind, c.FastingHours, c.FastingStyle)
}

// ParseDayFlag turns an optional YYYY-MM-DD flag into a millisecond
// timestamp, defaulting to now when empty. Explicit dates resolve to UTC
// midnight so they land in the intended ledger day.
func ParseDayFlag(date string) (int64, error) {
	if date == "" {
		return time.Now().UnixMilli(), nil
	}
	day, err := time.ParseInLocation(constants.DateFormat, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}
	return day.UnixMilli(), nil
}

// ShortID truncates a uuid for display.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
