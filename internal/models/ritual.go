package models

import (
	"fmt"
	"time"

	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/errors"
)

// Ritual is a recurring practice anchored to a wall-clock time on a set of
// weekdays. Progress uses the same day-keyed ledger as challenges; entries
// on non-scheduled days are tolerated but excluded from adherence.
type Ritual struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Time        string          `json:"time"` // HH:MM format
	Days        []time.Weekday  `json:"days"`
	IsActive    bool            `json:"is_active"`
	Progress    []ProgressEntry `json:"progress"`
}

// Validate checks the fields required to create a ritual.
func (r *Ritual) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("%w: ritual title cannot be empty", errors.ErrValidation)
	}
	if r.Description == "" {
		return fmt.Errorf("%w: ritual description cannot be empty", errors.ErrValidation)
	}
	if len(r.Days) == 0 {
		return fmt.Errorf("%w: ritual must be scheduled on at least one weekday", errors.ErrValidation)
	}
	if _, err := time.Parse(constants.TimeFormat, r.Time); err != nil {
		return fmt.Errorf("%w: invalid time format (expected HH:MM): %v", errors.ErrValidation, err)
	}
	return nil
}

// IsScheduledOn reports whether the ritual runs on the given weekday.
func (r *Ritual) IsScheduledOn(wd time.Weekday) bool {
	for _, d := range r.Days {
		if d == wd {
			return true
		}
	}
	return false
}

// IsDueAt reports whether the ritual should fire at the given instant: it is
// active, scheduled on that weekday, and its wall-clock time matches to the
// minute.
func (r *Ritual) IsDueAt(t time.Time) bool {
	if !r.IsActive || !r.IsScheduledOn(t.Weekday()) {
		return false
	}
	return t.Format(constants.TimeFormat) == r.Time
}
