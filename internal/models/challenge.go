package models

import (
	"fmt"

	"github.com/Stevedee925/phoenix/internal/errors"
)

// ChallengeKind discriminates the challenge variants
type ChallengeKind string

// Frequency is how often a challenge expects progress
type Frequency string

// FastingStyle is the fasting protocol a fasting challenge prescribes
type FastingStyle string

const (
	ChallengeFasting     ChallengeKind = "fasting"
	ChallengeCustom      ChallengeKind = "custom"
	ChallengeAIGenerated ChallengeKind = "ai-generated"

	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"

	FastingIntermittent FastingStyle = "intermittent"
	FastingOMAD         FastingStyle = "omad"
)

// Trophy is awarded when a challenge reaches its required day count.
// Awarded never reverts once set.
type Trophy struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Awarded     bool   `json:"awarded"`
}

// Challenge is a multi-day commitment tracked through a day-keyed progress
// ledger. Kind-specific fields (FastingHours, FastingStyle) are only
// meaningful for fasting challenges and are validated as such rather than
// left as an all-optional bag.
type Challenge struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Kind         ChallengeKind   `json:"kind"`
	Frequency    Frequency       `json:"frequency"`
	StartDate    int64           `json:"start_date"`
	EndDate      *int64          `json:"end_date"` // nil = open-ended
	Progress     []ProgressEntry `json:"progress"`
	DaysRequired int             `json:"days_required,omitempty"`
	FastingHours int             `json:"fasting_hours,omitempty"`
	FastingStyle FastingStyle    `json:"fasting_style,omitempty"`
	Trophy       *Trophy         `json:"trophy,omitempty"`
}

// Validate checks the fields required for the challenge's kind.
func (c *Challenge) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("%w: challenge title cannot be empty", errors.ErrValidation)
	}
	if c.Description == "" {
		return fmt.Errorf("%w: challenge description cannot be empty", errors.ErrValidation)
	}

	switch c.Kind {
	case ChallengeFasting:
		if c.FastingHours <= 0 {
			return fmt.Errorf("%w: fasting challenge requires a positive fasting duration", errors.ErrValidation)
		}
		if c.FastingStyle != FastingIntermittent && c.FastingStyle != FastingOMAD {
			return fmt.Errorf("%w: invalid fasting style %q", errors.ErrValidation, c.FastingStyle)
		}
	case ChallengeCustom, ChallengeAIGenerated:
		// No kind-specific fields
	default:
		return fmt.Errorf("%w: invalid challenge kind %q", errors.ErrValidation, c.Kind)
	}

	switch c.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
	default:
		return fmt.Errorf("%w: invalid frequency %q", errors.ErrValidation, c.Frequency)
	}

	if c.DaysRequired < 0 {
		return fmt.Errorf("%w: days required cannot be negative", errors.ErrValidation)
	}

	return nil
}

// CompletedDays counts ledger entries marked completed.
func (c *Challenge) CompletedDays() int {
	count := 0
	for _, p := range c.Progress {
		if p.IsCompleted {
			count++
		}
	}
	return count
}
