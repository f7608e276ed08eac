package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/progress"
)

// CreateChallenge validates and persists a new challenge. A positive
// durationDays fixes the end date that many days after the start; zero
// leaves the challenge open-ended.
func (t *Tracker) CreateChallenge(c models.Challenge, durationDays int, now time.Time) (models.Challenge, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.StartDate == 0 {
		c.StartDate = now.UnixMilli()
	}
	if durationDays > 0 {
		end := c.StartDate + int64(durationDays)*constants.DayMs
		c.EndDate = &end
	}

	if err := c.Validate(); err != nil {
		return models.Challenge{}, err
	}

	if err := t.store.SaveChallenge(c); err != nil {
		return models.Challenge{}, fmt.Errorf("failed to save challenge: %w", err)
	}
	return c, nil
}

// ToggleChallengeProgress flips the completion flag for dateMs's calendar
// day and re-evaluates the trophy. A trophy is awarded the moment the
// completed count reaches the required days and never reverts, even if a
// day is later toggled back off.
func (t *Tracker) ToggleChallengeProgress(id string, dateMs int64) (models.Challenge, error) {
	c, err := t.store.GetChallenge(id)
	if err != nil {
		return models.Challenge{}, err
	}

	c.Progress = progress.ToggleDay(c.Progress, dateMs)

	if c.Trophy != nil && !c.Trophy.Awarded && c.DaysRequired > 0 {
		if progress.CompletedCount(c.Progress) >= c.DaysRequired {
			c.Trophy.Awarded = true
		}
	}

	if err := t.store.SaveChallenge(c); err != nil {
		return models.Challenge{}, fmt.Errorf("failed to save challenge: %w", err)
	}
	return c, nil
}

// StartChallenge restarts the challenge clock at now. The end date becomes
// daysRequired+1 days out when a requirement is set, otherwise the default
// challenge duration. A fasting challenge also kicks off a fast for its
// prescribed hours; that happens before the challenge is persisted so an
// already-running fast aborts the whole operation.
func (t *Tracker) StartChallenge(id string, now time.Time) (models.Challenge, error) {
	c, err := t.store.GetChallenge(id)
	if err != nil {
		return models.Challenge{}, err
	}

	c.StartDate = now.UnixMilli()
	var end int64
	if c.DaysRequired > 0 {
		end = c.StartDate + int64(c.DaysRequired+1)*constants.DayMs
	} else {
		end = c.StartDate + int64(constants.DefaultChallengeDurationDays)*constants.DayMs
	}
	c.EndDate = &end

	if c.Kind == models.ChallengeFasting && t.fasting != nil {
		if _, err := t.fasting.Start(c.FastingHours, now); err != nil {
			return models.Challenge{}, fmt.Errorf("failed to start fast for challenge: %w", err)
		}
	}

	if err := t.store.SaveChallenge(c); err != nil {
		return models.Challenge{}, fmt.Errorf("failed to save challenge: %w", err)
	}
	return c, nil
}

func (t *Tracker) GetChallenge(id string) (models.Challenge, error) {
	return t.store.GetChallenge(id)
}

func (t *Tracker) ListChallenges() ([]models.Challenge, error) {
	return t.store.GetAllChallenges()
}

func (t *Tracker) DeleteChallenge(id string) error {
	return t.store.DeleteChallenge(id)
}

// ChallengeStatus is a derived, display-ready view of challenge progress.
type ChallengeStatus struct {
	Completed      int
	Ratio          float64
	RemainingLabel string
}

// StatusOf derives completion figures for a challenge at a point in time.
func StatusOf(c models.Challenge, now time.Time) ChallengeStatus {
	return ChallengeStatus{
		Completed:      progress.CompletedCount(c.Progress),
		Ratio:          progress.CompletionRatio(c.Progress, c.DaysRequired),
		RemainingLabel: progress.DaysRemainingLabel(c.EndDate, now.UnixMilli()),
	}
}
