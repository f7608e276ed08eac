package tracker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/progress"
)

// CreateRitual validates and persists a new ritual. Rituals start active.
func (t *Tracker) CreateRitual(r models.Ritual) (models.Ritual, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.IsActive = true

	if err := r.Validate(); err != nil {
		return models.Ritual{}, err
	}

	if err := t.store.SaveRitual(r); err != nil {
		return models.Ritual{}, fmt.Errorf("failed to save ritual: %w", err)
	}
	return r, nil
}

// ToggleRitualProgress flips the completion flag for dateMs's calendar day.
// Toggling on a non-scheduled weekday is allowed; such entries simply don't
// count toward adherence.
func (t *Tracker) ToggleRitualProgress(id string, dateMs int64) (models.Ritual, error) {
	r, err := t.store.GetRitual(id)
	if err != nil {
		return models.Ritual{}, err
	}

	r.Progress = progress.ToggleDay(r.Progress, dateMs)

	if err := t.store.SaveRitual(r); err != nil {
		return models.Ritual{}, fmt.Errorf("failed to save ritual: %w", err)
	}
	return r, nil
}

// SetRitualActive pauses or resumes a ritual. Paused rituals keep their
// ledger but stop firing reminders.
func (t *Tracker) SetRitualActive(id string, active bool) (models.Ritual, error) {
	r, err := t.store.GetRitual(id)
	if err != nil {
		return models.Ritual{}, err
	}

	r.IsActive = active

	if err := t.store.SaveRitual(r); err != nil {
		return models.Ritual{}, fmt.Errorf("failed to save ritual: %w", err)
	}
	return r, nil
}

func (t *Tracker) GetRitual(id string) (models.Ritual, error) {
	return t.store.GetRitual(id)
}

func (t *Tracker) ListRituals() ([]models.Ritual, error) {
	return t.store.GetAllRituals()
}

func (t *Tracker) DeleteRitual(id string) error {
	return t.store.DeleteRitual(id)
}

// RitualAdherence is the whole-number percentage of scheduled-day entries
// marked completed.
func RitualAdherence(r models.Ritual) int {
	return progress.ScheduledAdherence(r.Progress, r.IsScheduledOn)
}
