// Package tracker manages challenges and rituals: multi-day commitments
// whose progress lives in day-keyed completion ledgers. Every mutation
// persists a fully updated entity or fails without side effects.
package tracker

import (
	"time"

	"github.com/Stevedee925/phoenix/internal/models"
)

// Store is the slice of the persistence surface the tracker needs.
type Store interface {
	SaveChallenge(c models.Challenge) error
	GetChallenge(id string) (models.Challenge, error)
	GetAllChallenges() ([]models.Challenge, error)
	DeleteChallenge(id string) error

	SaveRitual(r models.Ritual) error
	GetRitual(id string) (models.Ritual, error)
	GetAllRituals() ([]models.Ritual, error)
	DeleteRitual(id string) error
}

// FastStarter is the fasting engine surface used when a fasting challenge
// is started.
type FastStarter interface {
	Start(hours int, now time.Time) (models.FastingSession, error)
}

type Tracker struct {
	store   Store
	fasting FastStarter
}

// New wires the tracker to its collaborators. The fasting engine may be nil
// when fasting challenges are not in play (tests, non-fasting workflows).
func New(store Store, fasting FastStarter) *Tracker {
	return &Tracker{store: store, fasting: fasting}
}
