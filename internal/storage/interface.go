package storage

import (
	"errors"

	"github.com/Stevedee925/phoenix/internal/models"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Provider is the persistence gateway every backend implements. Writes are
// durable before the call returns; GetActiveSession reflects the most recent
// SaveSession whose end time is unset.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Fasting sessions. SaveSession upserts into history and maintains the
	// active pointer: a session with no end time becomes the active session,
	// saving it with an end time clears the pointer if it was active.
	SaveSession(models.FastingSession) error
	GetActiveSession() (*models.FastingSession, error)
	GetSession(id string) (models.FastingSession, error)
	GetAllSessions() ([]models.FastingSession, error)
	DeleteSession(id string) error

	// User profile
	SaveUser(models.User) error
	GetUser() (*models.User, error)

	// Challenges
	SaveChallenge(models.Challenge) error
	GetChallenge(id string) (models.Challenge, error)
	GetAllChallenges() ([]models.Challenge, error)
	DeleteChallenge(id string) error

	// Rituals
	SaveRitual(models.Ritual) error
	GetRitual(id string) (models.Ritual, error)
	GetAllRituals() ([]models.Ritual, error)
	DeleteRitual(id string) error

	// Journal
	SaveJournalEntry(models.JournalEntry) error
	GetAllJournalEntries() ([]models.JournalEntry, error)
	DeleteJournalEntry(id string) error

	// Utils
	GetConfigPath() string
}
