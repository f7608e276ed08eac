package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/models"
)

// Store is the serialized shape of the JSON backend: one document holding
// every entity map, written atomically as a whole on each mutation.
type Store struct {
	Version         int                            `json:"version"`
	Settings        models.Settings                `json:"settings"`
	User            *models.User                   `json:"user,omitempty"`
	ActiveSessionID string                         `json:"active_session_id,omitempty"`
	Sessions        map[string]models.FastingSession `json:"sessions"`
	Challenges      map[string]models.Challenge    `json:"challenges"`
	Rituals         map[string]models.Ritual       `json:"rituals"`
	Journal         map[string]models.JournalEntry `json:"journal"`
}

// JSONStore persists everything in a single JSON document. Suited to small
// local datasets; not safe for concurrent processes sharing one path.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Settings: models.Settings{
			NotificationsEnabled: constants.DefaultNotificationsEnabled,
			DefaultFastingHours:  constants.DefaultFastingHours,
			Timezone:             constants.DefaultTimezone,
		},
		Sessions:   make(map[string]models.FastingSession),
		Challenges: make(map[string]models.Challenge),
		Rituals:    make(map[string]models.Ritual),
		Journal:    make(map[string]models.JournalEntry),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.store != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'phoenix init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Sessions == nil {
		s.store.Sessions = make(map[string]models.FastingSession)
	}
	if s.store.Challenges == nil {
		s.store.Challenges = make(map[string]models.Challenge)
	}
	if s.store.Rituals == nil {
		s.store.Rituals = make(map[string]models.Ritual)
	}
	if s.store.Journal == nil {
		s.store.Journal = make(map[string]models.JournalEntry)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) SaveSession(session models.FastingSession) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.Sessions[session.ID] = session

	if session.Active() {
		s.store.ActiveSessionID = session.ID
	} else if s.store.ActiveSessionID == session.ID {
		s.store.ActiveSessionID = ""
	}

	return s.save()
}

func (s *JSONStore) GetActiveSession() (*models.FastingSession, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	if s.store.ActiveSessionID == "" {
		return nil, nil
	}

	session, ok := s.store.Sessions[s.store.ActiveSessionID]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *JSONStore) GetSession(id string) (models.FastingSession, error) {
	if err := s.loaded(); err != nil {
		return models.FastingSession{}, err
	}

	session, ok := s.store.Sessions[id]
	if !ok {
		return models.FastingSession{}, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return session, nil
}

func (s *JSONStore) GetAllSessions() ([]models.FastingSession, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	sessions := make([]models.FastingSession, 0, len(s.store.Sessions))
	for _, session := range s.store.Sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime > sessions[j].StartTime
	})

	return sessions, nil
}

func (s *JSONStore) DeleteSession(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.store.Sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	delete(s.store.Sessions, id)
	if s.store.ActiveSessionID == id {
		s.store.ActiveSessionID = ""
	}

	return s.save()
}

func (s *JSONStore) SaveUser(user models.User) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.User = &user
	return s.save()
}

func (s *JSONStore) GetUser() (*models.User, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.store.User, nil
}

func (s *JSONStore) SaveChallenge(challenge models.Challenge) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Challenges[challenge.ID] = challenge
	return s.save()
}

func (s *JSONStore) GetChallenge(id string) (models.Challenge, error) {
	if err := s.loaded(); err != nil {
		return models.Challenge{}, err
	}

	challenge, ok := s.store.Challenges[id]
	if !ok {
		return models.Challenge{}, fmt.Errorf("challenge %s: %w", id, ErrNotFound)
	}
	return challenge, nil
}

func (s *JSONStore) GetAllChallenges() ([]models.Challenge, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	challenges := make([]models.Challenge, 0, len(s.store.Challenges))
	for _, c := range s.store.Challenges {
		challenges = append(challenges, c)
	}
	sort.Slice(challenges, func(i, j int) bool {
		return challenges[i].StartDate > challenges[j].StartDate
	})

	return challenges, nil
}

func (s *JSONStore) DeleteChallenge(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.store.Challenges[id]; !ok {
		return fmt.Errorf("challenge %s: %w", id, ErrNotFound)
	}
	delete(s.store.Challenges, id)

	return s.save()
}

func (s *JSONStore) SaveRitual(ritual models.Ritual) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Rituals[ritual.ID] = ritual
	return s.save()
}

func (s *JSONStore) GetRitual(id string) (models.Ritual, error) {
	if err := s.loaded(); err != nil {
		return models.Ritual{}, err
	}

	ritual, ok := s.store.Rituals[id]
	if !ok {
		return models.Ritual{}, fmt.Errorf("ritual %s: %w", id, ErrNotFound)
	}
	return ritual, nil
}

func (s *JSONStore) GetAllRituals() ([]models.Ritual, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	rituals := make([]models.Ritual, 0, len(s.store.Rituals))
	for _, r := range s.store.Rituals {
		rituals = append(rituals, r)
	}
	sort.Slice(rituals, func(i, j int) bool {
		return rituals[i].Title < rituals[j].Title
	})

	return rituals, nil
}

func (s *JSONStore) DeleteRitual(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.store.Rituals[id]; !ok {
		return fmt.Errorf("ritual %s: %w", id, ErrNotFound)
	}
	delete(s.store.Rituals, id)

	return s.save()
}

func (s *JSONStore) SaveJournalEntry(entry models.JournalEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Journal[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) GetAllJournalEntries() ([]models.JournalEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	entries := make([]models.JournalEntry, 0, len(s.store.Journal))
	for _, e := range s.store.Journal {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries, nil
}

func (s *JSONStore) DeleteJournalEntry(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.store.Journal[id]; !ok {
		return fmt.Errorf("journal entry %s: %w", id, ErrNotFound)
	}
	delete(s.store.Journal, id)

	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note: JSONStore is not safe for concurrent use by multiple
// goroutines or processes sharing the same path.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
