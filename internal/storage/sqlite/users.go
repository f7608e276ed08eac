package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Stevedee925/phoenix/internal/models"
)

// The single local profile; stats are stored as a JSON blob since they are
// read and written as a unit.
func (s *Store) SaveUser(user models.User) error {
	var stats sql.NullString
	if user.Stats != nil {
		data, err := json.Marshal(user.Stats)
		if err != nil {
			return fmt.Errorf("failed to serialize user stats: %w", err)
		}
		stats = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO users (id, name, email, stats)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			stats = excluded.stats`,
		user.ID, user.Name, user.Email, stats)
	return err
}

func (s *Store) GetUser() (*models.User, error) {
	row := s.db.QueryRow("SELECT id, name, email, stats FROM users LIMIT 1")

	var user models.User
	var stats sql.NullString
	err := row.Scan(&user.ID, &user.Name, &user.Email, &stats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if stats.Valid {
		user.Stats = &models.UserStats{}
		if err := json.Unmarshal([]byte(stats.String), user.Stats); err != nil {
			return nil, fmt.Errorf("failed to parse user stats: %w", err)
		}
	}

	return &user, nil
}
