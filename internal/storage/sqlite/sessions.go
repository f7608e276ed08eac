package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/storage"
)

func (s *Store) SaveSession(session models.FastingSession) error {
	var endTime sql.NullInt64
	if session.EndTime != nil {
		endTime = sql.NullInt64{Int64: *session.EndTime, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions (id, start_time, end_time, target_duration, is_completed)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			end_time = excluded.end_time,
			is_completed = excluded.is_completed`,
		session.ID, session.StartTime, endTime, session.TargetDuration, session.IsCompleted)
	return err
}

func (s *Store) GetActiveSession() (*models.FastingSession, error) {
	row := s.db.QueryRow(`
		SELECT id, start_time, end_time, target_duration, is_completed
		FROM sessions WHERE end_time IS NULL
		ORDER BY start_time DESC LIMIT 1`)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s *Store) GetSession(id string) (models.FastingSession, error) {
	row := s.db.QueryRow(`
		SELECT id, start_time, end_time, target_duration, is_completed
		FROM sessions WHERE id = ?`, id)

	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FastingSession{}, fmt.Errorf("session %s: %w", id, storage.ErrNotFound)
	}
	return session, err
}

func (s *Store) GetAllSessions() ([]models.FastingSession, error) {
	rows, err := s.db.Query(`
		SELECT id, start_time, end_time, target_duration, is_completed
		FROM sessions ORDER BY start_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.FastingSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (s *Store) DeleteSession(id string) error {
	res, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (models.FastingSession, error) {
	var session models.FastingSession
	var endTime sql.NullInt64

	err := row.Scan(&session.ID, &session.StartTime, &endTime, &session.TargetDuration, &session.IsCompleted)
	if err != nil {
		return models.FastingSession{}, err
	}

	if endTime.Valid {
		session.EndTime = &endTime.Int64
	}
	return session, nil
}
