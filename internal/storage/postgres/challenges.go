package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/storage"
)

// SaveChallenge replaces the whole challenge row and its progress ledger in
// one transaction, matching the engine's full-entity-replace discipline.
func (s *Store) SaveChallenge(c models.Challenge) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var endDate sql.NullInt64
	if c.EndDate != nil {
		endDate = sql.NullInt64{Int64: *c.EndDate, Valid: true}
	}

	var trophyName, trophyDescription sql.NullString
	var trophyAwarded sql.NullBool
	if c.Trophy != nil {
		trophyName = sql.NullString{String: c.Trophy.Name, Valid: true}
		trophyDescription = sql.NullString{String: c.Trophy.Description, Valid: true}
		trophyAwarded = sql.NullBool{Bool: c.Trophy.Awarded, Valid: true}
	}

	if _, err := tx.Exec(`
		INSERT INTO challenges (
			id, title, description, kind, frequency, start_date, end_date,
			days_required, fasting_hours, fasting_style,
			trophy_name, trophy_description, trophy_awarded
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			kind = EXCLUDED.kind,
			frequency = EXCLUDED.frequency,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			days_required = EXCLUDED.days_required,
			fasting_hours = EXCLUDED.fasting_hours,
			fasting_style = EXCLUDED.fasting_style,
			trophy_name = EXCLUDED.trophy_name,
			trophy_description = EXCLUDED.trophy_description,
			trophy_awarded = EXCLUDED.trophy_awarded`,
		c.ID, c.Title, c.Description, string(c.Kind), string(c.Frequency),
		c.StartDate, endDate, c.DaysRequired, c.FastingHours, string(c.FastingStyle),
		trophyName, trophyDescription, trophyAwarded); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec("DELETE FROM challenge_progress WHERE challenge_id = $1", c.ID); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, p := range c.Progress {
		if _, err := tx.Exec(`
			INSERT INTO challenge_progress (challenge_id, date, is_completed)
			VALUES ($1, $2, $3)`, c.ID, p.Date, p.IsCompleted); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetChallenge(id string) (models.Challenge, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, kind, frequency, start_date, end_date,
			days_required, fasting_hours, fasting_style,
			trophy_name, trophy_description, trophy_awarded
		FROM challenges WHERE id = $1`, id)

	c, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Challenge{}, fmt.Errorf("challenge %s: %w", id, storage.ErrNotFound)
		}
		return models.Challenge{}, err
	}

	c.Progress, err = s.challengeProgress(c.ID)
	return c, err
}

func (s *Store) GetAllChallenges() ([]models.Challenge, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, kind, frequency, start_date, end_date,
			days_required, fasting_hours, fasting_style,
			trophy_name, trophy_description, trophy_awarded
		FROM challenges ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []models.Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range challenges {
		challenges[i].Progress, err = s.challengeProgress(challenges[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return challenges, nil
}

func (s *Store) DeleteChallenge(id string) error {
	res, err := s.db.Exec("DELETE FROM challenges WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("challenge %s: %w", id, storage.ErrNotFound)
	}
	_, err = s.db.Exec("DELETE FROM challenge_progress WHERE challenge_id = $1", id)
	return err
}

func (s *Store) challengeProgress(challengeID string) ([]models.ProgressEntry, error) {
	rows, err := s.db.Query(`
		SELECT date, is_completed FROM challenge_progress
		WHERE challenge_id = $1 ORDER BY date`, challengeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ProgressEntry
	for rows.Next() {
		var e models.ProgressEntry
		if err := rows.Scan(&e.Date, &e.IsCompleted); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanChallenge(row rowScanner) (models.Challenge, error) {
	var c models.Challenge
	var kind, frequency, fastingStyle string
	var endDate sql.NullInt64
	var trophyName, trophyDescription sql.NullString
	var trophyAwarded sql.NullBool

	err := row.Scan(&c.ID, &c.Title, &c.Description, &kind, &frequency,
		&c.StartDate, &endDate, &c.DaysRequired, &c.FastingHours, &fastingStyle,
		&trophyName, &trophyDescription, &trophyAwarded)
	if err != nil {
		return models.Challenge{}, err
	}

	c.Kind = models.ChallengeKind(kind)
	c.Frequency = models.Frequency(frequency)
	c.FastingStyle = models.FastingStyle(fastingStyle)
	if endDate.Valid {
		c.EndDate = &endDate.Int64
	}
	if trophyName.Valid {
		c.Trophy = &models.Trophy{
			Name:        trophyName.String,
			Description: trophyDescription.String,
			Awarded:     trophyAwarded.Bool,
		}
	}

	return c, nil
}
