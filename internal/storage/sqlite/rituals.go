package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/storage"
)

// Weekday sets are stored as comma-separated numeric values ("1,3,5").
func encodeWeekdays(days []time.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(s string) ([]time.Weekday, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday value %q", p)
		}
		days = append(days, time.Weekday(n))
	}
	return days, nil
}

func (s *Store) SaveRitual(r models.Ritual) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO rituals (id, title, description, time, days, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			time = excluded.time,
			days = excluded.days,
			is_active = excluded.is_active`,
		r.ID, r.Title, r.Description, r.Time, encodeWeekdays(r.Days), r.IsActive); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec("DELETE FROM ritual_progress WHERE ritual_id = ?", r.ID); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, p := range r.Progress {
		if _, err := tx.Exec(`
			INSERT INTO ritual_progress (ritual_id, date, is_completed)
			VALUES (?, ?, ?)`, r.ID, p.Date, p.IsCompleted); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetRitual(id string) (models.Ritual, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, time, days, is_active
		FROM rituals WHERE id = ?`, id)

	r, err := scanRitual(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ritual{}, fmt.Errorf("ritual %s: %w", id, storage.ErrNotFound)
		}
		return models.Ritual{}, err
	}

	r.Progress, err = s.ritualProgress(r.ID)
	return r, err
}

func (s *Store) GetAllRituals() ([]models.Ritual, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, time, days, is_active
		FROM rituals ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rituals []models.Ritual
	for rows.Next() {
		r, err := scanRitual(rows)
		if err != nil {
			return nil, err
		}
		rituals = append(rituals, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range rituals {
		rituals[i].Progress, err = s.ritualProgress(rituals[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return rituals, nil
}

func (s *Store) DeleteRitual(id string) error {
	res, err := s.db.Exec("DELETE FROM rituals WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("ritual %s: %w", id, storage.ErrNotFound)
	}
	_, err = s.db.Exec("DELETE FROM ritual_progress WHERE ritual_id = ?", id)
	return err
}

func (s *Store) ritualProgress(ritualID string) ([]models.ProgressEntry, error) {
	rows, err := s.db.Query(`
		SELECT date, is_completed FROM ritual_progress
		WHERE ritual_id = ? ORDER BY date`, ritualID)
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

func scanRitual(row rowScanner) (models.Ritual, error) {
	var r models.Ritual
	var days string

	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.Time, &days, &r.IsActive)
	if err != nil {
		return models.Ritual{}, err
	}

	r.Days, err = decodeWeekdays(days)
	if err != nil {
		return models.Ritual{}, err
	}
	return r, nil
}
