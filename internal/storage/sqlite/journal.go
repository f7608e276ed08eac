package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/storage"
)

func (s *Store) SaveJournalEntry(entry models.JournalEntry) error {
	var tags sql.NullString
	if len(entry.Tags) > 0 {
		data, err := json.Marshal(entry.Tags)
		if err != nil {
			return fmt.Errorf("failed to serialize tags: %w", err)
		}
		tags = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO journal_entries (id, date, title, content, mood, tags)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			mood = excluded.mood,
			tags = excluded.tags`,
		entry.ID, entry.Date, entry.Title, entry.Content, entry.Mood, tags)
	return err
}

func (s *Store) GetAllJournalEntries() ([]models.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, title, content, mood, tags
		FROM journal_entries ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var entry models.JournalEntry
		var tags sql.NullString
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Title, &entry.Content, &entry.Mood, &tags); err != nil {
			return nil, err
		}
		if tags.Valid {
			if err := json.Unmarshal([]byte(tags.String), &entry.Tags); err != nil {
				return nil, fmt.Errorf("failed to parse tags: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteJournalEntry(id string) error {
	res, err := s.db.Exec("DELETE FROM journal_entries WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("journal entry %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
