package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func createTestDB(t *testing.T, dir string) string {
	t.Helper()
	dbPath := filepath.Join(dir, "phoenix.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE sessions (id TEXT PRIMARY KEY)"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO sessions (id) VALUES ('s1')"); err != nil {
		t.Fatal(err)
	}
	return dbPath
}

func TestCreateAndListBackups(t *testing.T) {
	dir := t.TempDir()
	dbPath := createTestDB(t, dir)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file not created: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Path != backupPath {
		t.Errorf("expected path %s, got %s", backupPath, backups[0].Path)
	}
	if backups[0].Size == 0 {
		t.Error("backup should not be empty")
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "phoenix.db"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	dbPath := createTestDB(t, dir)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutate the live database after the backup
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO sessions (id) VALUES ('s2')"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected the restored database to hold 1 row, got %d", count)
	}
}

func TestRestoreInvalidBackup(t *testing.T) {
	dir := t.TempDir()
	dbPath := createTestDB(t, dir)
	mgr := NewManager(dbPath)

	badPath := filepath.Join(dir, "garbage.db")
	if err := os.WriteFile(badPath, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.RestoreBackup(badPath); err == nil {
		t.Error("expected error restoring an invalid backup")
	}
}

func TestParseBackupTimestamp(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"phoenix-20260301-0930.db", true},
		{"phoenix-20260301-093045.db", true},
		{"phoenix-20260301-093045-2.db", true},
		{"phoenix-not-a-time.db", false},
	}
	for _, c := range cases {
		if _, ok := parseBackupTimestamp(c.name); ok != c.ok {
			t.Errorf("parseBackupTimestamp(%q) ok = %v, want %v", c.name, ok, c.ok)
		}
	}
}
