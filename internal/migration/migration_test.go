package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func TestGetCurrentVersionFresh(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(nil), DialectSQLite)

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 on fresh database, got %d", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"002_update.sql":  "ALTER TABLE test1 ADD COLUMN name TEXT;",
		"001_init.sql":    "CREATE TABLE test1 (id INTEGER);",
		"003_another.sql": "CREATE TABLE test2 (id INTEGER);",
		"README.md":       "not a migration",
	}), DialectSQLite)

	migrations, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	for i, want := range []struct {
		version int
		name    string
	}{{1, "init"}, {2, "update"}, {3, "another"}} {
		if migrations[i].Version != want.version || migrations[i].Name != want.name {
			t.Errorf("migration %d: got version %d name %q, want %d %q",
				i, migrations[i].Version, migrations[i].Name, want.version, want.name)
		}
	}
}

func TestReadMigrationFilesInvalid(t *testing.T) {
	db := setupTestDB(t)

	cases := map[string]map[string]string{
		"missing underscore": {"001init.sql": "SELECT 1;"},
		"bad version":        {"abc_init.sql": "SELECT 1;"},
		"zero version":       {"000_init.sql": "SELECT 1;"},
		"duplicate version": {
			"001_init.sql":  "SELECT 1;",
			"001_again.sql": "SELECT 1;",
		},
	}
	for name, files := range cases {
		t.Run(name, func(t *testing.T) {
			runner := NewRunner(db, migrationFS(files), DialectSQLite)
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyMigrationsFromScratch(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_users.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);",
		"002_posts.sql": "CREATE TABLE posts (id INTEGER PRIMARY KEY, user_id INTEGER);",
	}), DialectSQLite)

	var logs []string
	applied, err := runner.ApplyMigrations(func(msg string) { logs = append(logs, msg) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 applied, got %d", applied)
	}
	if len(logs) != 2 || !strings.Contains(logs[0], "users") {
		t.Errorf("unexpected log output: %v", logs)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	// Both tables exist.
	for _, table := range []string{"users", "posts"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	fs := migrationFS(map[string]string{
		"001_users.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY);",
	})
	runner := NewRunner(db, fs, DialectSQLite)

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 applied on second run, got %d", applied)
	}
}

func TestApplyMigrationsRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_good.sql": "CREATE TABLE good (id INTEGER);",
		"002_bad.sql":  "THIS IS NOT SQL;",
	}), DialectSQLite)

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from invalid migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 applied before failure, got %d", applied)
	}

	// The successful migration's version sticks.
	version, verr := runner.GetCurrentVersion()
	if verr != nil {
		t.Fatalf("GetCurrentVersion failed: %v", verr)
	}
	if version != 1 {
		t.Errorf("expected version 1, got %d", version)
	}
}

func TestValidateVersion(t *testing.T) {
	db := setupTestDB(t)
	fs := migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE t (id INTEGER);",
	})
	runner := NewRunner(db, fs, DialectSQLite)

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("expected valid version, got %v", err)
	}

	// Simulate a database written by a newer release.
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error for newer database schema")
	}
}
