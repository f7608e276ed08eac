package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Stevedee925/phoenix/internal/cli"
	"github.com/Stevedee925/phoenix/internal/storage"
	"github.com/Stevedee925/phoenix/internal/storage/postgres"
	"github.com/Stevedee925/phoenix/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if c.Source != "" {
			if absDbPath, err := filepath.Abs(dbPath); err == nil {
				dbPath = absDbPath
			}
			if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			// Close before delete to avoid file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized phoenix storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	var sourceStore storage.Provider
	switch {
	case strings.HasPrefix(sourcePath, "postgres://"), strings.HasPrefix(sourcePath, "postgresql://"):
		if err := postgres.ValidateConnString(sourcePath); err != nil {
			return err
		}
		sourceStore = postgres.New(sourcePath)
	case strings.HasSuffix(sourcePath, ".json"):
		sourceStore = storage.NewJSONStore(sourcePath)
	default:
		sourceStore = sqlite.NewStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating profile...")
	user, err := sourceStore.GetUser()
	if err != nil {
		return fmt.Errorf("failed to get user from source: %w", err)
	}
	if user != nil {
		if err := ctx.Store.SaveUser(*user); err != nil {
			return fmt.Errorf("failed to save user to destination: %w", err)
		}
	}

	fmt.Println("  Migrating fasting sessions...")
	sessions, err := sourceStore.GetAllSessions()
	if err != nil {
		return fmt.Errorf("failed to get sessions from source: %w", err)
	}
	for _, session := range sessions {
		if err := ctx.Store.SaveSession(session); err != nil {
			return fmt.Errorf("failed to save session %s: %w", session.ID, err)
		}
	}
	fmt.Printf("    Migrated %d sessions\n", len(sessions))

	fmt.Println("  Migrating challenges...")
	challenges, err := sourceStore.GetAllChallenges()
	if err != nil {
		return fmt.Errorf("failed to get challenges from source: %w", err)
	}
	for _, challenge := range challenges {
		if err := ctx.Store.SaveChallenge(challenge); err != nil {
			return fmt.Errorf("failed to save challenge %s: %w", challenge.ID, err)
		}
	}
	fmt.Printf("    Migrated %d challenges\n", len(challenges))

	fmt.Println("  Migrating rituals...")
	rituals, err := sourceStore.GetAllRituals()
	if err != nil {
		return fmt.Errorf("failed to get rituals from source: %w", err)
	}
	for _, ritual := range rituals {
		if err := ctx.Store.SaveRitual(ritual); err != nil {
			return fmt.Errorf("failed to save ritual %s: %w", ritual.ID, err)
		}
	}
	fmt.Printf("    Migrated %d rituals\n", len(rituals))

	fmt.Println("  Migrating journal entries...")
	entries, err := sourceStore.GetAllJournalEntries()
	if err != nil {
		return fmt.Errorf("failed to get journal entries from source: %w", err)
	}
	for _, entry := range entries {
		if err := ctx.Store.SaveJournalEntry(entry); err != nil {
			return fmt.Errorf("failed to save journal entry %s: %w", entry.ID, err)
		}
	}
	fmt.Printf("    Migrated %d journal entries\n", len(entries))

	return nil
}
