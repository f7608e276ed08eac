package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Stevedee925/phoenix/internal/cli"
	"github.com/Stevedee925/phoenix/internal/cli/backups"
	"github.com/Stevedee925/phoenix/internal/cli/challenges"
	"github.com/Stevedee925/phoenix/internal/cli/fast"
	"github.com/Stevedee925/phoenix/internal/cli/journal"
	"github.com/Stevedee925/phoenix/internal/cli/profile"
	"github.com/Stevedee925/phoenix/internal/cli/rituals"
	"github.com/Stevedee925/phoenix/internal/cli/settings"
	"github.com/Stevedee925/phoenix/internal/cli/system"
	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/keyring"
	"github.com/Stevedee925/phoenix/internal/logger"
	"github.com/Stevedee925/phoenix/internal/storage"
	"github.com/Stevedee925/phoenix/internal/storage/postgres"
	"github.com/Stevedee925/phoenix/internal/storage/sqlite"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Database file path (.db for sqlite, .json for JSON storage)." type:"path" default:"~/.config/phoenix/phoenix.db"`
	Postgres bool   `help:"Use the PostgreSQL backend; the connection string comes from the OS keyring."`
	Debug    bool   `help:"Enable debug logging."`

	Init  system.InitCmd    `cmd:"" help:"Initialize phoenix storage."`
	Timer fast.FastTimerCmd `cmd:"" help:"Launch the live fasting timer." default:"1"`
	Fast  struct {
		Start   fast.FastStartCmd   `cmd:"" help:"Start a fast."`
		Status  fast.FastStatusCmd  `cmd:"" help:"Show the current fast." default:"1"`
		End     fast.FastEndCmd     `cmd:"" help:"End the current fast."`
		History fast.FastHistoryCmd `cmd:"" help:"List past fasts."`
		Timer   fast.FastTimerCmd   `cmd:"" help:"Launch the live fasting timer."`
	} `cmd:"" help:"Track fasting sessions."`
	Challenge struct {
		Add    challenges.ChallengeAddCmd    `cmd:"" help:"Add a new challenge."`
		List   challenges.ChallengeListCmd   `cmd:"" help:"List challenges." default:"1"`
		Show   challenges.ChallengeShowCmd   `cmd:"" help:"Show one challenge in detail."`
		Start  challenges.ChallengeStartCmd  `cmd:"" help:"Start (or restart) a challenge."`
		Done   challenges.ChallengeDoneCmd   `cmd:"" help:"Toggle a day's progress."`
		Delete challenges.ChallengeDeleteCmd `cmd:"" help:"Delete a challenge."`
	} `cmd:"" help:"Track multi-day challenges."`
	Ritual struct {
		Add    rituals.RitualAddCmd    `cmd:"" help:"Add a new ritual."`
		List   rituals.RitualListCmd   `cmd:"" help:"List rituals." default:"1"`
		Done   rituals.RitualDoneCmd   `cmd:"" help:"Toggle a day's progress."`
		Pause  rituals.RitualPauseCmd  `cmd:"" help:"Pause a ritual."`
		Resume rituals.RitualResumeCmd `cmd:"" help:"Resume a paused ritual."`
		Delete rituals.RitualDeleteCmd `cmd:"" help:"Delete a ritual."`
	} `cmd:"" help:"Track recurring rituals."`
	Journal struct {
		Add    journal.JournalAddCmd    `cmd:"" help:"Add a journal entry."`
		List   journal.JournalListCmd   `cmd:"" help:"List journal entries." default:"1"`
		Delete journal.JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
	} `cmd:"" help:"Keep a wellness journal."`
	Profile struct {
		Set  profile.ProfileSetCmd  `cmd:"" help:"Update the profile."`
		Show profile.ProfileShowCmd `cmd:"" help:"Show the profile." default:"1"`
	} `cmd:"" help:"Manage the user profile."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Remind   system.RemindCmd     `cmd:"" help:"Run the reminder daemon."`
	Notify   system.NotifyCmd     `cmd:"" hidden:"" help:"Send a test notification."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("phoenix"),
		kong.Description("Fasting, challenge, and ritual tracking companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := buildStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// init manages its own lifecycle and keyring commands never touch
	// storage; everything else needs a loaded store
	command := ctx.Command()
	if command != "init" && !strings.HasPrefix(command, "keyring") {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	appCtx := &cli.Context{Store: store}
	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildStore() (storage.Provider, error) {
	if CLI.Postgres {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return nil, fmt.Errorf("no PostgreSQL credentials available, store one with 'phoenix keyring set': %w", err)
		}
		return postgres.New(connStr), nil
	}
	if strings.HasSuffix(CLI.Config, ".json") {
		return storage.NewJSONStore(CLI.Config), nil
	}
	return sqlite.NewStore(CLI.Config), nil
}
