package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Stevedee925/phoenix/internal/cli"
	"github.com/Stevedee925/phoenix/internal/logger"
	"github.com/Stevedee925/phoenix/internal/notifier"
	"github.com/Stevedee925/phoenix/internal/reminders"
)

// RemindCmd runs the reminder daemon: one-shot jobs for the active fast's
// milestones plus a per-minute check for due rituals. It keeps running until
// interrupted.
type RemindCmd struct {
	DryRun bool `help:"Print reminders to stdout instead of sending them."`
}

// stdoutSender is the --dry-run delivery path.
type stdoutSender struct{}

func (stdoutSender) Notify(title, text string) error {
	fmt.Printf("[DryRun] %s: %s\n", title, text)
	return nil
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.NotificationsEnabled && !c.DryRun {
		fmt.Println("Notifications are disabled in settings.")
		return nil
	}

	var sender reminders.Sender
	if c.DryRun {
		sender = stdoutSender{}
	} else {
		sender = notifier.New()
	}

	sched, err := reminders.NewScheduler(sender)
	if err != nil {
		return err
	}

	// Re-derive milestone jobs for a fast that was started by an earlier
	// phoenix invocation; past instants are skipped.
	active, err := ctx.Store.GetActiveSession()
	if err != nil {
		return fmt.Errorf("failed to load active session: %w", err)
	}
	if active != nil {
		if err := sched.ScheduleSessionReminders(*active); err != nil {
			return err
		}
		logger.Info("Scheduled fasting reminders", "session", active.ID)
	}

	if err := sched.WatchRituals(ctx.Store); err != nil {
		return err
	}

	sched.Start()
	fmt.Println("Reminder daemon running. Press Ctrl+C to stop.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	fmt.Println("Shutting down.")
	return sched.Shutdown()
}
