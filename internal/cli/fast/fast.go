// Package fast holds the fasting session commands.
package fast

import (
	"errors"
	"fmt"
	"time"

	"github.com/Stevedee925/phoenix/internal/cli"
	"github.com/Stevedee925/phoenix/internal/fasting"
	"github.com/Stevedee925/phoenix/internal/tui"
	"github.com/Stevedee925/phoenix/internal/utils"
)

type FastStartCmd struct {
	Hours int `arg:"" optional:"" help:"Target fast length in hours. Defaults to the configured fasting window."`
}

func (c *FastStartCmd) Run(ctx *cli.Context) error {
	hours := c.Hours
	if hours == 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		hours = settings.DefaultFastingHours
	}

	session, err := ctx.Fasting().Start(hours, time.Now())
	if err != nil {
		if errors.Is(err, fasting.ErrSessionActive) {
			return fmt.Errorf("a fast is already running, end it first with 'phoenix fast end'")
		}
		return err
	}

	fmt.Printf("✓ Started a %dh fast. Target: %s\n", hours, session.TargetEnd().Local().Format("Mon 15:04"))
	return nil
}

type FastStatusCmd struct{}

func (c *FastStatusCmd) Run(ctx *cli.Context) error {
	status, err := ctx.Fasting().Tick(time.Now())
	if err != nil {
		return err
	}
	if status == nil {
		fmt.Println("No fast in progress. Start one with 'phoenix fast start'.")
		return nil
	}

	if !status.Session.Active() {
		fmt.Println("🎉 Fast complete! Congratulations.")
		return nil
	}

	fmt.Printf("Fasting for %s of %dh (%d%%)\n",
		utils.FormatClock(status.ElapsedMs), status.Session.TargetHours(), status.Percent)
	fmt.Printf("Remaining: %s (until %s)\n",
		utils.FormatClock(status.RemainingMs), status.Session.TargetEnd().Local().Format("Mon 15:04"))
	return nil
}

type FastEndCmd struct{}

func (c *FastEndCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Fasting().End(time.Now())
	if err != nil {
		if errors.Is(err, fasting.ErrNoActiveSession) {
			return fmt.Errorf("no fast in progress")
		}
		return err
	}

	elapsed := *session.EndTime - session.StartTime
	if session.IsCompleted {
		fmt.Printf("🎉 Fast completed after %s. Well done!\n", utils.FormatClock(elapsed))
	} else {
		fmt.Printf("Fast ended early after %s of a %dh target.\n",
			utils.FormatClock(elapsed), session.TargetHours())
	}
	return nil
}

type FastHistoryCmd struct {
	Limit int `help:"Maximum sessions to show." default:"10"`
}

func (c *FastHistoryCmd) Run(ctx *cli.Context) error {
	sessions, err := ctx.Fasting().History()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No fasting history yet.")
		return nil
	}

	completed := 0
	for _, s := range sessions {
		if s.IsCompleted {
			completed++
		}
	}
	fmt.Printf("Fasting history (%d total, %d completed):\n\n", len(sessions), completed)

	shown := sessions
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}
	for _, s := range shown {
		fmt.Printf("  %s\n", cli.FormatSession(s))
	}
	return nil
}

type FastTimerCmd struct{}

func (c *FastTimerCmd) Run(ctx *cli.Context) error {
	// Automatic backup on timer startup
	ctx.PerformAutomaticBackup()

	return tui.RunTimer(ctx.Store)
}
