// Package challenges holds the challenge tracking commands.
package challenges

import (
	"fmt"
	"time"

	"github.com/Stevedee925/phoenix/internal/cli"
	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/tracker"
	"github.com/Stevedee925/phoenix/internal/utils"
)

type ChallengeAddCmd struct {
	Title        string `arg:"" help:"Challenge title."`
	Description  string `help:"What the challenge is about." default:""`
	Kind         string `help:"Challenge kind: fasting, custom, or ai-generated." enum:"fasting,custom,ai-generated" default:"custom"`
	Frequency    string `help:"Expected cadence: daily, weekly, or monthly." enum:"daily,weekly,monthly" default:"daily"`
	Days         int    `help:"Days required to complete the challenge." default:"0"`
	Duration     int    `help:"Challenge length in days; 0 leaves it open-ended." default:"0"`
	FastingHours int    `help:"Fast length in hours (fasting challenges)." default:"0"`
	FastingStyle string `help:"Fasting style: intermittent or omad." enum:"intermittent,omad," default:""`
	Trophy       string `help:"Trophy name awarded when the required days are done." default:""`
}

func (c *ChallengeAddCmd) Run(ctx *cli.Context) error {
	description := c.Description
	if description == "" {
		description = c.Title
	}

	challenge := models.Challenge{
		Title:        c.Title,
		Description:  description,
		Kind:         models.ChallengeKind(c.Kind),
		Frequency:    models.Frequency(c.Frequency),
		DaysRequired: c.Days,
		FastingHours: c.FastingHours,
		FastingStyle: models.FastingStyle(c.FastingStyle),
	}
	if c.Trophy != "" {
		challenge.Trophy = &models.Trophy{
			Name:        c.Trophy,
			Description: fmt.Sprintf("Awarded for completing %s", c.Title),
		}
	}

	created, err := ctx.Tracker().CreateChallenge(challenge, c.Duration, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("✓ Challenge created: %s [%s]\n", created.Title, cli.ShortID(created.ID))
	return nil
}

type ChallengeListCmd struct{}

func (c *ChallengeListCmd) Run(ctx *cli.Context) error {
	challenges, err := ctx.Tracker().ListChallenges()
	if err != nil {
		return err
	}
	if len(challenges) == 0 {
		fmt.Println("No challenges yet. Add one with 'phoenix challenge add'.")
		return nil
	}

	now := time.Now()
	for _, ch := range challenges {
		status := tracker.StatusOf(ch, now)
		trophy := ""
		if ch.Trophy != nil && ch.Trophy.Awarded {
			trophy = "  🏆"
		}
		fmt.Printf("  [%s] %-24s %s  %d done (%d%%)  %s%s\n",
			cli.ShortID(ch.ID), ch.Title, cli.FormatChallengeKind(ch),
			status.Completed, utils.Percentage(status.Ratio), status.RemainingLabel, trophy)
	}
	return nil
}

type ChallengeShowCmd struct {
	Challenge string `arg:"" help:"Challenge id or title."`
}

func (c *ChallengeShowCmd) Run(ctx *cli.Context) error {
	id, err := cli.ResolveChallengeID(ctx.Store, c.Challenge)
	if err != nil {
		return err
	}
	ch, err := ctx.Tracker().GetChallenge(id)
	if err != nil {
		return err
	}

	now := time.Now()
	status := tracker.StatusOf(ch, now)

	fmt.Printf("%s\n", ch.Title)
	fmt.Printf("  %s\n", ch.Description)
	fmt.Printf("  Kind:      %s\n", cli.FormatChallengeKind(ch))
	fmt.Printf("  Frequency: %s\n", ch.Frequency)
	fmt.Printf("  Started:   %s\n", utils.DayKey(ch.StartDate))
	fmt.Printf("  Status:    %s\n", status.RemainingLabel)
	if ch.DaysRequired > 0 {
		fmt.Printf("  Progress:  %d/%d days (%d%%)\n", status.Completed, ch.DaysRequired, utils.Percentage(status.Ratio))
	} else {
		fmt.Printf("  Progress:  %d days done\n", status.Completed)
	}
	if ch.Trophy != nil {
		awarded := "not yet awarded"
		if ch.Trophy.Awarded {
			awarded = "awarded 🏆"
		}
		fmt.Printf("  Trophy:    %s (%s)\n", ch.Trophy.Name, awarded)
	}

	for _, p := range ch.Progress {
		mark := "✗"
		if p.IsCompleted {
			mark = "✓"
		}
		fmt.Printf("    %s %s\n", mark, utils.DayKey(p.Date))
	}
	return nil
}

type ChallengeStartCmd struct {
	Challenge string `arg:"" help:"Challenge id or title."`
}

func (c *ChallengeStartCmd) Run(ctx *cli.Context) error {
	id, err := cli.ResolveChallengeID(ctx.Store, c.Challenge)
	if err != nil {
		return err
	}

	ch, err := ctx.Tracker().StartChallenge(id, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("✓ Challenge started: %s\n", ch.Title)
	if ch.Kind == models.ChallengeFasting {
		fmt.Printf("  A %dh fast is now running.\n", ch.FastingHours)
	}
	return nil
}

type ChallengeDoneCmd struct {
	Challenge string `arg:"" help:"Challenge id or title."`
	Date      string `help:"Day to toggle (YYYY-MM-DD); defaults to today."`
}

func (c *ChallengeDoneCmd) Run(ctx *cli.Context) error {
	id, err := cli.ResolveChallengeID(ctx.Store, c.Challenge)
	if err != nil {
		return err
	}

	dateMs, err := cli.ParseDayFlag(c.Date)
	if err != nil {
		return err
	}

	before, err := ctx.Tracker().GetChallenge(id)
	if err != nil {
		return err
	}
	hadTrophy := before.Trophy != nil && before.Trophy.Awarded

	ch, err := ctx.Tracker().ToggleChallengeProgress(id, dateMs)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Toggled %s for %s (%d days done)\n", utils.DayKey(dateMs), ch.Title, ch.CompletedDays())
	if !hadTrophy && ch.Trophy != nil && ch.Trophy.Awarded {
		fmt.Printf("🏆 Trophy awarded: %s\n", ch.Trophy.Name)
	}
	return nil
}

type ChallengeDeleteCmd struct {
	Challenge string `arg:"" help:"Challenge id or title."`
}

func (c *ChallengeDeleteCmd) Run(ctx *cli.Context) error {
	id, err := cli.ResolveChallengeID(ctx.Store, c.Challenge)
	if err != nil {
		return err
	}
	if err := ctx.Tracker().DeleteChallenge(id); err != nil {
		return err
	}
	fmt.Println("✓ Challenge deleted.")
	return nil
}
