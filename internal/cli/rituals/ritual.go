// Package rituals holds the ritual tracking commands.
package rituals

import (
	"fmt"

	"github.com/Stevedee925/phoenix/internal/cli"
	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/tracker"
	"github.com/Stevedee925/phoenix/internal/utils"
)

type RitualAddCmd struct {
	Title       string `arg:"" help:"Ritual title."`
	Time        string `help:"Time of day (HH:MM)." required:""`
	Days        string `help:"Comma-separated weekdays, e.g. mon,wed,fri." required:""`
	Description string `help:"What the ritual involves." default:""`
}

func (c *RitualAddCmd) Run(ctx *cli.Context) error {
	days, err := utils.ParseWeekdays(c.Days)
	if err != nil {
		return err
	}

	description := c.Description
	if description == "" {
		description = c.Title
	}

	r, err := ctx.Tracker().CreateRitual(models.Ritual{
		Title:       c.Title,
		Description: description,
		Time:        c.Time,
		Days:        days,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Ritual created: %s at %s on %s [%s]\n",
		r.Title, r.Time, utils.FormatWeekdays(r.Days), cli.ShortID(r.ID))
	return nil
}

type RitualListCmd struct{}

func (c *RitualListCmd) Run(ctx *cli.Context) error {
	rituals, err := ctx.Tracker().ListRituals()
	if err != nil {
		return err
	}
	if len(rituals) == 0 {
		fmt.Println("No rituals yet. Add one with 'phoenix ritual add'.")
		return nil
	}

	for _, r := range rituals {
		state := ""
		if !r.IsActive {
			state = "  (paused)"
		}
		fmt.Printf("  [%s] %-24s %s %s  %d%% adherence%s\n",
			cli.ShortID(r.ID), r.Title, r.Time, utils.FormatWeekdays(r.Days),
			tracker.RitualAdherence(r), state)
	}
	return nil
}

type RitualDoneCmd struct {
	Ritual string `arg:"" help:"Ritual id or title."`
	Date   string `help:"Day to toggle (YYYY-MM-DD); defaults to today."`
}

func (c *RitualDoneCmd) Run(ctx *cli.Context) error {
	id, err := cli.ResolveRitualID(ctx.Store, c.Ritual)
	if err != nil {
		return err
	}

	dateMs, err := cli.ParseDayFlag(c.Date)
	if err != nil {
		return err
	}

	r, err := ctx.Tracker().ToggleRitualProgress(id, dateMs)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Toggled %s for %s (%d%% adherence)\n",
		utils.DayKey(dateMs), r.Title, tracker.RitualAdherence(r))
	return nil
}

type RitualPauseCmd struct {
	Ritual string `arg:"" help:"Ritual id or title."`
}

func (c *RitualPauseCmd) Run(ctx *cli.Context) error {
	return setActive(ctx, c.Ritual, false)
}

type RitualResumeCmd struct {
	Ritual string `arg:"" help:"Ritual id or title."`
}

func (c *RitualResumeCmd) Run(ctx *cli.Context) error {
	return setActive(ctx, c.Ritual, true)
}

func setActive(ctx *cli.Context, ref string, active bool) error {
	id, err := cli.ResolveRitualID(ctx.Store, ref)
	if err != nil {
		return err
	}

	r, err := ctx.Tracker().SetRitualActive(id, active)
	if err != nil {
		return err
	}

	if active {
		fmt.Printf("✓ Ritual resumed: %s\n", r.Title)
	} else {
		fmt.Printf("✓ Ritual paused: %s\n", r.Title)
	}
	return nil
}

type RitualDeleteCmd struct {
	Ritual string `arg:"" help:"Ritual id or title."`
}

func (c *RitualDeleteCmd) Run(ctx *cli.Context) error {
	id, err := cli.ResolveRitualID(ctx.Store, c.Ritual)
	if err != nil {
		return err
	}
	if err := ctx.Tracker().DeleteRitual(id); err != nil {
		return err
	}
	fmt.Println("✓ Ritual deleted.")
	return nil
}
