// Package journal holds the journaling commands.
package journal

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Stevedee925/phoenix/internal/cli"
	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/utils"
)

type JournalAddCmd struct {
	Title   string `arg:"" help:"Entry title."`
	Content string `arg:"" help:"Entry body."`
	Mood    string `help:"How you're feeling." default:""`
	Tags    string `help:"Comma-separated tags." default:""`
	Date    string `help:"Entry day (YYYY-MM-DD); defaults to today."`
}

func (c *JournalAddCmd) Run(ctx *cli.Context) error {
	dateMs, err := cli.ParseDayFlag(c.Date)
	if err != nil {
		return err
	}

	var tags []string
	for _, t := range strings.Split(c.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	entry := models.JournalEntry{
		ID:      uuid.NewString(),
		Date:    dateMs,
		Title:   c.Title,
		Content: c.Content,
		Mood:    c.Mood,
		Tags:    tags,
	}
	if err := ctx.Store.SaveJournalEntry(entry); err != nil {
		return fmt.Errorf("failed to save journal entry: %w", err)
	}

	fmt.Printf("✓ Journal entry added for %s\n", utils.DayKey(dateMs))
	return nil
}

type JournalListCmd struct {
	Limit int `help:"Maximum entries to show." default:"10"`
}

func (c *JournalListCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetAllJournalEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No journal entries yet.")
		return nil
	}

	shown := entries
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}
	for _, e := range shown {
		mood := ""
		if e.Mood != "" {
			mood = fmt.Sprintf("  [%s]", e.Mood)
		}
		fmt.Printf("%s  %s%s\n", utils.DayKey(e.Date), e.Title, mood)
		fmt.Printf("    %s\n", e.Content)
		if len(e.Tags) > 0 {
			fmt.Printf("    #%s\n", strings.Join(e.Tags, " #"))
		}
	}
	return nil
}

type JournalDeleteCmd struct {
	ID string `arg:"" help:"Entry id."`
}

func (c *JournalDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteJournalEntry(c.ID); err != nil {
		return err
	}
	fmt.Println("✓ Journal entry deleted.")
	return nil
}
