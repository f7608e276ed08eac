// Package profile holds the user profile commands.
package profile

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Stevedee925/phoenix/internal/cli"
	"github.com/Stevedee925/phoenix/internal/models"
)

type ProfileSetCmd struct {
	Name         string   `help:"Display name."`
	Email        string   `help:"Email address."`
	Age          *int     `help:"Age in years."`
	Weight       *float64 `help:"Weight in kilograms."`
	Height       *float64 `help:"Height in centimeters."`
	FitnessLevel string   `help:"Fitness level: beginner, intermediate, or advanced." enum:"beginner,intermediate,advanced," default:""`
	Goals        string   `help:"Comma-separated wellness goals."`
	ActiveDays   *int     `help:"Active days per week."`
}

func (c *ProfileSetCmd) Run(ctx *cli.Context) error {
	user, err := ctx.Store.GetUser()
	if err != nil {
		return err
	}
	if user == nil {
		user = &models.User{ID: uuid.NewString()}
	}

	if c.Name != "" {
		user.Name = c.Name
	}
	if c.Email != "" {
		user.Email = c.Email
	}

	needsStats := c.Age != nil || c.Weight != nil || c.Height != nil ||
		c.FitnessLevel != "" || c.Goals != "" || c.ActiveDays != nil
	if needsStats && user.Stats == nil {
		user.Stats = &models.UserStats{}
	}
	if c.Age != nil {
		user.Stats.Age = *c.Age
	}
	if c.Weight != nil {
		user.Stats.WeightKg = *c.Weight
	}
	if c.Height != nil {
		user.Stats.HeightCm = *c.Height
	}
	if c.FitnessLevel != "" {
		user.Stats.FitnessLevel = models.FitnessLevel(c.FitnessLevel)
	}
	if c.Goals != "" {
		var goals []string
		for _, g := range strings.Split(c.Goals, ",") {
			if g = strings.TrimSpace(g); g != "" {
				goals = append(goals, g)
			}
		}
		user.Stats.Goals = goals
	}
	if c.ActiveDays != nil {
		user.Stats.WeeklyActivityLevel = *c.ActiveDays
	}

	if err := ctx.Store.SaveUser(*user); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Println("✓ Profile updated.")
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	user, err := ctx.Store.GetUser()
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("No profile yet. Create one with 'phoenix profile set --name <name>'.")
		return nil
	}

	fmt.Printf("Name:  %s\n", user.Name)
	if user.Email != "" {
		fmt.Printf("Email: %s\n", user.Email)
	}
	if s := user.Stats; s != nil {
		if s.Age > 0 {
			fmt.Printf("Age:    %d\n", s.Age)
		}
		if s.WeightKg > 0 {
			fmt.Printf("Weight: %.1f kg\n", s.WeightKg)
		}
		if s.HeightCm > 0 {
			fmt.Printf("Height: %.1f cm\n", s.HeightCm)
		}
		if s.FitnessLevel != "" {
			fmt.Printf("Level:  %s\n", s.FitnessLevel)
		}
		if len(s.Goals) > 0 {
			fmt.Printf("Goals:  %s\n", strings.Join(s.Goals, ", "))
		}
		if s.WeeklyActivityLevel > 0 {
			fmt.Printf("Active: %d days/week\n", s.WeeklyActivityLevel)
		}
	}
	return nil
}
