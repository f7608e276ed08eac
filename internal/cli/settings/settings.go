// Package settings holds the application settings command.
package settings

import (
	"fmt"
	"time"

	"github.com/Stevedee925/phoenix/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	NotificationsEnabled *bool  `help:"Enable or disable notifications."`
	FastingHours         *int   `help:"Default fast length in hours."`
	Timezone             string `help:"IANA timezone name, or 'Local'."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Default Fasting Hours: %d\n", settings.DefaultFastingHours)
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		return nil
	}

	updated := false
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.FastingHours != nil {
		if *c.FastingHours <= 0 {
			return fmt.Errorf("fasting hours must be positive")
		}
		settings.DefaultFastingHours = *c.FastingHours
		updated = true
	}
	if c.Timezone != "" {
		if c.Timezone != "Local" {
			if _, err := time.LoadLocation(c.Timezone); err != nil {
				return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
			}
		}
		settings.Timezone = c.Timezone
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
