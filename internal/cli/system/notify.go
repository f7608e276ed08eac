package system

import (
	"fmt"

	"github.com/Stevedee925/phoenix/internal/cli"
	"github.com/Stevedee925/phoenix/internal/notifier"
)

// NotifyCmd sends a one-off notification through the tray helper. Used to
// verify the notification path is working.
type NotifyCmd struct {
	Title string `arg:"" help:"Notification title."`
	Text  string `arg:"" help:"Notification body."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		fmt.Println("Notifications are disabled in settings.")
		return nil
	}

	if err := notifier.New().Notify(c.Title, c.Text); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	fmt.Println("✓ Notification sent")
	return nil
}
