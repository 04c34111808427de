package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rendezvous/internal/app"
	"rendezvous/internal/notifications"
)

func newTestNotifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Send a test notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				if a.Config.Notifications.NtfyTopic == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Notifications disabled (no ntfy_topic configured)")
					return nil
				}
				if err := a.Notifier.Publish(c, notifications.EventTest, nil); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Test notification sent")
				return nil
			})
		},
	}
}
