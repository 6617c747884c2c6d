package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Notification maintenance",
}

var purgeOlderThan time.Duration

var notificationsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete notifications older than the retention",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		age := purgeOlderThan
		if age == 0 {
			age = cfg.Notifications.Retention
		}

		svcs, closeFn, err := maintenanceServices(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer closeFn()

		n, err := svcs.Notifications.PurgeOlderThan(cmd.Context(), age)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d notifications older than %s\n", n, age)
		return nil
	},
}

func init() {
	notificationsPurgeCmd.Flags().DurationVar(&purgeOlderThan, "older-than", 0, "age cutoff (default notifications.retention)")
	notificationsCmd.AddCommand(notificationsPurgeCmd)
}
