package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Appointment reminders",
}

var reminderWindow time.Duration

var remindersSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Notify owners of approved appointments starting within the window",
	Long:  `Pensado para cron. Cada turno se recuerda una sola vez aunque el comando corra seguido.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		window := reminderWindow
		if window == 0 {
			window = cfg.Clinic.ReminderWindow
		}

		svcs, closeFn, err := maintenanceServices(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer closeFn()

		n, err := svcs.Appointments.SendReminders(cmd.Context(), window)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sent %d reminders (window %s)\n", n, window)
		return nil
	},
}

func init() {
	remindersSendCmd.Flags().DurationVar(&reminderWindow, "window", 0, "look-ahead window (default clinic.reminder_window)")
	remindersCmd.AddCommand(remindersSendCmd)
}
