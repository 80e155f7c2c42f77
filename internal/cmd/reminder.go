package cmd

import (
	"fmt"
	"os"

	"weighttrend/internal/app"
	"weighttrend/internal/domain"

	"github.com/spf13/cobra"
)

var reminderICS string

var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Show today's weigh-in reminder or export it as a calendar event",
	RunE:  runReminder,
}

func init() {
	rootCmd.AddCommand(reminderCmd)

	reminderCmd.Flags().StringVar(&reminderICS, "ics", "", "Write a weekly Sunday reminder to this .ics file instead")
}

func runReminder(cmd *cobra.Command, args []string) error {
	today := domain.Today()
	out := cmd.OutOrStdout()

	if reminderICS != "" {
		if err := os.WriteFile(reminderICS, app.ReminderCalendar(today), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(out, "calendar reminder written to %s\n", reminderICS)
		return nil
	}

	svc, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.close() }()

	ov, err := svc.metrics.Overview(cmd.Context(), today)
	if err != nil {
		return err
	}
	if ov.Reminder == nil {
		fmt.Fprintln(out, "nothing to do, your log is up to date")
		return nil
	}
	fmt.Fprintln(out, ov.Reminder.Message)
	return nil
}
