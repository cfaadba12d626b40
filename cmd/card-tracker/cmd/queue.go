package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func queueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect the image processing queue",
	}

	cmd.AddCommand(queueStatusCmd())

	return cmd
}

func queueStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show queue depth and vision budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := newClient().GetQueueStatus(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(status)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Pending images:\t%d\n", status.PendingImages)
			if status.VisionCallsToday != nil {
				tw.writef("Vision calls today:\t%d\n", *status.VisionCallsToday)
			}
			if status.VisionCallsRemaining != nil {
				tw.writef("Vision calls remaining:\t%d\n", *status.VisionCallsRemaining)
			}
			if status.VisionBudgetResetAt != nil {
				tw.writef("Budget resets:\t%s\n", status.VisionBudgetResetAt.Format("2006-01-02 15:04:05 MST"))
			}
			return tw.finish()
		},
	}
}
