package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListJobsCmd creates the listJobs command
func ListJobsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listJobs",
		Short: "List jobs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")

			jobs, err := app.Database.GetJobs(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}

			count := 0
			for _, job := range jobs {
				if status != "" && job.Status != status {
					continue
				}
				count++
				dateInfo := ""
				if job.PreferredDate != "" {
					dateInfo = fmt.Sprintf(" - preferred %s", job.PreferredDate)
				}
				fmt.Printf("- %s [%s] %s (%s)%s\n", job.ID, job.Status, job.Title, job.JobTypeID, dateInfo)
			}

			fmt.Printf("\n%d jobs\n", count)
			return nil
		},
	}

	cmd.Flags().String("status", "", "Only show jobs with this status")

	return cmd
}
