package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fieldops/om-dispatch/pkg/core/services"
)

// DefineJobCmd creates the defineJob command
func DefineJobCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defineJob",
		Short: "Create a new draft job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobTypeID, _ := cmd.Flags().GetString("type")
			title, _ := cmd.Flags().GetString("title")
			location, _ := cmd.Flags().GetString("location")
			address, _ := cmd.Flags().GetString("address")
			hours, _ := cmd.Flags().GetFloat64("hours")
			date, _ := cmd.Flags().GetString("date")
			notes, _ := cmd.Flags().GetString("notes")

			input := services.DefineJobInput{
				JobTypeID:       jobTypeID,
				Title:           title,
				LocationName:    location,
				LocationAddress: address,
				EstimatedHours:  hours,
				PreferredDate:   date,
				Notes:           notes,
			}

			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
				lat, _ := cmd.Flags().GetFloat64("lat")
				lon, _ := cmd.Flags().GetFloat64("lon")
				input.Latitude = &lat
				input.Longitude = &lon
			}

			app.Logger.Debug("defineJob command", zap.String("type", jobTypeID), zap.String("title", title))

			job, err := services.DefineJob(app.Ctx, app.Database, app.Logger, input)
			if err != nil {
				return fmt.Errorf("failed to define job: %w", err)
			}

			fmt.Printf("\n✅ Job created\n\n")
			fmt.Printf("ID:       %s\n", job.ID)
			fmt.Printf("Title:    %s\n", job.Title)
			fmt.Printf("Status:   %s\n", job.Status)
			fmt.Printf("Estimate: %.1f hours\n\n", job.EstimatedHours)

			return nil
		},
	}

	cmd.Flags().String("type", "", "Job type ID (required)")
	cmd.Flags().String("title", "", "Job title (required)")
	cmd.Flags().String("location", "", "Location name")
	cmd.Flags().String("address", "", "Location address")
	cmd.Flags().Float64("lat", 0, "Site latitude")
	cmd.Flags().Float64("lon", 0, "Site longitude")
	cmd.Flags().Float64("hours", 0, "Estimated hours (defaults to the job type's base time)")
	cmd.Flags().String("date", "", "Preferred date (YYYY-MM-DD)")
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("title")

	return cmd
}
