package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fieldops/om-dispatch/pkg/core/services"
	"github.com/fieldops/om-dispatch/pkg/db"
)

// ConfirmCmd creates the confirm command
func ConfirmCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm <job-id>",
		Short: "Confirm a ranked recommendation as the job's assignment",
		Long:  "Re-rank teams for the job, pick a recommendation by rank, and persist it as a confirmed assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID := args[0]
			rank, _ := cmd.Flags().GetInt("rank")
			manual, _ := cmd.Flags().GetBool("manual")

			app.Logger.Debug("confirm command",
				zap.String("job_id", jobID),
				zap.Int("rank", rank))

			result, err := services.RecommendTeams(app.Ctx, app.Database, app.Cfg, app.Logger, jobID, nil)
			if err != nil {
				return fmt.Errorf("ranking failed: %w", err)
			}

			if rank < 1 || rank > len(result.Recommendations) {
				return fmt.Errorf("rank %d out of range: job has %d recommendations", rank, len(result.Recommendations))
			}
			chosen := result.Recommendations[rank-1]

			method := db.SelectionAIRecommended
			if manual {
				method = db.SelectionManual
			}

			assignment, err := services.ConfirmAssignment(app.Ctx, app.Database, app.Logger,
				jobID, chosen, method)
			if err != nil {
				return fmt.Errorf("confirmation failed: %w", err)
			}

			names := make([]string, len(chosen.Team))
			for i, member := range chosen.Team {
				names[i] = member.Name
			}

			fmt.Printf("\n✅ Assignment confirmed\n\n")
			fmt.Printf("Assignment: %s\n", assignment.ID)
			fmt.Printf("Job:        %s\n", jobID)
			fmt.Printf("Team:       %s\n", strings.Join(names, ", "))
			fmt.Printf("Lead:       %s\n", chosen.LeadCandidate.Name)
			fmt.Printf("Vehicles:   %s\n", chosen.VehicleDetail)
			if assignment.IsStretch {
				fmt.Printf("Note:       ⚠️  stretch assignment (%.0f%% of skill requirement)\n", chosen.StretchRatio*100)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("rank", 1, "Which recommendation to confirm (1 = best)")
	cmd.Flags().Bool("manual", false, "Record the selection as a manual override")

	return cmd
}
