package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fieldops/om-dispatch/pkg/core/dispatch"
	"github.com/fieldops/om-dispatch/pkg/core/services"
)

// DispatchCmd creates the dispatch command
func DispatchCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dispatch <job-id>",
		Short: "Rank candidate teams for a job",
		Long:  "Enumerate and score candidate teams for a job, printing the top recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID := args[0]
			available, _ := cmd.Flags().GetStringSlice("available")

			app.Logger.Debug("dispatch command",
				zap.String("job_id", jobID),
				zap.Strings("available", available))

			var filter []string
			if cmd.Flags().Changed("available") {
				filter = available
			}

			result, err := services.RecommendTeams(app.Ctx, app.Database, app.Cfg, app.Logger, jobID, filter)
			if err != nil {
				return fmt.Errorf("dispatch failed: %w", err)
			}

			fmt.Printf("\n🎯 Team Recommendations\n\n")
			fmt.Printf("Job:        %s (%s)\n", result.JobTitle, result.JobID)
			fmt.Printf("Job Type:   %s\n", result.JobTypeName)
			fmt.Printf("Roster:     %d workers\n\n", result.RosterSize)

			if len(result.Recommendations) == 0 {
				fmt.Println("No feasible teams found for this job.")
				return nil
			}

			for _, rec := range result.Recommendations {
				printRecommendation(rec)
			}

			return nil
		},
	}

	cmd.Flags().StringSlice("available", nil, "Restrict the roster to these worker IDs (comma-separated)")

	return cmd
}

// printRecommendation renders one ranked team to stdout
func printRecommendation(rec dispatch.Recommendation) {
	names := make([]string, len(rec.Team))
	for i, member := range rec.Team {
		names[i] = member.Name
	}

	stretchNote := ""
	if rec.IsStretch {
		stretchNote = fmt.Sprintf("  ⚠️  stretch (%.0f%% of requirement)", rec.StretchRatio*100)
	}

	fmt.Printf("#%d  %s — score %.2f%s\n", rec.Rank, strings.Join(names, ", "), rec.Score, stretchNote)
	fmt.Printf("    lead: %s  vehicles: %s\n", rec.LeadCandidate.Name, rec.VehicleDetail)
	fmt.Printf("    skill %.2f | availability %.2f | travel %.2f | leadership %.1f | guidance %.1f\n",
		rec.Breakdown.Skill,
		rec.Breakdown.Availability,
		rec.Breakdown.Travel,
		rec.Breakdown.Leadership,
		rec.Breakdown.Guidance)

	for _, pair := range rec.MentoringPairs {
		if pair.Mentor != nil {
			fmt.Printf("    mentoring: %s → %s\n", pair.Mentor.Name, pair.Junior.Name)
		} else {
			fmt.Printf("    mentoring: ⚠️  no eligible mentor for %s\n", pair.Junior.Name)
		}
	}

	fmt.Println()
}
