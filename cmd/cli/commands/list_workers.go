package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldops/om-dispatch/pkg/core/services"
)

// ListWorkersCmd creates the listWorkers command
func ListWorkersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listWorkers",
		Short: "List the roster with derived skill levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := services.ListWorkers(app.Ctx, app.Database, app.Cfg.SkillModel(), app.Logger)
			if err != nil {
				return fmt.Errorf("failed to list workers: %w", err)
			}

			fmt.Printf("\nFound %d workers:\n\n", len(summaries))
			for _, w := range summaries {
				flags := ""
				if w.HasVehicle {
					flags += " 🚗"
				}
				if w.NeedsGuidance {
					flags += " [needs guidance]"
				}
				fmt.Printf("- %s (%s) - %s - avg %.1f (%s)%s\n",
					w.Name,
					w.ID,
					w.EmploymentType,
					w.AvgSkill,
					w.SkillLevel,
					flags,
				)
			}

			return nil
		},
	}
}
