package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fieldops/om-dispatch/cmd/cli/commands"
	"github.com/fieldops/om-dispatch/internal/config"
	"github.com/fieldops/om-dispatch/pkg/postgres"
	"github.com/fieldops/om-dispatch/pkg/utils/logging"
)

var (
	env string
	app = &commands.AppContext{Ctx: context.Background()}
	pg  *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "om-dispatch",
		Short: "O&M Dispatch CLI - Assign field-service teams to jobs",
		Long:  `A CLI tool for managing the field-service roster, defining jobs, and ranking candidate teams for dispatch.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if pg != nil {
				pg.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (test, prod, etc.)")

	// Add all commands
	rootCmd.AddCommand(commands.DispatchCmd(app))
	rootCmd.AddCommand(commands.ConfirmCmd(app))
	rootCmd.AddCommand(commands.ListWorkersCmd(app))
	rootCmd.AddCommand(commands.DefineJobCmd(app))
	rootCmd.AddCommand(commands.ListJobsCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, configuration, and database
func initApp() error {
	var err error

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Info("Connecting to database")
	pg, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pg.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = pg
	app.Logger.Debug("Database initialized successfully")

	return nil
}
