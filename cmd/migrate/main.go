// Command migrate applies the macrolog database schema.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"macrolog/config"
	logs "macrolog/internal/infra/log"
	"macrolog/internal/infra/persistence/postgres"
	"macrolog/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var timeout time.Duration

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Manage the macrolog database schema",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update all tables and indexes",
	Long: `Creates or updates the tables for users, profiles, daily logs, food entries,
meal plans, planned foods and custom foods, plus the case-insensitive unique
index on custom food names. Running it again is a no-op.`,
	Args: cobra.NoArgs,
	RunE: runUp,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Maximum time to connect and migrate")
	rootCmd.AddCommand(upCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runUp(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var (
		db     *gorm.DB
		logger *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build dependencies")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			logger.Warn("Failed to close database", slog.Any("error", err))
		}
	}()

	started := time.Now()
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	logger.Info("Schema is up to date", slog.String("took", util.FormatDuration(time.Since(started))))

	return nil
}
