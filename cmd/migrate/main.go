package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"taskboard/infrastructure/postgres"
	"taskboard/pkg/config"
	"taskboard/pkg/di"
	"taskboard/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the taskboard database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(upCmd())
	rootCmd.AddCommand(downCmd())
	rootCmd.AddCommand(statusCmd())

	return rootCmd
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB) error {
				if err := postgres.Migrate(db); err != nil {
					return err
				}
				logger.Info("Migrations applied")
				return printStatus(cmd.OutOrStdout(), postgres.Status(db))
			})
		},
	}
}

func downCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back every migration in reverse order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB) error {
				if err := postgres.Rollback(db); err != nil {
					return err
				}
				logger.Info("Migrations rolled back")
				return printStatus(cmd.OutOrStdout(), postgres.Status(db))
			})
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which migrations are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB) error {
				return printStatus(cmd.OutOrStdout(), postgres.Status(db))
			})
		},
	}
}

func withDatabase(fn func(db *gorm.DB) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := di.InitLogger(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	db, err := di.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer postgres.Close(db)

	return fn(db)
}

func printStatus(w io.Writer, statuses []postgres.MigrationStatus) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MIGRATION\tTABLE\tSTATUS")
	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Table, state)
	}
	return tw.Flush()
}
