package main

import (
	"fmt"

	"recipebox/config"
	"recipebox/internal/errors"
	"recipebox/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Postgres schema for users, recipes and local credentials",
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator) error {
			return m.Down(steps)
		}),
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator) error {
				return m.Up()
			}),
		},
		downCmd,
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)

				return nil
			}),
		},
	)

	return migrateCmd
}

func withMigrator(run func(cmd *cobra.Command, m *postgres.Migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) (err error) {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if cfg.Migration == nil {
			return errors.New("migration section is missing from the config")
		}

		m, err := postgres.NewMigrator(cfg.Migration.DatabaseURL)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := m.Close(); err == nil {
				err = closeErr
			}
		}()

		return run(cmd, m)
	}
}
