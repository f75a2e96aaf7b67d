package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/ballotwiki-backend/internal/adapter/postgres"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  runMigrateUp,
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE:  runMigrateDown,
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			Args:  cobra.NoArgs,
			RunE:  runMigrateStatus,
		},
	)

	return cmd
}

func openMigrator(cmd *cobra.Command) (*postgres.Migrator, error) {
	d, err := resolveDSN()
	if err != nil {
		return nil, err
	}
	return postgres.NewMigrator(cmd.Context(), d)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	m, err := openMigrator(cmd)
	if err != nil {
		return err
	}
	defer m.Close()

	results, err := m.Up(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No pending migrations.")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(out, "applied %s (%s)\n", r.Source.Path, r.Duration)
	}
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	m, err := openMigrator(cmd)
	if err != nil {
		return err
	}
	defer m.Close()

	r, err := m.Down(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s (%s)\n", r.Source.Path, r.Duration)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	m, err := openMigrator(cmd)
	if err != nil {
		return err
	}
	defer m.Close()

	statuses, err := m.Status(cmd.Context())
	if err != nil {
		return err
	}

	return writeStatusTable(cmd.OutOrStdout(), statuses)
}

func writeStatusTable(w io.Writer, statuses []*goose.MigrationStatus) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return tw.Flush()
}
