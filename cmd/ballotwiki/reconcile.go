package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ballotwiki-backend/internal/service/user"
)

func newReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Recompute user edit counters from the edits table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUserService(cmd.Context(), func(ctx context.Context, svc *user.Service) error {
				n, err := svc.ReconcileCounters(ctx)
				if err != nil {
					return err
				}
				if n == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "All counters consistent.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Repaired counters for %d user(s).\n", n)
				return nil
			})
		},
	}
}
