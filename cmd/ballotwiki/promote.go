package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/user"
)

func newPromoteCmd() *cobra.Command {
	var (
		publicID string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Set a user's role",
		Long:  "Sets the role of the user with the given public id. Used to bootstrap the first moderators.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUserService(cmd.Context(), func(ctx context.Context, svc *user.Service) error {
				u, err := svc.SetRole(ctx, user.SetRoleInput{
					PublicID: strings.TrimSpace(publicID),
					Role:     domain.UserRole(strings.ToUpper(role)),
				})
				if err != nil {
					return fmt.Errorf("promoting %s: %w", publicID, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "User %s is now %s.\n", u.PublicID, u.Role)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&publicID, "public-id", "", "public id of the user (required)")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleModerator), "role to assign")
	_ = cmd.MarkFlagRequired("public-id")

	return cmd
}
