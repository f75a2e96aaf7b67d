package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/user"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage contributor accounts",
	}
	cmd.AddCommand(newUsersCreateCmd())
	return cmd
}

func newUsersCreateCmd() *cobra.Command {
	var (
		name string
		role string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account and print its public id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUserService(cmd.Context(), func(ctx context.Context, svc *user.Service) error {
				u, err := svc.Create(ctx, user.CreateInput{
					Name: name,
					Role: domain.UserRole(strings.ToUpper(role)),
				})
				if err != nil {
					return fmt.Errorf("creating user: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", u.PublicID, u.Role, u.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleCommunity), "COMMUNITY, CANDIDATE, MODERATOR or ADMIN")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
