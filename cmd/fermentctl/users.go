package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/CWiesbaum/raugupatis-log/internal/app"
	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/internal/service/user"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Manage users"}
	cmd.AddCommand(usersCreateCmd())
	cmd.AddCommand(usersShowCmd())
	cmd.AddCommand(usersSetUnitCmd())
	return cmd
}

func usersCreateCmd() *cobra.Command {
	var unit string
	cmd := &cobra.Command{
		Use:   "create <email>",
		Short: "Register a user and print its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				u, err := a.Users.CreateUser(ctx, user.CreateUserInput{
					Email:         args[0],
					PreferredUnit: optionalString(cmd, "unit", unit),
				})
				if err != nil {
					return err
				}
				if flags.json {
					return printJSON(cmd.OutOrStdout(), u)
				}
				renderUser(cmd.OutOrStdout(), u)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "", "preferred temperature unit (fahrenheit, celsius)")
	return cmd
}

func usersShowCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the acting user, or look one up by --email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				var (
					u   *domain.User
					err error
				)
				if email != "" {
					u, err = a.Users.FindByEmail(ctx, email)
				} else {
					u, err = a.Users.GetSettings(ctx)
				}
				if err != nil {
					return err
				}
				if flags.json {
					return printJSON(cmd.OutOrStdout(), u)
				}
				renderUser(cmd.OutOrStdout(), u)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "look up a user by email")
	return cmd
}

func usersSetUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-unit <fahrenheit|celsius>",
		Short: "Change the acting user's preferred temperature unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				u, err := a.Users.UpdateSettings(ctx, user.UpdateSettingsInput{PreferredUnit: args[0]})
				if err != nil {
					return err
				}
				if flags.json {
					return printJSON(cmd.OutOrStdout(), u)
				}
				renderUser(cmd.OutOrStdout(), u)
				return nil
			})
		},
	}
}
