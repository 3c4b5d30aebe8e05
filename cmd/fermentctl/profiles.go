package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CWiesbaum/raugupatis-log/internal/app"
	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/internal/service/profile"
)

func profilesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "profiles", Short: "Manage fermentation profiles"}
	cmd.AddCommand(profilesListCmd())
	cmd.AddCommand(profilesImportCmd())
	cmd.AddCommand(profilesCreateCmd())
	cmd.AddCommand(profilesCopyCmd())
	cmd.AddCommand(profilesSetActiveCmd("activate", true))
	cmd.AddCommand(profilesSetActiveCmd("deactivate", false))
	return cmd
}

func profilesListCmd() *cobra.Command {
	var (
		all  bool
		unit string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List profiles available for new batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				list := a.Profiles.ListActive
				if all {
					list = a.Profiles.ListAll
				}
				profiles, err := list(ctx)
				if err != nil {
					return err
				}
				if flags.json {
					return printJSON(cmd.OutOrStdout(), profiles)
				}
				renderProfiles(cmd.OutOrStdout(), profiles, displayUnit(ctx, a, unit))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include deactivated profiles")
	cmd.Flags().StringVar(&unit, "unit", "", "display unit (fahrenheit, celsius)")
	return cmd
}

func profilesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml|->",
		Short: "Create profiles from a YAML catalog, skipping existing names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open catalog: %w", err)
				}
				defer f.Close()
				r = f
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				res, err := a.Profiles.Import(ctx, r)
				if err != nil {
					return err
				}
				if flags.json {
					return printJSON(cmd.OutOrStdout(), res)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "created %d, skipped %d\n", len(res.Created), len(res.Skipped))
				for _, name := range res.Skipped {
					fmt.Fprintf(out, "  skipped %q: already exists\n", name)
				}
				return nil
			})
		},
	}
}

func profilesCreateCmd() *cobra.Command {
	var (
		in          profile.CreateProfileInput
		unit        string
		description string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Unit = optionalString(cmd, "unit", unit)
			in.Description = optionalString(cmd, "description", description)
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				p, err := a.Profiles.Create(ctx, in)
				if err != nil {
					return err
				}
				return printProfile(ctx, cmd, a, p)
			})
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "profile name")
	cmd.Flags().StringVar(&in.Type, "type", "", "fermentation type, e.g. kombucha")
	cmd.Flags().IntVar(&in.MinDays, "min-days", 0, "minimum duration in days")
	cmd.Flags().IntVar(&in.MaxDays, "max-days", 0, "maximum duration in days")
	cmd.Flags().Float64Var(&in.TempMin, "temp-min", 0, "lowest expected temperature")
	cmd.Flags().Float64Var(&in.TempMax, "temp-max", 0, "highest expected temperature")
	cmd.Flags().StringVar(&unit, "unit", "", "unit of --temp-min/--temp-max (default fahrenheit)")
	cmd.Flags().StringVar(&description, "description", "", "description")
	return cmd
}

func profilesCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <profile-id> <new-name>",
		Short: "Duplicate a profile under a new name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				p, err := a.Profiles.Copy(ctx, profile.CopyProfileInput{SourceID: id, NewName: args[1]})
				if err != nil {
					return err
				}
				return printProfile(ctx, cmd, a, p)
			})
		},
	}
}

func profilesSetActiveCmd(use string, active bool) *cobra.Command {
	short := "Make a profile available for new batches"
	if !active {
		short = "Hide a profile from new batches"
	}
	return &cobra.Command{
		Use:   use + " <profile-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if err := a.Profiles.SetActive(ctx, id, active); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "profile %d %sd\n", id, use)
				return nil
			})
		},
	}
}

func printProfile(ctx context.Context, cmd *cobra.Command, a *app.App, p *domain.Profile) error {
	if flags.json {
		return printJSON(cmd.OutOrStdout(), p)
	}
	renderProfiles(cmd.OutOrStdout(), []domain.Profile{*p}, displayUnit(ctx, a, ""))
	return nil
}

// displayUnit resolves the unit for output: the explicit flag, then the
// acting user's preference, then the configured default.
func displayUnit(ctx context.Context, a *app.App, raw string) domain.TemperatureUnit {
	if u, err := domain.ParseTemperatureUnit(raw); err == nil {
		return u
	}
	if u, err := a.Users.GetSettings(ctx); err == nil && u.PreferredTempUnit.IsValid() {
		return u.PreferredTempUnit
	}
	if u, err := domain.ParseTemperatureUnit(a.Config.Fermentation.DefaultTempUnit); err == nil {
		return u
	}
	return domain.TemperatureUnitFahrenheit
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
