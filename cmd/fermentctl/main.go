// Command fermentctl tracks fermentation batches from the terminal.
//
// Configuration comes from config.yaml (or CONFIG_PATH) and the environment;
// an optional .env file is read first. Batch commands act for the user given
// with --user.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/CWiesbaum/raugupatis-log/internal/app"
	"github.com/CWiesbaum/raugupatis-log/internal/config"
	"github.com/CWiesbaum/raugupatis-log/pkg/ctxutil"
)

type globalFlags struct {
	user string
	json bool
}

var flags globalFlags

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describeError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fermentctl",
		Short:         "Track fermentation batches",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.user, "user", "u", os.Getenv("FERMENT_USER"), "acting user id (defaults to $FERMENT_USER)")
	root.PersistentFlags().BoolVar(&flags.json, "json", false, "output JSON")

	root.AddCommand(migrateCmd())
	root.AddCommand(usersCmd())
	root.AddCommand(profilesCmd())
	root.AddCommand(batchesCmd())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}

// withApp loads configuration, connects, and runs fn with a context that
// carries the acting user when --user is set.
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx = ctxutil.WithOperationID(ctx, ctxutil.NewOperationID())

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, err = userContext(ctx, flags.user)
	if err != nil {
		return err
	}
	return fn(ctx, a)
}

func userContext(ctx context.Context, raw string) (context.Context, error) {
	if raw == "" {
		return ctx, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --user %q: %w", raw, err)
	}
	return ctxutil.WithUserID(ctx, id), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// optionalString returns nil unless the flag was set on the command line.
func optionalString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

var errMissingUser = errors.New("this command needs --user or $FERMENT_USER")
