package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/CWiesbaum/raugupatis-log/internal/app"
	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/internal/service/batch"
)

func batchesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "batches", Short: "Track fermentation batches"}
	cmd.AddCommand(batchesListCmd())
	cmd.AddCommand(batchesShowCmd())
	cmd.AddCommand(batchesCreateCmd())
	cmd.AddCommand(batchesUpdateCmd())
	cmd.AddCommand(batchesFinishCmd())
	cmd.AddCommand(batchesLogTempCmd())
	cmd.AddCommand(batchesAddPhotoCmd())
	cmd.AddCommand(batchesTasteCmd())
	cmd.AddCommand(batchesTastingsCmd())
	return cmd
}

func batchesListCmd() *cobra.Command {
	var search, status, profileType, sortBy, order string
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := domain.BatchQuery{
				Search:      optionalString(cmd, "search", search),
				Status:      optionalString(cmd, "status", status),
				ProfileType: optionalString(cmd, "type", profileType),
				SortBy:      optionalString(cmd, "sort", sortBy),
				SortOrder:   optionalString(cmd, "order", order),
			}
			if cmd.Flags().Changed("limit") {
				q.Limit = &limit
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				batches, err := a.Batches.ListBatches(ctx, q)
				if err != nil {
					return err
				}
				if flags.json {
					return printJSON(cmd.OutOrStdout(), batches)
				}
				renderBatches(cmd.OutOrStdout(), batches, time.Now().UTC())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "match name, notes or ingredients")
	cmd.Flags().StringVar(&status, "status", "", "active, completed, failed or paused")
	cmd.Flags().StringVar(&profileType, "type", "", "profile type")
	cmd.Flags().StringVar(&sortBy, "sort", "", "created_at, start_date, name or status")
	cmd.Flags().StringVar(&order, "order", "", "asc or desc")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of batches")
	return cmd
}

func batchesShowCmd() *cobra.Command {
	var (
		unit    string
		history bool
	)
	cmd := &cobra.Command{
		Use:   "show <batch-id>",
		Short: "Show a batch with its readings, photos and tastings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				detail, err := a.Batches.GetBatch(ctx, batch.GetBatchInput{
					BatchID:     id,
					DisplayUnit: optionalString(cmd, "unit", unit),
				})
				if err != nil {
					return err
				}
				var records []domain.AuditRecord
				if history {
					if records, err = a.Batches.BatchHistory(ctx, id); err != nil {
						return err
					}
				}
				if flags.json {
					return printJSON(cmd.OutOrStdout(), struct {
						*domain.BatchDetail
						Remaining string               `json:"Remaining,omitempty"`
						History   []domain.AuditRecord `json:"History,omitempty"`
					}{detail, countdownLabel(detail.Countdown), records})
				}
				renderBatchDetail(cmd.OutOrStdout(), detail, records)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "", "display unit (fahrenheit, celsius)")
	cmd.Flags().BoolVar(&history, "history", false, "include the change history")
	return cmd
}

func batchesCreateCmd() *cobra.Command {
	var (
		in                         batch.CreateBatchInput
		target, notes, ingredients string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.StartDate == "" {
				in.StartDate = time.Now().UTC().Format(time.RFC3339)
			}
			in.TargetEndDate = optionalString(cmd, "target", target)
			in.Notes = optionalString(cmd, "notes", notes)
			in.Ingredients = optionalString(cmd, "ingredients", ingredients)
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				b, err := a.Batches.CreateBatch(ctx, in)
				if err != nil {
					return err
				}
				return printBatch(cmd, b)
			})
		},
	}
	cmd.Flags().Int64Var(&in.ProfileID, "profile", 0, "profile id")
	cmd.Flags().StringVar(&in.Name, "name", "", "batch name")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "start date, RFC 3339 (default now)")
	cmd.Flags().StringVar(&target, "target", "", "target end date, RFC 3339")
	cmd.Flags().BoolVar(&in.SuggestTargetEnd, "suggest-target", false, "derive the target end date from the profile")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	cmd.Flags().StringVar(&ingredients, "ingredients", "", "ingredients")
	return cmd
}

func batchesUpdateCmd() *cobra.Command {
	var profileID int64
	var name, start, target, status, notes, ingredients string
	cmd := &cobra.Command{
		Use:   "update <batch-id>",
		Short: "Change fields of a batch; unset flags are left as is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			in := batch.UpdateBatchInput{
				BatchID:       id,
				Name:          optionalString(cmd, "name", name),
				StartDate:     optionalString(cmd, "start", start),
				TargetEndDate: optionalString(cmd, "target", target),
				Status:        optionalString(cmd, "status", status),
				Notes:         optionalString(cmd, "notes", notes),
				Ingredients:   optionalString(cmd, "ingredients", ingredients),
			}
			if cmd.Flags().Changed("profile") {
				in.ProfileID = &profileID
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				b, err := a.Batches.UpdateBatch(ctx, in)
				if err != nil {
					return err
				}
				return printBatch(cmd, b)
			})
		},
	}
	cmd.Flags().Int64Var(&profileID, "profile", 0, "profile id")
	cmd.Flags().StringVar(&name, "name", "", "batch name")
	cmd.Flags().StringVar(&start, "start", "", "start date, RFC 3339")
	cmd.Flags().StringVar(&target, "target", "", "target end date, RFC 3339")
	cmd.Flags().StringVar(&status, "status", "", "active, completed, failed or paused")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	cmd.Flags().StringVar(&ingredients, "ingredients", "", "ingredients")
	return cmd
}

func batchesFinishCmd() *cobra.Command {
	var (
		rating         int
		lessons, taste string
	)
	cmd := &cobra.Command{
		Use:   "finish <batch-id>",
		Short: "Complete a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			in := batch.FinishBatchInput{
				BatchID:             id,
				LessonsLearned:      optionalString(cmd, "lessons", lessons),
				InitialTasteProfile: optionalString(cmd, "taste", taste),
			}
			if cmd.Flags().Changed("rating") {
				in.SuccessRating = &rating
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				b, err := a.Batches.FinishBatch(ctx, in)
				if err != nil {
					return err
				}
				return printBatch(cmd, b)
			})
		},
	}
	cmd.Flags().IntVar(&rating, "rating", 0, "success rating from 1 to 5")
	cmd.Flags().StringVar(&lessons, "lessons", "", "lessons learned")
	cmd.Flags().StringVar(&taste, "taste", "", "first tasting note")
	return cmd
}

func batchesLogTempCmd() *cobra.Command {
	var unit, at, notes string
	cmd := &cobra.Command{
		Use:   "log-temp <batch-id> <value>",
		Short: "Record a temperature reading",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid temperature %q", args[1])
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				l, err := a.Batches.LogTemperature(ctx, batch.LogTemperatureInput{
					BatchID:    id,
					Value:      value,
					Unit:       optionalString(cmd, "unit", unit),
					RecordedAt: optionalString(cmd, "at", at),
					Notes:      optionalString(cmd, "notes", notes),
				})
				if err != nil {
					return err
				}
				if flags.json {
					return printJSON(cmd.OutOrStdout(), l)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "logged %s at %s\n",
					l.Display(displayUnit(ctx, a, unit)), l.RecordedAt.Format(time.RFC3339))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "", "unit of the value (default: your preferred unit)")
	cmd.Flags().StringVar(&at, "at", "", "reading time, RFC 3339 (default now)")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	return cmd
}

func batchesAddPhotoCmd() *cobra.Command {
	var caption, takenAt, stage string
	cmd := &cobra.Command{
		Use:   "add-photo <batch-id> <path>",
		Short: "Attach a photo stored under the uploads directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				p, err := a.Batches.AddPhoto(ctx, batch.AddPhotoInput{
					BatchID:  id,
					FilePath: uploadRelative(a.Config.Uploads.Dir, args[1]),
					Caption:  optionalString(cmd, "caption", caption),
					TakenAt:  optionalString(cmd, "taken-at", takenAt),
					Stage:    optionalString(cmd, "stage", stage),
				})
				if err != nil {
					return err
				}
				if flags.json {
					return printJSON(cmd.OutOrStdout(), p)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "photo %d added to batch %d (%s)\n", p.ID, p.BatchID, p.Stage)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&caption, "caption", "", "caption")
	cmd.Flags().StringVar(&takenAt, "taken-at", "", "time taken, RFC 3339 (default now)")
	cmd.Flags().StringVar(&stage, "stage", "", "start, progress or end (default progress)")
	return cmd
}

func batchesTasteCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "taste <batch-id> <notes>",
		Short: "Add a tasting note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				t, err := a.Batches.AddTasting(ctx, batch.AddTastingInput{
					BatchID:  id,
					Notes:    args[1],
					TastedAt: optionalString(cmd, "at", at),
				})
				if err != nil {
					return err
				}
				if flags.json {
					return printJSON(cmd.OutOrStdout(), t)
				}
				renderTastings(cmd.OutOrStdout(), []domain.TasteProfile{*t})
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "tasting time, RFC 3339 (default now)")
	return cmd
}

func batchesTastingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tastings <batch-id>",
		Short: "List the tasting notes of a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				tastings, err := a.Batches.ListTastings(ctx, id)
				if err != nil {
					return err
				}
				if flags.json {
					return printJSON(cmd.OutOrStdout(), tastings)
				}
				renderTastings(cmd.OutOrStdout(), tastings)
				return nil
			})
		},
	}
}

func printBatch(cmd *cobra.Command, b *domain.Batch) error {
	if flags.json {
		return printJSON(cmd.OutOrStdout(), b)
	}
	renderBatches(cmd.OutOrStdout(), []*domain.Batch{b}, time.Now().UTC())
	return nil
}

// uploadRelative turns an absolute path inside dir into a path relative to
// it. Anything else is returned unchanged for the service to validate.
func uploadRelative(dir, path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	base, err := filepath.Abs(dir)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
