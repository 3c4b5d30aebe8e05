package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

const dateLayout = "2006-01-02"

// describeError expands validation failures into one line per field.
func describeError(err error) string {
	if errors.Is(err, domain.ErrUnauthorized) {
		return errMissingUser.Error()
	}
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) < 2 {
		return err.Error()
	}
	var b strings.Builder
	b.WriteString(ve.Error())
	for _, fe := range ve.Errors {
		fmt.Fprintf(&b, "\n  %s: %s", fe.Field, fe.Message)
	}
	return b.String()
}

func newTable(w io.Writer, header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header)
	return tw
}

func renderBatches(w io.Writer, batches []*domain.Batch, now time.Time) {
	tw := newTable(w, table.Row{"ID", "Name", "Profile", "Status", "Started", "Target", "Remaining", "Thumbnail"})
	for _, b := range batches {
		tw.AppendRow(table.Row{
			b.ID, b.Name, b.ProfileName, b.Status, formatDate(&b.StartDate),
			formatDate(b.TargetEndDate), countdownLabel(b.Countdown(now)), deref(b.ThumbnailPath),
		})
	}
	tw.Render()
}

func renderBatchDetail(w io.Writer, d *domain.BatchDetail, history []domain.AuditRecord) {
	b := d.Batch
	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetStyle(table.StyleLight)
	summary.SetTitle(fmt.Sprintf("Batch %d: %s", b.ID, b.Name))
	summary.AppendRows([]table.Row{
		{"Status", b.Status},
		{"Profile", profileLabel(d.Profile)},
		{"Started", formatDate(&b.StartDate)},
		{"Target end", formatDate(b.TargetEndDate)},
		{"Finished", formatDate(b.ActualEndDate)},
		{"Remaining", countdownLabel(d.Countdown)},
		{"Rating", formatRating(b.SuccessRating)},
		{"Ingredients", deref(b.Ingredients)},
		{"Notes", deref(b.Notes)},
		{"Lessons learned", deref(b.LessonsLearned)},
		{"Thumbnail", deref(b.ThumbnailPath)},
	})
	summary.Render()

	if len(d.Temperatures) > 0 {
		tw := newTable(w, table.Row{"Recorded", "Temperature", "Notes"})
		for _, l := range d.Temperatures {
			tw.AppendRow(table.Row{l.RecordedAt.Format(time.RFC3339), l.Display(d.DisplayUnit).String(), deref(l.Notes)})
		}
		tw.Render()
	}
	if len(d.Photos) > 0 {
		tw := newTable(w, table.Row{"Taken", "Stage", "Path", "Caption"})
		for _, p := range d.Photos {
			tw.AppendRow(table.Row{p.TakenAt.Format(time.RFC3339), p.Stage, p.FilePath, deref(p.Caption)})
		}
		tw.Render()
	}
	if len(d.Tastings) > 0 {
		renderTastings(w, d.Tastings)
	}
	if len(history) > 0 {
		tw := newTable(w, table.Row{"When", "Action", "Changes"})
		for _, r := range history {
			tw.AppendRow(table.Row{r.CreatedAt.Format(time.RFC3339), r.Action, formatChanges(r.Changes)})
		}
		tw.Render()
	}
}

func renderTastings(w io.Writer, tastings []domain.TasteProfile) {
	tw := newTable(w, table.Row{"Tasted", "Notes"})
	for _, t := range tastings {
		tw.AppendRow(table.Row{t.TastedAt.Format(time.RFC3339), t.Notes})
	}
	tw.Render()
}

func renderProfiles(w io.Writer, profiles []domain.Profile, unit domain.TemperatureUnit) {
	tw := newTable(w, table.Row{"ID", "Name", "Type", "Days", "Temperature", "Active"})
	for _, p := range profiles {
		tw.AppendRow(table.Row{
			p.ID, p.Name, p.Type,
			fmt.Sprintf("%d-%d", p.MinDays, p.MaxDays),
			temperatureRange(p, unit),
			p.IsActive,
		})
	}
	tw.Render()
}

func renderUser(w io.Writer, u *domain.User) {
	tw := newTable(w, table.Row{"ID", "Email", "Unit"})
	tw.AppendRow(table.Row{u.ID, u.Email, u.PreferredTempUnit})
	tw.Render()
}

func temperatureRange(p domain.Profile, unit domain.TemperatureUnit) string {
	lo := domain.DisplayTemperature{Value: domain.ConvertForDisplay(p.TempMinF, unit), Unit: unit}
	hi := domain.DisplayTemperature{Value: domain.ConvertForDisplay(p.TempMaxF, unit), Unit: unit}
	return lo.String() + " - " + hi.String()
}

func profileLabel(p *domain.Profile) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Type)
}

func countdownLabel(c domain.Countdown) string {
	if c.IsScheduleFinished() {
		return "schedule finished"
	}
	if !c.ShouldShow() {
		return ""
	}
	text, _ := c.Display()
	return text
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func formatRating(r *int) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%d/5", *r)
}

func formatChanges(changes map[string]any) string {
	if len(changes) == 0 {
		return ""
	}
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, changes[k])
	}
	return strings.Join(parts, ", ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
