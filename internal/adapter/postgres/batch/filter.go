package batch

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres"
	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

// sortColumns maps whitelisted sort fields to qualified columns.
var sortColumns = map[domain.BatchSortField]string{
	domain.BatchSortName:      "b.name",
	domain.BatchSortStartDate: "b.start_date",
	domain.BatchSortStatus:    "b.status",
	domain.BatchSortCreatedAt: "b.created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern turns free text into an ILIKE pattern that matches it as a
// literal substring.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// listQuery translates a normalized filter into a parameterized SELECT.
// Search is OR'd across name, notes and ingredients; every other condition
// is AND'ed with the owner scope. Ties on the sort column break on id.
func listQuery(f domain.BatchFilter) sq.SelectBuilder {
	q := selectBatches().Where(sq.Eq{"b.owner_id": f.OwnerID})

	if f.Search != "" {
		pattern := containsPattern(f.Search)
		q = q.Where(sq.Or{
			sq.ILike{"b.name": pattern},
			sq.ILike{"b.notes": pattern},
			sq.ILike{"b.ingredients": pattern},
		})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"b.status": f.Status.String()})
	}
	if f.ProfileType != "" {
		q = q.Where(sq.Eq{"p.type": f.ProfileType})
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = sortColumns[domain.BatchSortCreatedAt]
	}
	direction := "DESC"
	if f.SortOrder == domain.SortAsc {
		direction = "ASC"
	}
	q = q.OrderBy(column+" "+direction, "b.id "+direction)

	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	return q
}

func selectBatches() sq.SelectBuilder {
	return postgres.Builder.
		Select(
			"b.id", "b.owner_id", "b.profile_id", "b.name", "b.start_date",
			"b.target_end_date", "b.actual_end_date", "b.status", "b.success_rating",
			"b.notes", "b.ingredients", "b.lessons_learned", "b.created_at", "b.updated_at",
			"p.name AS profile_name", "p.type AS profile_type",
		).
		From("batches b").
		Join("fermentation_profiles p ON p.id = b.profile_id")
}
