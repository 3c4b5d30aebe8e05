// Package tasting implements the append-only taste profile repository.
package tasting

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres"
	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

// Repo provides taste profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new taste profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        int64     `db:"id"`
	BatchID   int64     `db:"batch_id"`
	Notes     string    `db:"notes"`
	TastedAt  time.Time `db:"tasted_at"`
	CreatedAt time.Time `db:"created_at"`
}

// Append stores a tasting note.
func (r *Repo) Append(ctx context.Context, tp domain.TasteProfile) (*domain.TasteProfile, error) {
	query, args, err := postgres.Builder.
		Insert("taste_profiles").
		Columns("batch_id", "notes", "tasted_at").
		Values(tp.BatchID, tp.Notes, tp.TastedAt).
		Suffix("RETURNING id, batch_id, notes, tasted_at, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build taste profile insert: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "taste_profile", tp.BatchID)
	}
	created := domain.TasteProfile(rw)
	return &created, nil
}

// ListByBatch returns tasting notes for a batch, newest first.
func (r *Repo) ListByBatch(ctx context.Context, batchID int64) ([]domain.TasteProfile, error) {
	query, args, err := postgres.Builder.
		Select("id", "batch_id", "notes", "tasted_at", "created_at").
		From("taste_profiles").
		Where(sq.Eq{"batch_id": batchID}).
		OrderBy("tasted_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build taste profile query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list taste profiles for batch %d: %w", batchID, err)
	}

	out := make([]domain.TasteProfile, len(rows))
	for i, rw := range rows {
		out[i] = domain.TasteProfile(rw)
	}
	return out, nil
}
