// Package templog implements the append-only temperature log repository.
// Callers verify batch ownership before using it.
package templog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres"
	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

// Repo provides temperature log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new temperature log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           int64     `db:"id"`
	BatchID      int64     `db:"batch_id"`
	RecordedAt   time.Time `db:"recorded_at"`
	TemperatureF float64   `db:"temperature_f"`
	Notes        *string   `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
}

// Append stores a reading. TemperatureF must already be in Fahrenheit.
func (r *Repo) Append(ctx context.Context, log domain.TemperatureLog) (*domain.TemperatureLog, error) {
	query, args, err := postgres.Builder.
		Insert("temperature_logs").
		Columns("batch_id", "recorded_at", "temperature_f", "notes").
		Values(log.BatchID, log.RecordedAt, log.TemperatureF, log.Notes).
		Suffix("RETURNING id, batch_id, recorded_at, temperature_f, notes, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build temperature log insert: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "temperature_log", log.BatchID)
	}
	created := toDomain(rw)
	return &created, nil
}

// ListByBatch returns readings for a batch, newest first.
func (r *Repo) ListByBatch(ctx context.Context, batchID int64) ([]domain.TemperatureLog, error) {
	query, args, err := postgres.Builder.
		Select("id", "batch_id", "recorded_at", "temperature_f", "notes", "created_at").
		From("temperature_logs").
		Where(sq.Eq{"batch_id": batchID}).
		OrderBy("recorded_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build temperature log query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list temperature logs for batch %d: %w", batchID, err)
	}

	logs := make([]domain.TemperatureLog, len(rows))
	for i, rw := range rows {
		logs[i] = toDomain(rw)
	}
	return logs, nil
}

func toDomain(rw row) domain.TemperatureLog {
	return domain.TemperatureLog{
		ID:           rw.ID,
		BatchID:      rw.BatchID,
		RecordedAt:   rw.RecordedAt,
		TemperatureF: rw.TemperatureF,
		Notes:        rw.Notes,
		CreatedAt:    rw.CreatedAt,
	}
}
