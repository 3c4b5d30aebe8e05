// Package photo implements the append-only batch photo repository.
// Only metadata is stored; files live in the uploads directory.
package photo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres"
	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

// Repo provides photo persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new photo repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        int64     `db:"id"`
	BatchID   int64     `db:"batch_id"`
	FilePath  string    `db:"file_path"`
	Caption   *string   `db:"caption"`
	TakenAt   time.Time `db:"taken_at"`
	Stage     string    `db:"stage"`
	CreatedAt time.Time `db:"created_at"`
}

var columns = []string{"id", "batch_id", "file_path", "caption", "taken_at", "stage", "created_at"}

// Append stores photo metadata.
func (r *Repo) Append(ctx context.Context, p domain.Photo) (*domain.Photo, error) {
	query, args, err := postgres.Builder.
		Insert("batch_photos").
		Columns("batch_id", "file_path", "caption", "taken_at", "stage").
		Values(p.BatchID, p.FilePath, p.Caption, p.TakenAt, p.Stage.String()).
		Suffix("RETURNING id, batch_id, file_path, caption, taken_at, stage, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build photo insert: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "photo", p.BatchID)
	}
	return toDomain(rw)
}

// ListByBatch returns a batch's photos ordered by (taken_at, created_at) ascending.
func (r *Repo) ListByBatch(ctx context.Context, batchID int64) ([]domain.Photo, error) {
	return r.list(ctx, sq.Eq{"batch_id": batchID})
}

// ListByBatchIDs returns photos of several batches in one query, ordered by
// batch and then by (taken_at, created_at) ascending.
func (r *Repo) ListByBatchIDs(ctx context.Context, batchIDs []int64) ([]domain.Photo, error) {
	if len(batchIDs) == 0 {
		return []domain.Photo{}, nil
	}
	return r.list(ctx, sq.Eq{"batch_id": batchIDs})
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]domain.Photo, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("batch_photos").
		Where(where).
		OrderBy("batch_id", "taken_at ASC", "created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build photo query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	photos := make([]domain.Photo, 0, len(rows))
	for _, rw := range rows {
		p, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}
	return photos, nil
}

func toDomain(rw row) (*domain.Photo, error) {
	stage, err := domain.ParsePhotoStage(rw.Stage)
	if err != nil {
		return nil, fmt.Errorf("photo %d: %w", rw.ID, err)
	}
	return &domain.Photo{
		ID:        rw.ID,
		BatchID:   rw.BatchID,
		FilePath:  rw.FilePath,
		Caption:   rw.Caption,
		TakenAt:   rw.TakenAt,
		Stage:     stage,
		CreatedAt: rw.CreatedAt,
	}, nil
}
