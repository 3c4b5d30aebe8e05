// Package batch implements the Batch repository using PostgreSQL.
// Every query is scoped by owner; a batch owned by someone else is reported
// as domain.ErrNotFound.
package batch

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres"
	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

// Repo provides batch persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new batch repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             int64      `db:"id"`
	OwnerID        uuid.UUID  `db:"owner_id"`
	ProfileID      int64      `db:"profile_id"`
	Name           string     `db:"name"`
	StartDate      time.Time  `db:"start_date"`
	TargetEndDate  *time.Time `db:"target_end_date"`
	ActualEndDate  *time.Time `db:"actual_end_date"`
	Status         string     `db:"status"`
	SuccessRating  *int       `db:"success_rating"`
	Notes          *string    `db:"notes"`
	Ingredients    *string    `db:"ingredients"`
	LessonsLearned *string    `db:"lessons_learned"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	ProfileName    string     `db:"profile_name"`
	ProfileType    string     `db:"profile_type"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a batch owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Batch, error) {
	return r.get(ctx, selectBatches(), ownerID, id)
}

// GetForUpdate is GetByID with a row lock held until the surrounding
// transaction ends. It must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Batch, error) {
	return r.get(ctx, selectBatches().Suffix("FOR UPDATE OF b"), ownerID, id)
}

func (r *Repo) get(ctx context.Context, q sq.SelectBuilder, ownerID uuid.UUID, id int64) (*domain.Batch, error) {
	query, args, err := q.Where(sq.Eq{"b.id": id, "b.owner_id": ownerID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "batch", id)
	}

	return toDomain(rw)
}

// List returns the owner's batches matching filter. Returns an empty slice
// when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.BatchFilter) ([]*domain.Batch, error) {
	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}

	batches := make([]*domain.Batch, 0, len(rows))
	for _, rw := range rows {
		b, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new batch and returns its id.
// A missing profile or owner surfaces as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, b domain.Batch) (int64, error) {
	query, args, err := postgres.Builder.
		Insert("batches").
		Columns("owner_id", "profile_id", "name", "start_date", "target_end_date",
			"status", "notes", "ingredients").
		Values(b.OwnerID, b.ProfileID, b.Name, b.StartDate, b.TargetEndDate,
			b.Status.String(), b.Notes, b.Ingredients).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build batch insert: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "batch", b.Name)
	}
	return id, nil
}

// Update applies the non-nil fields of params. It reports false when no
// batch with id belongs to ownerID.
func (r *Repo) Update(ctx context.Context, ownerID uuid.UUID, id int64, params domain.BatchUpdateParams) (bool, error) {
	set := map[string]any{"updated_at": sq.Expr("now()")}
	if params.ProfileID != nil {
		set["profile_id"] = *params.ProfileID
	}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.StartDate != nil {
		set["start_date"] = *params.StartDate
	}
	if params.TargetEndDate != nil {
		set["target_end_date"] = *params.TargetEndDate
	}
	if params.Status != nil {
		set["status"] = params.Status.String()
	}
	if params.Notes != nil {
		set["notes"] = *params.Notes
	}
	if params.Ingredients != nil {
		set["ingredients"] = *params.Ingredients
	}

	return r.exec(ctx, id, postgres.Builder.
		Update("batches").
		SetMap(set).
		Where(sq.Eq{"id": id, "owner_id": ownerID}))
}

// Finish marks the batch completed with the given end date, rating and lessons.
// Rating and lessons are left untouched when nil.
func (r *Repo) Finish(ctx context.Context, ownerID uuid.UUID, id int64, params domain.BatchFinishParams) (bool, error) {
	q := postgres.Builder.
		Update("batches").
		Set("status", domain.BatchStatusCompleted.String()).
		Set("actual_end_date", params.ActualEndDate).
		Set("updated_at", sq.Expr("now()"))
	if params.SuccessRating != nil {
		q = q.Set("success_rating", *params.SuccessRating)
	}
	if params.LessonsLearned != nil {
		q = q.Set("lessons_learned", *params.LessonsLearned)
	}

	return r.exec(ctx, id, q.Where(sq.Eq{"id": id, "owner_id": ownerID}))
}

func (r *Repo) exec(ctx context.Context, id int64, q sq.UpdateBuilder) (bool, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build batch update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "batch", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(rw row) (*domain.Batch, error) {
	status, err := domain.ParseBatchStatus(rw.Status)
	if err != nil {
		return nil, fmt.Errorf("batch %d: %w", rw.ID, err)
	}

	return &domain.Batch{
		ID:             rw.ID,
		OwnerID:        rw.OwnerID,
		ProfileID:      rw.ProfileID,
		Name:           rw.Name,
		StartDate:      rw.StartDate,
		TargetEndDate:  rw.TargetEndDate,
		ActualEndDate:  rw.ActualEndDate,
		Status:         status,
		SuccessRating:  rw.SuccessRating,
		Notes:          rw.Notes,
		Ingredients:    rw.Ingredients,
		LessonsLearned: rw.LessonsLearned,
		CreatedAt:      rw.CreatedAt,
		UpdatedAt:      rw.UpdatedAt,
		ProfileName:    rw.ProfileName,
		ProfileType:    rw.ProfileType,
	}, nil
}
