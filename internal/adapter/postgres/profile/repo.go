// Package profile implements the fermentation profile repository using PostgreSQL.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres"
	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Type        string    `db:"type"`
	MinDays     int       `db:"min_days"`
	MaxDays     int       `db:"max_days"`
	TempMinF    float64   `db:"temp_min_f"`
	TempMaxF    float64   `db:"temp_max_f"`
	Description *string   `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

var columns = []string{
	"id", "name", "type", "min_days", "max_days",
	"temp_min_f", "temp_max_f", "description", "is_active", "created_at",
}

func selectProfiles() sq.SelectBuilder {
	return postgres.Builder.Select(columns...).From("fermentation_profiles")
}

// GetByID returns a profile regardless of whether it is active.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	query, args, err := selectProfiles().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	p := toDomain(rw)
	return &p, nil
}

// ListActive returns the profiles offered for new batches, ordered by name.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Profile, error) {
	return r.list(ctx, selectProfiles().Where(sq.Eq{"is_active": true}))
}

// ListAll returns every profile, active ones first, then by name.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Profile, error) {
	return r.list(ctx, selectProfiles().OrderBy("is_active DESC"))
}

func (r *Repo) list(ctx context.Context, q sq.SelectBuilder) ([]domain.Profile, error) {
	query, args, err := q.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	profiles := make([]domain.Profile, len(rows))
	for i, rw := range rows {
		profiles[i] = toDomain(rw)
	}
	return profiles, nil
}

// NameExists reports whether a profile with name exists (case-sensitive).
func (r *Repo) NameExists(ctx context.Context, name string) (bool, error) {
	query, args, err := postgres.Builder.
		Select("1").
		Prefix("SELECT EXISTS (").
		From("fermentation_profiles").
		Where(sq.Eq{"name": name}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build profile exists query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check profile name: %w", err)
	}
	return exists, nil
}

// Create inserts an active profile. A duplicate name is domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	query, args, err := postgres.Builder.
		Insert("fermentation_profiles").
		Columns("name", "type", "min_days", "max_days", "temp_min_f", "temp_max_f", "description", "is_active").
		Values(p.Name, p.Type, p.MinDays, p.MaxDays, p.TempMinF, p.TempMaxF, p.Description, true).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile insert: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", p.Name)
	}
	created := toDomain(rw)
	return &created, nil
}

// SetActive toggles the profile's availability for new batches.
func (r *Repo) SetActive(ctx context.Context, id int64, active bool) error {
	query, args, err := postgres.Builder.
		Update("fermentation_profiles").
		Set("is_active", active).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build profile update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "profile", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toDomain(rw row) domain.Profile {
	return domain.Profile{
		ID:          rw.ID,
		Name:        rw.Name,
		Type:        rw.Type,
		MinDays:     rw.MinDays,
		MaxDays:     rw.MaxDays,
		TempMinF:    rw.TempMinF,
		TempMaxF:    rw.TempMaxF,
		Description: rw.Description,
		IsActive:    rw.IsActive,
		CreatedAt:   rw.CreatedAt,
	}
}
