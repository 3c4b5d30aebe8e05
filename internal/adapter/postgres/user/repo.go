// Package user implements the User repository using PostgreSQL.
package user

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

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID                uuid.UUID `db:"id"`
	Email             string    `db:"email"`
	PreferredTempUnit string    `db:"preferred_temp_unit"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

const returning = "RETURNING id, email, preferred_temp_unit, created_at, updated_at"

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, email)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key any) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select("id", "email", "preferred_temp_unit", "created_at", "updated_at").
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}
	return r.scan(ctx, key, query, args)
}

// Create inserts a user. A duplicate email is domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Insert("users").
		Columns("id", "email", "preferred_temp_unit").
		Values(u.ID, u.Email, u.PreferredTempUnit.String()).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}
	return r.scan(ctx, u.Email, query, args)
}

// UpdatePreferredUnit changes how temperatures are shown to the user.
func (r *Repo) UpdatePreferredUnit(ctx context.Context, id uuid.UUID, unit domain.TemperatureUnit) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Update("users").
		Set("preferred_temp_unit", unit.String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}
	return r.scan(ctx, id, query, args)
}

func (r *Repo) scan(ctx context.Context, key any, query string, args []any) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	unit, err := domain.ParseTemperatureUnit(row.PreferredTempUnit)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}

	return &domain.User{
		ID:                row.ID,
		Email:             row.Email,
		PreferredTempUnit: unit,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}
