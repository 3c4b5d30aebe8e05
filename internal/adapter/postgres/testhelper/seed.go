package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user who prefers Fahrenheit.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:                uuid.New(),
		Email:             "fermenter-" + uniqueSuffix() + "@example.com",
		PreferredTempUnit: domain.TemperatureUnitFahrenheit,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, preferred_temp_unit, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, string(user.PreferredTempUnit), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedProfile creates an active profile of the given type with a unique name.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, profileType string) domain.Profile {
	t.Helper()

	p := domain.Profile{
		Name:     "Profile " + uniqueSuffix(),
		Type:     profileType,
		MinDays:  3,
		MaxDays:  7,
		TempMinF: 65,
		TempMaxF: 75,
		IsActive: true,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO fermentation_profiles (name, type, min_days, max_days, temp_min_f, temp_max_f, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		p.Name, p.Type, p.MinDays, p.MaxDays, p.TempMinF, p.TempMaxF, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}

// SeedBatch creates an active batch for owner on profile.
func SeedBatch(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, profileID int64, name string) domain.Batch {
	t.Helper()

	b := domain.Batch{
		OwnerID:   ownerID,
		ProfileID: profileID,
		Name:      name,
		StartDate: time.Now().UTC().Truncate(time.Microsecond),
		Status:    domain.BatchStatusActive,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO batches (owner_id, profile_id, name, start_date, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		b.OwnerID, b.ProfileID, b.Name, b.StartDate, string(b.Status),
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBatch: %v", err)
	}

	return b
}
