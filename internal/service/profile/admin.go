package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/pkg/ctxutil"
)

// Create adds a new active profile. A taken name is domain.ErrConflict.
func (s *Service) Create(ctx context.Context, input CreateProfileInput) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Profile
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.create(txCtx, userID, toProfile(input), nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile created",
		slog.String("user_id", userID.String()),
		slog.Int64("profile_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}

// Copy duplicates a profile, active or not, under a new name.
// The copy is always active.
func (s *Service) Copy(ctx context.Context, input CopyProfileInput) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Profile
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		source, err := s.profiles.GetByID(txCtx, input.SourceID)
		if err != nil {
			return fmt.Errorf("get source profile: %w", err)
		}

		p := *source
		p.Name = strings.TrimSpace(input.NewName)
		p.IsActive = true
		created, err = s.create(txCtx, userID, p, &input.SourceID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile copied",
		slog.String("user_id", userID.String()),
		slog.Int64("source_id", input.SourceID),
		slog.Int64("profile_id", created.ID),
	)

	return created, nil
}

// SetActive hides a profile from new batches or offers it again. Existing
// batches keep referencing deactivated profiles.
func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.profiles.SetActive(txCtx, id, active); err != nil {
			return fmt.Errorf("set profile active: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProfile,
			EntityID:   id,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"is_active": map[string]any{"new": active}},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "profile availability changed",
		slog.String("user_id", userID.String()),
		slog.Int64("profile_id", id),
		slog.Bool("active", active),
	)

	return nil
}

// create inserts p after a name check and writes the audit record.
// Must run inside a transaction.
func (s *Service) create(ctx context.Context, userID uuid.UUID, p domain.Profile, copiedFrom *int64) (*domain.Profile, error) {
	exists, err := s.profiles.NameExists(ctx, p.Name)
	if err != nil {
		return nil, fmt.Errorf("check profile name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("profile %q: %w", p.Name, domain.ErrConflict)
	}
	return s.insert(ctx, userID, p, copiedFrom)
}

// insert writes p and its audit record without a name check.
// Must run inside a transaction.
func (s *Service) insert(ctx context.Context, userID uuid.UUID, p domain.Profile, copiedFrom *int64) (*domain.Profile, error) {
	created, err := s.profiles.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	changes := map[string]any{"name": map[string]any{"new": created.Name}}
	if copiedFrom != nil {
		changes["copied_from"] = *copiedFrom
	}
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeProfile,
		EntityID:   created.ID,
		Action:     domain.AuditActionCreate,
		Changes:    changes,
	}); err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}
	return created, nil
}

// toProfile converts validated input, storing temperatures in Fahrenheit.
func toProfile(input CreateProfileInput) domain.Profile {
	unit := domain.TemperatureUnitFahrenheit
	if input.Unit != nil {
		if u, err := domain.ParseTemperatureUnit(*input.Unit); err == nil {
			unit = u
		}
	}

	var description *string
	if input.Description != nil {
		if d := strings.TrimSpace(*input.Description); d != "" {
			description = &d
		}
	}

	return domain.Profile{
		Name:        strings.TrimSpace(input.Name),
		Type:        strings.ToLower(strings.TrimSpace(input.Type)),
		MinDays:     input.MinDays,
		MaxDays:     input.MaxDays,
		TempMinF:    domain.ConvertForStorage(input.TempMin, unit),
		TempMaxF:    domain.ConvertForStorage(input.TempMax, unit),
		Description: description,
		IsActive:    true,
	}
}
