package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/pkg/ctxutil"
)

// GetSettings returns the authenticated user's account with its preferences.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetSettings(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetSettings: %w", err)
	}

	return user, nil
}

// UpdateSettings changes the authenticated user's preferred temperature unit.
// Stored readings are unaffected; only their display changes.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	unit, err := domain.ParseTemperatureUnit(input.PreferredUnit)
	if err != nil {
		return nil, domain.NewValidationError("preferred_unit", "must be fahrenheit or celsius")
	}

	user, err := s.users.UpdatePreferredUnit(ctx, userID, unit)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateSettings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID.String()),
		slog.String("preferred_unit", unit.String()),
	)

	return user, nil
}
