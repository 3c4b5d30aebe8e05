package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

// CreateUser registers a new account. Emails are stored lower-cased and a
// duplicate email is domain.ErrConflict.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	unit := s.defaultUnit
	if input.PreferredUnit != nil {
		parsed, err := domain.ParseTemperatureUnit(*input.PreferredUnit)
		if err != nil {
			return nil, domain.NewValidationError("preferred_unit", "must be fahrenheit or celsius")
		}
		unit = parsed
	}

	user, err := s.users.Create(ctx, domain.User{
		ID:                uuid.New(),
		Email:             strings.ToLower(strings.TrimSpace(input.Email)),
		PreferredTempUnit: unit,
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("preferred_unit", user.PreferredTempUnit.String()),
	)

	return user, nil
}

// FindByEmail looks an account up by email, case-insensitively.
func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user.FindByEmail: %w", err)
	}
	return user, nil
}
