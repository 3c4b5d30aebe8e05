package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	UpdatePreferredUnit(ctx context.Context, id uuid.UUID, unit domain.TemperatureUnit) (*domain.User, error)
}

// Service implements user account and settings operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	defaultUnit domain.TemperatureUnit
}

// NewService creates a new user service instance. defaultUnit is assigned to
// accounts created without an explicit preference.
func NewService(
	logger *slog.Logger,
	users userRepo,
	defaultUnit domain.TemperatureUnit,
) *Service {
	if !defaultUnit.IsValid() {
		defaultUnit = domain.TemperatureUnitFahrenheit
	}
	return &Service{
		log:         logger.With("service", "user"),
		users:       users,
		defaultUnit: defaultUnit,
	}
}
