package profile

import (
	"context"
	"fmt"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

// ListActive returns the profiles offered for new batches.
func (s *Service) ListActive(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profiles.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active profiles: %w", err)
	}
	return profiles, nil
}

// ListAll returns every profile, including deactivated ones.
func (s *Service) ListAll(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// Get returns a profile by id, active or not.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Profile, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}
