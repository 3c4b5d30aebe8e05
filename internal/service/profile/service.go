package profile

import (
	"context"
	"log/slog"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

type profileRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	ListActive(ctx context.Context) ([]domain.Profile, error)
	ListAll(ctx context.Context) ([]domain.Profile, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the catalog of fermentation profiles.
type Service struct {
	profiles profileRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Profile service.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		profiles: profiles,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "profile"),
	}
}
