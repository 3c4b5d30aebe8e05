package batch

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

type batchRepo interface {
	GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Batch, error)
	GetForUpdate(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Batch, error)
	List(ctx context.Context, filter domain.BatchFilter) ([]*domain.Batch, error)
	Create(ctx context.Context, b domain.Batch) (int64, error)
	Update(ctx context.Context, ownerID uuid.UUID, id int64, params domain.BatchUpdateParams) (bool, error)
	Finish(ctx context.Context, ownerID uuid.UUID, id int64, params domain.BatchFinishParams) (bool, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
}

type temperatureRepo interface {
	Append(ctx context.Context, log domain.TemperatureLog) (*domain.TemperatureLog, error)
	ListByBatch(ctx context.Context, batchID int64) ([]domain.TemperatureLog, error)
}

type photoRepo interface {
	Append(ctx context.Context, p domain.Photo) (*domain.Photo, error)
	ListByBatch(ctx context.Context, batchID int64) ([]domain.Photo, error)
}

type tastingRepo interface {
	Append(ctx context.Context, tp domain.TasteProfile) (*domain.TasteProfile, error)
	ListByBatch(ctx context.Context, batchID int64) ([]domain.TasteProfile, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type photoLoader interface {
	PhotosByBatchIDs(ctx context.Context, batchIDs []int64) (map[int64][]domain.Photo, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// auditReader returns an entity's history, newest first. A limit <= 0 means no cap.
type auditReader interface {
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Settings are the tunables the batch service reads from configuration.
type Settings struct {
	Bounds       domain.TemperatureBounds
	DefaultUnit  domain.TemperatureUnit
	HistoryLimit int
}

// Repos groups the persistence collaborators of the batch service.
type Repos struct {
	Batches      batchRepo
	Profiles     profileRepo
	Temperatures temperatureRepo
	Photos       photoRepo
	Tastings     tastingRepo
	Users        userRepo
}

// Service orchestrates batch lifecycle operations for the calling user.
type Service struct {
	batches      batchRepo
	profiles     profileRepo
	temperatures temperatureRepo
	photos       photoRepo
	tastings     tastingRepo
	users        userRepo
	loader       photoLoader
	audit        auditLogger
	history      auditReader
	tx           txManager
	settings     Settings
	now          func() time.Time
	log          *slog.Logger
}

// NewService creates a new Batch service.
func NewService(
	log *slog.Logger,
	repos Repos,
	loader photoLoader,
	audit auditLogger,
	history auditReader,
	tx txManager,
	settings Settings,
) *Service {
	if !settings.DefaultUnit.IsValid() {
		settings.DefaultUnit = domain.TemperatureUnitFahrenheit
	}
	if settings.Bounds == (domain.TemperatureBounds{}) {
		settings.Bounds = domain.DefaultTemperatureBounds
	}
	return &Service{
		batches:      repos.Batches,
		profiles:     repos.Profiles,
		temperatures: repos.Temperatures,
		photos:       repos.Photos,
		tastings:     repos.Tastings,
		users:        repos.Users,
		loader:       loader,
		audit:        audit,
		history:      history,
		tx:           tx,
		settings:     settings,
		now:          func() time.Time { return time.Now().UTC() },
		log:          log.With("service", "batch"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// parseTimestamp parses an RFC 3339 timestamp and normalizes it to UTC.
func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// preferredUnit resolves the unit to use for the user: an explicit choice
// wins, then the user's stored preference, then the configured default.
func (s *Service) preferredUnit(ctx context.Context, userID uuid.UUID, explicit *string) domain.TemperatureUnit {
	if explicit != nil {
		if u, err := domain.ParseTemperatureUnit(*explicit); err == nil {
			return u
		}
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.DebugContext(ctx, "fall back to default temperature unit",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return s.settings.DefaultUnit
	}
	if !user.PreferredTempUnit.IsValid() {
		return s.settings.DefaultUnit
	}
	return user.PreferredTempUnit
}
