package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres"
	"github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres/audit"
	batchrepo "github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres/batch"
	"github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres/photo"
	profilerepo "github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres/profile"
	"github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres/tasting"
	"github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres/templog"
	userrepo "github.com/CWiesbaum/raugupatis-log/internal/adapter/postgres/user"
	"github.com/CWiesbaum/raugupatis-log/internal/config"
	"github.com/CWiesbaum/raugupatis-log/internal/dataloader"
	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/internal/service/batch"
	"github.com/CWiesbaum/raugupatis-log/internal/service/profile"
	"github.com/CWiesbaum/raugupatis-log/internal/service/user"
)

// App holds the connected services of one process.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool

	Batches  *batch.Service
	Profiles *profile.Service
	Users    *user.Service
}

// New connects to the database and wires repositories into services.
// The caller owns the returned App and must Close it.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := NewLogger(cfg.Log)

	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	unit, err := domain.ParseTemperatureUnit(cfg.Fermentation.DefaultTempUnit)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("default temperature unit: %w", err)
	}

	txm := postgres.NewTxManager(pool)

	batches := batchrepo.New(pool)
	profiles := profilerepo.New(pool)
	photos := photo.New(pool)
	users := userrepo.New(pool)
	auditRepo := audit.New(pool)

	a := &App{
		Config: cfg,
		Logger: logger,
		Pool:   pool,
		Batches: batch.NewService(logger, batch.Repos{
			Batches:      batches,
			Profiles:     profiles,
			Temperatures: templog.New(pool),
			Photos:       photos,
			Tastings:     tasting.New(pool),
			Users:        users,
		}, dataloader.NewPhotoLoader(photos), auditRepo, auditRepo, txm, batch.Settings{
			Bounds: domain.TemperatureBounds{
				MinF: cfg.Fermentation.MinTemperatureF,
				MaxF: cfg.Fermentation.MaxTemperatureF,
			},
			DefaultUnit:  unit,
			HistoryLimit: cfg.Fermentation.HistoryLimit,
		}),
		Profiles: profile.NewService(logger, profiles, auditRepo, txm),
		Users:    user.NewService(logger, users, unit),
	}

	logger.DebugContext(ctx, "services ready", slog.String("default_unit", unit.String()))

	return a, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}
