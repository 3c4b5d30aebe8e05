package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/pkg/ctxutil"
)

// LogTemperature records a reading for a batch owned by the caller.
// The value is converted to Fahrenheit before the range check and storage.
func (s *Service) LogTemperature(ctx context.Context, input LogTemperatureInput) (*domain.TemperatureLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	unit := s.preferredUnit(ctx, userID, input.Unit)
	storedF := domain.ConvertForStorage(input.Value, unit)
	if err := domain.ValidateStoredTemperature(storedF, s.settings.Bounds); err != nil {
		return nil, err
	}

	recordedAt := s.now()
	if input.RecordedAt != nil {
		t, err := parseTimestamp(*input.RecordedAt)
		if err != nil {
			return nil, domain.NewValidationError("recorded_at", msgTimestamp)
		}
		recordedAt = t
	}

	var (
		created *domain.TemperatureLog
		b       *domain.Batch
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		b, err = s.batches.GetByID(txCtx, userID, input.BatchID)
		if err != nil {
			return fmt.Errorf("get batch: %w", err)
		}

		created, err = s.temperatures.Append(txCtx, domain.TemperatureLog{
			BatchID:      b.ID,
			RecordedAt:   recordedAt,
			TemperatureF: storedF,
			Notes:        trimOrNil(input.Notes),
		})
		if err != nil {
			return fmt.Errorf("append temperature log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "temperature logged",
		slog.String("user_id", userID.String()),
		slog.Int64("batch_id", b.ID),
		slog.Float64("temperature_f", storedF),
		slog.String("entered_unit", unit.String()),
	)
	s.warnOutOfRange(ctx, b, storedF)

	return created, nil
}

// warnOutOfRange logs readings outside the profile's expected range.
// A missing profile is not an error here.
func (s *Service) warnOutOfRange(ctx context.Context, b *domain.Batch, storedF float64) {
	profile, err := s.profiles.GetByID(ctx, b.ProfileID)
	if err != nil || profile.InTemperatureRange(storedF) {
		return
	}
	s.log.WarnContext(ctx, "temperature outside profile range",
		slog.Int64("batch_id", b.ID),
		slog.String("profile", profile.Name),
		slog.Float64("temperature_f", storedF),
		slog.Float64("min_f", profile.TempMinF),
		slog.Float64("max_f", profile.TempMaxF),
	)
}

// AddPhoto records photo metadata for a batch owned by the caller.
// Stage defaults to progress, TakenAt to now.
func (s *Service) AddPhoto(ctx context.Context, input AddPhotoInput) (*domain.Photo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	path, err := cleanUploadPath(input.FilePath)
	if err != nil {
		return nil, domain.NewValidationError("file_path", err.Error())
	}

	photo := domain.Photo{
		BatchID:  input.BatchID,
		FilePath: path,
		Caption:  trimOrNil(input.Caption),
		TakenAt:  s.now(),
		Stage:    domain.PhotoStageProgress,
	}
	if input.TakenAt != nil {
		t, err := parseTimestamp(*input.TakenAt)
		if err != nil {
			return nil, domain.NewValidationError("taken_at", msgTimestamp)
		}
		photo.TakenAt = t
	}
	if input.Stage != nil {
		stage, err := domain.ParsePhotoStage(*input.Stage)
		if err != nil {
			return nil, domain.NewValidationError("stage", "must be start, progress or end")
		}
		photo.Stage = stage
	}

	if _, err := s.batches.GetByID(ctx, userID, input.BatchID); err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}

	created, err := s.photos.Append(ctx, photo)
	if err != nil {
		return nil, fmt.Errorf("append photo: %w", err)
	}

	s.log.InfoContext(ctx, "photo added",
		slog.String("user_id", userID.String()),
		slog.Int64("batch_id", input.BatchID),
		slog.String("stage", created.Stage.String()),
	)

	return created, nil
}

// AddTasting appends a tasting note to a batch owned by the caller.
func (s *Service) AddTasting(ctx context.Context, input AddTastingInput) (*domain.TasteProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tastedAt := s.now()
	if input.TastedAt != nil {
		t, err := parseTimestamp(*input.TastedAt)
		if err != nil {
			return nil, domain.NewValidationError("tasted_at", msgTimestamp)
		}
		tastedAt = t
	}

	if _, err := s.batches.GetByID(ctx, userID, input.BatchID); err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}

	created, err := s.tastings.Append(ctx, domain.TasteProfile{
		BatchID:  input.BatchID,
		Notes:    strings.TrimSpace(input.Notes),
		TastedAt: tastedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("append taste profile: %w", err)
	}

	s.log.InfoContext(ctx, "tasting added",
		slog.String("user_id", userID.String()),
		slog.Int64("batch_id", input.BatchID),
	)

	return created, nil
}

// ListTastings returns the tasting notes of a batch owned by the caller,
// newest first.
func (s *Service) ListTastings(ctx context.Context, batchID int64) ([]domain.TasteProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.batches.GetByID(ctx, userID, batchID); err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}

	tastings, err := s.tastings.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("list tastings: %w", err)
	}
	return tastings, nil
}

// BatchHistory returns the most recent audit records of a batch owned by the
// caller, newest first, capped at the configured history limit (zero means
// no cap).
func (s *Service) BatchHistory(ctx context.Context, batchID int64) ([]domain.AuditRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.batches.GetByID(ctx, userID, batchID); err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}

	records, err := s.history.GetByEntity(ctx, domain.EntityTypeBatch, batchID, s.settings.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("get batch history: %w", err)
	}
	return records, nil
}
