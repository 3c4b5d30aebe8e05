package domain

import (
	"fmt"
	"strings"
)

// BatchStatus represents the lifecycle state of a fermentation batch.
type BatchStatus string

const (
	BatchStatusActive    BatchStatus = "active"
	BatchStatusPaused    BatchStatus = "paused"
	BatchStatusCompleted BatchStatus = "completed"
	BatchStatusFailed    BatchStatus = "failed"
)

func (s BatchStatus) String() string { return string(s) }

func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusActive, BatchStatusPaused, BatchStatusCompleted, BatchStatusFailed:
		return true
	}
	return false
}

// IsFinished reports whether the batch has reached a terminal state.
func (s BatchStatus) IsFinished() bool {
	return s == BatchStatusCompleted || s == BatchStatusFailed
}

// IsRunning reports whether the batch is still fermenting (active or paused).
func (s BatchStatus) IsRunning() bool {
	return s == BatchStatusActive || s == BatchStatusPaused
}

// ParseBatchStatus converts a storage or input string into a BatchStatus.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseBatchStatus(raw string) (BatchStatus, error) {
	s := BatchStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown batch status %q: %w", raw, ErrValidation)
	}
	return s, nil
}

// PhotoStage marks where in the batch lifecycle a photo was taken.
// It only drives thumbnail selection; it has no effect on batch status.
type PhotoStage string

const (
	PhotoStageStart    PhotoStage = "start"
	PhotoStageProgress PhotoStage = "progress"
	PhotoStageEnd      PhotoStage = "end"
)

func (p PhotoStage) String() string { return string(p) }

func (p PhotoStage) IsValid() bool {
	switch p {
	case PhotoStageStart, PhotoStageProgress, PhotoStageEnd:
		return true
	}
	return false
}

// ParsePhotoStage converts a storage or input string into a PhotoStage.
func ParsePhotoStage(raw string) (PhotoStage, error) {
	p := PhotoStage(strings.ToLower(strings.TrimSpace(raw)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown photo stage %q: %w", raw, ErrValidation)
	}
	return p, nil
}

// TemperatureUnit is the unit a temperature is entered or displayed in.
// Stored readings are always Fahrenheit; the unit is never persisted with a value.
type TemperatureUnit string

const (
	TemperatureUnitFahrenheit TemperatureUnit = "fahrenheit"
	TemperatureUnitCelsius    TemperatureUnit = "celsius"
)

func (u TemperatureUnit) String() string { return string(u) }

func (u TemperatureUnit) IsValid() bool {
	switch u {
	case TemperatureUnitFahrenheit, TemperatureUnitCelsius:
		return true
	}
	return false
}

// Symbol returns the display symbol of the unit.
func (u TemperatureUnit) Symbol() string {
	if u == TemperatureUnitCelsius {
		return "°C"
	}
	return "°F"
}

// ParseTemperatureUnit accepts "fahrenheit"/"celsius" as well as the short
// forms "f"/"c", case-insensitively.
func ParseTemperatureUnit(raw string) (TemperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fahrenheit", "f":
		return TemperatureUnitFahrenheit, nil
	case "celsius", "c":
		return TemperatureUnitCelsius, nil
	}
	return "", fmt.Errorf("unknown temperature unit %q: %w", raw, ErrValidation)
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeBatch   EntityType = "BATCH"
	EntityTypeProfile EntityType = "PROFILE"
)

func (e EntityType) String() string { return string(e) }

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionFinish AuditAction = "FINISH"
)

func (a AuditAction) String() string { return string(a) }
