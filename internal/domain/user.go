package domain

import (
	"time"

	"github.com/google/uuid"
)

// User owns batches and chooses how temperatures are shown to them.
type User struct {
	ID                uuid.UUID
	Email             string
	PreferredTempUnit TemperatureUnit
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
