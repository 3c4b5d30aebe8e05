package domain

import (
	"fmt"
	"math"
	"time"
)

// TemperatureLog is a single append-only temperature reading for a batch.
// TemperatureF is always in Fahrenheit, regardless of the unit it was entered in.
type TemperatureLog struct {
	ID           int64
	BatchID      int64
	RecordedAt   time.Time
	TemperatureF float64
	Notes        *string
	CreatedAt    time.Time
}

// DisplayTemperature is a reading converted for presentation.
type DisplayTemperature struct {
	Value float64
	Unit  TemperatureUnit
}

func (d DisplayTemperature) String() string {
	return fmt.Sprintf("%.1f%s", d.Value, d.Unit.Symbol())
}

// TemperatureBounds is the plausible range for a stored reading, in Fahrenheit.
type TemperatureBounds struct {
	MinF float64
	MaxF float64
}

// DefaultTemperatureBounds covers freezing brines up to boiling water.
var DefaultTemperatureBounds = TemperatureBounds{MinF: 0, MaxF: 212}

// ToCelsius converts Fahrenheit to Celsius: (F - 32) * 5/9.
func ToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// ToFahrenheit converts Celsius to Fahrenheit: C * 9/5 + 32.
func ToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// ConvertForDisplay converts a stored Fahrenheit value into the preferred unit.
func ConvertForDisplay(storedF float64, unit TemperatureUnit) float64 {
	if unit == TemperatureUnitCelsius {
		return ToCelsius(storedF)
	}
	return storedF
}

// ConvertForStorage converts an entered value into Fahrenheit for persistence.
func ConvertForStorage(value float64, unit TemperatureUnit) float64 {
	if unit == TemperatureUnitCelsius {
		return ToFahrenheit(value)
	}
	return value
}

// ValidateStoredTemperature checks a Fahrenheit value before it is persisted.
func ValidateStoredTemperature(f float64, bounds TemperatureBounds) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NewValidationError("temperature", "must be a finite number")
	}
	if f < bounds.MinF || f > bounds.MaxF {
		return NewValidationError("temperature",
			fmt.Sprintf("must be between %.0f°F and %.0f°F", bounds.MinF, bounds.MaxF))
	}
	return nil
}

// Display returns the reading converted into unit.
func (l TemperatureLog) Display(unit TemperatureUnit) DisplayTemperature {
	return DisplayTemperature{Value: ConvertForDisplay(l.TemperatureF, unit), Unit: unit}
}
