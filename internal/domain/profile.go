package domain

import "time"

// Profile is a reusable template for a kind of fermentation.
// Inactive profiles are hidden from new batches but stay valid for existing ones.
type Profile struct {
	ID          int64
	Name        string
	Type        string
	MinDays     int
	MaxDays     int
	TempMinF    float64
	TempMaxF    float64
	Description *string
	IsActive    bool
	CreatedAt   time.Time
}

// SuggestedEndDate returns start plus the profile's maximum duration.
func (p *Profile) SuggestedEndDate(start time.Time) time.Time {
	return start.AddDate(0, 0, p.MaxDays)
}

// InTemperatureRange reports whether a Fahrenheit reading sits inside the
// profile's expected range.
func (p *Profile) InTemperatureRange(f float64) bool {
	return f >= p.TempMinF && f <= p.TempMaxF
}
