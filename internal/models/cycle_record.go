package models

import "time"

const (
	// Population norms used when a user's history carries no usable lengths.
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// CycleRecord is one historical menstrual cycle. The newest record per user is
// the open cycle: its CycleLength stays nil until the next cycle starts, and
// its PeriodLength is refined as the user reports the end of bleeding.
type CycleRecord struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index:idx_cycle_records_user_start"`
	StartDate    time.Time `gorm:"type:date;not null;index:idx_cycle_records_user_start"`
	CycleLength  *int
	PeriodLength *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
