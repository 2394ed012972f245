package models

import "time"

const (
	NoteSourceCalendar = "calendar"
	NoteSourceNotes    = "notes"
	NoteSourceTracker  = "tracker"
	NoteSourceManual   = "manual"
)

// CycleNote is a timestamped free-text annotation. Notes are append-only: the
// engine never updates or deletes them once written.
type CycleNote struct {
	ID        string    `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	CycleID   *uint     `gorm:"index"`
	Date      time.Time `gorm:"type:date;not null"`
	Source    string    `gorm:"not null"`
	Text      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func IsValidNoteSource(source string) bool {
	switch source {
	case NoteSourceCalendar, NoteSourceNotes, NoteSourceTracker, NoteSourceManual:
		return true
	default:
		return false
	}
}
