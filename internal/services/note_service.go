package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/cyra-app/cyra/internal/models"
	"github.com/google/uuid"
)

const DefaultNoteListLimit = 50

type CycleNoteRepository interface {
	Append(note *models.CycleNote) error
	ListByUser(userID uint, limit int) ([]models.CycleNote, error)
	ListByUserAndCycle(userID uint, cycleID uint, limit int) ([]models.CycleNote, error)
}

type NoteService struct {
	notes    CycleNoteRepository
	location *time.Location
}

func NewNoteService(notes CycleNoteRepository, location *time.Location) *NoteService {
	if location == nil {
		location = time.UTC
	}
	return &NoteService{notes: notes, location: location}
}

// AddNote sanitizes and appends a free-text annotation. Validation happens
// before any store I/O; an empty result after sanitization is rejected, not
// written.
func (service *NoteService) AddNote(userID uint, cycleID *uint, date time.Time, source string, text string, now time.Time) (models.CycleNote, error) {
	if !models.IsValidNoteSource(source) {
		return models.CycleNote{}, ErrNoteSourceInvalid
	}

	sanitized := SanitizeNoteText(text)
	if sanitized == "" {
		return models.CycleNote{}, ErrNoteTextEmpty
	}

	note := models.CycleNote{
		ID:        uuid.NewString(),
		UserID:    userID,
		CycleID:   cycleID,
		Date:      DateAtLocation(date, service.location),
		Source:    source,
		Text:      sanitized,
		CreatedAt: now,
	}
	if err := service.notes.Append(&note); err != nil {
		return models.CycleNote{}, fmt.Errorf("%w: append note: %v", ErrStoreUnavailable, err)
	}
	return note, nil
}

// ListNotes returns the user's notes newest first. Notes from different
// sources about the same day are all retained; they represent distinct user
// actions, so no cross-source deduplication happens.
func (service *NoteService) ListNotes(userID uint, limit int) ([]models.CycleNote, error) {
	if limit <= 0 {
		limit = DefaultNoteListLimit
	}
	notes, err := service.notes.ListByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list notes: %v", ErrStoreUnavailable, err)
	}
	return notes, nil
}

func (service *NoteService) ListCycleNotes(userID uint, cycleID uint, limit int) ([]models.CycleNote, error) {
	if limit <= 0 {
		limit = DefaultNoteListLimit
	}
	notes, err := service.notes.ListByUserAndCycle(userID, cycleID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list cycle notes: %v", ErrStoreUnavailable, err)
	}
	return notes, nil
}

// SanitizeNoteText strips control characters, keeping line breaks and tabs,
// then trims surrounding whitespace.
func SanitizeNoteText(text string) string {
	stripped := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(stripped)
}
