package services

import "errors"

var (
	// ErrCycleNotFound — the referenced cycle has no record for this user.
	ErrCycleNotFound = errors.New("cycle not found")
	// ErrInvalidPeriodRange — a computed period length came out below one day.
	ErrInvalidPeriodRange = errors.New("invalid period range")
	// ErrInvalidCycleRange — a new cycle start does not fall after the
	// previous one.
	ErrInvalidCycleRange = errors.New("invalid cycle range")
	// ErrNoteTextEmpty — note text is empty after sanitization.
	ErrNoteTextEmpty = errors.New("note text empty")
	// ErrNoteSourceInvalid — note source is not one of the known surfaces.
	ErrNoteSourceInvalid = errors.New("note source invalid")
	// ErrStoreUnavailable wraps store I/O failures; the only retryable class.
	ErrStoreUnavailable = errors.New("store unavailable")
)
