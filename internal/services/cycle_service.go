package services

import (
	"fmt"
	"time"

	"github.com/cyra-app/cyra/internal/models"
)

type CycleRecordRepository interface {
	ListByUser(userID uint) ([]models.CycleRecord, error)
	FindByID(userID uint, cycleID uint) (models.CycleRecord, bool, error)
	Create(record *models.CycleRecord) error
	UpdatePeriodLength(record *models.CycleRecord) error
	UpdateCycleLength(record *models.CycleRecord) error
	ListUserIDs() ([]uint, error)
}

type CycleService struct {
	records  CycleRecordRepository
	location *time.Location
}

func NewCycleService(records CycleRecordRepository, location *time.Location) *CycleService {
	if location == nil {
		location = time.UTC
	}
	return &CycleService{records: records, location: location}
}

// CurrentState loads the user's history and derives the live snapshot.
// (nil, nil) means no cycle has been logged yet; store failures propagate
// wrapped so callers can distinguish them from the no-data case.
func (service *CycleService) CurrentState(userID uint, now time.Time) (*CycleState, error) {
	history, err := service.records.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list cycle history: %v", ErrStoreUnavailable, err)
	}
	return ComputeCycleState(history, now, service.location), nil
}

// MarkPeriodEndToday records that bleeding ended today, refining the period
// length of the identified cycle. The start day counts as day one. The record
// is re-read immediately before the single-column write to narrow the
// lost-update window against concurrent calls; the store's per-record
// last-write-wins semantics cover the rest.
func (service *CycleService) MarkPeriodEndToday(userID uint, cycleID uint, now time.Time) error {
	record, found, err := service.records.FindByID(userID, cycleID)
	if err != nil {
		return fmt.Errorf("%w: load cycle record: %v", ErrStoreUnavailable, err)
	}
	if !found {
		return ErrCycleNotFound
	}

	length := DaysBetween(record.StartDate, now, service.location) + 1
	if length < 1 {
		return ErrInvalidPeriodRange
	}

	fresh, found, err := service.records.FindByID(userID, cycleID)
	if err != nil {
		return fmt.Errorf("%w: reload cycle record: %v", ErrStoreUnavailable, err)
	}
	if !found {
		return ErrCycleNotFound
	}

	fresh.PeriodLength = &length
	if err := service.records.UpdatePeriodLength(&fresh); err != nil {
		return fmt.Errorf("%w: update period length: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// StartCycle logs a new period start. The previously open cycle, if any, is
// closed by fixing its cycle length to the day distance between the two
// starts.
func (service *CycleService) StartCycle(userID uint, startDate time.Time) (models.CycleRecord, error) {
	history, err := service.records.ListByUser(userID)
	if err != nil {
		return models.CycleRecord{}, fmt.Errorf("%w: list cycle history: %v", ErrStoreUnavailable, err)
	}

	start := DateAtLocation(startDate, service.location)
	if len(history) > 0 {
		previous := history[0]
		length := DaysBetween(previous.StartDate, start, service.location)
		if length < 1 {
			return models.CycleRecord{}, ErrInvalidCycleRange
		}
		previous.CycleLength = &length
		if err := service.records.UpdateCycleLength(&previous); err != nil {
			return models.CycleRecord{}, fmt.Errorf("%w: close previous cycle: %v", ErrStoreUnavailable, err)
		}
	}

	record := models.CycleRecord{UserID: userID, StartDate: start}
	if err := service.records.Create(&record); err != nil {
		return models.CycleRecord{}, fmt.Errorf("%w: create cycle record: %v", ErrStoreUnavailable, err)
	}
	return record, nil
}

// CycleLengthHistory returns completed cycle lengths oldest-first, for trend
// display.
func (service *CycleService) CycleLengthHistory(userID uint) ([]int, error) {
	history, err := service.records.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list cycle history: %v", ErrStoreUnavailable, err)
	}

	lengths := make([]int, 0, len(history))
	for index := len(history) - 1; index >= 0; index-- {
		if history[index].CycleLength != nil {
			lengths = append(lengths, *history[index].CycleLength)
		}
	}
	return lengths, nil
}

func (service *CycleService) ActiveUserIDs() ([]uint, error) {
	userIDs, err := service.records.ListUserIDs()
	if err != nil {
		return nil, fmt.Errorf("%w: list user ids: %v", ErrStoreUnavailable, err)
	}
	return userIDs, nil
}
