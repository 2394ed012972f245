package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type StateReader interface {
	ActiveUserIDs() ([]uint, error)
	CurrentState(userID uint, now time.Time) (*CycleState, error)
}

// RefreshService periodically re-derives every user's cycle state so day
// counters roll over without a restart. The refresh is a pure re-read and is
// safe to run concurrently with itself.
type RefreshService struct {
	reader     StateReader
	log        *logrus.Logger
	cronEngine *cron.Cron
	cronSpec   string
}

func NewRefreshService(reader StateReader, log *logrus.Logger, location *time.Location, cronSpec string) *RefreshService {
	if location == nil {
		location = time.UTC
	}
	return &RefreshService{
		reader:     reader,
		log:        log,
		cronEngine: cron.New(cron.WithLocation(location)),
		cronSpec:   cronSpec,
	}
}

func (service *RefreshService) Start() error {
	if _, err := service.cronEngine.AddFunc(service.cronSpec, func() {
		service.RefreshAll(time.Now())
	}); err != nil {
		return err
	}
	service.cronEngine.Start()
	service.log.WithField("cron", service.cronSpec).Info("cycle state refresh scheduled")
	return nil
}

func (service *RefreshService) Stop() {
	ctx := service.cronEngine.Stop()
	<-ctx.Done()
	service.log.Info("cycle state refresh stopped")
}

// RefreshAll recomputes the snapshot for every user with history. Failures
// are logged and skipped: the next tick retries naturally, and a read failure
// for one user must not starve the rest.
func (service *RefreshService) RefreshAll(now time.Time) {
	userIDs, err := service.reader.ActiveUserIDs()
	if err != nil {
		service.log.WithError(err).Warn("refresh: list users failed")
		return
	}

	for _, userID := range userIDs {
		state, err := service.reader.CurrentState(userID, now)
		if err != nil {
			service.log.WithError(err).WithField("user_id", userID).Warn("refresh: state read failed")
			continue
		}
		if state == nil {
			continue
		}
		service.log.WithFields(logrus.Fields{
			"user_id":      userID,
			"day_of_cycle": state.DayOfCycle,
			"phase":        state.Phase,
		}).Debug("cycle state refreshed")
	}
}
