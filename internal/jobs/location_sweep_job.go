package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shenikar/transfusion_coordinator/internal/service"
	"github.com/sirupsen/logrus"
)

// LocationSweepJob периодически помечает неактивными позиции участников,
// которые не обновлялись дольше staleAfter
type LocationSweepJob struct {
	locations  service.LocationService
	schedule   string
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *logrus.Entry
}

// NewLocationSweepJob создает задачу; schedule - выражение cron или дескриптор вида "@every 1m"
func NewLocationSweepJob(locations service.LocationService, schedule string, staleAfter time.Duration, logger *logrus.Logger) *LocationSweepJob {
	return &LocationSweepJob{
		locations:  locations,
		schedule:   schedule,
		staleAfter: staleAfter,
		cron:       cron.New(),
		logger:     logger.WithField("component", "location_sweep_job"),
	}
}

// Start регистрирует задачу и запускает планировщик
func (j *LocationSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return fmt.Errorf("failed to schedule location sweep %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.schedule).Info("Location sweep job started")
	return nil
}

// Run выполняет один проход
func (j *LocationSweepJob) Run() {
	if _, err := j.locations.ExpireStaleLocations(context.Background(), j.staleAfter); err != nil {
		j.logger.WithError(err).Error("Location sweep failed")
	}
}

// Stop останавливает планировщик и дожидается текущего прохода
func (j *LocationSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Location sweep job stopped")
}
