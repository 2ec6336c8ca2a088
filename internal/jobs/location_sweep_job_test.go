package jobs

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shenikar/transfusion_coordinator/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestLocationSweepJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	locations := mocks.NewMockLocationService(ctrl)

	locations.EXPECT().ExpireStaleLocations(gomock.Any(), 10*time.Minute).Return(int64(2), nil).Times(1)
	locations.EXPECT().ExpireStaleLocations(gomock.Any(), 10*time.Minute).Return(int64(0), errors.New("db down")).Times(1)

	job := NewLocationSweepJob(locations, "@every 1m", 10*time.Minute, newTestLogger())

	// ошибка прохода только логируется
	job.Run()
	job.Run()
}

func TestLocationSweepJob_InvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	locations := mocks.NewMockLocationService(ctrl)

	job := NewLocationSweepJob(locations, "every minute please", time.Minute, newTestLogger())

	err := job.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to schedule location sweep")
}

func TestLocationSweepJob_RunsOnSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	locations := mocks.NewMockLocationService(ctrl)
	done := make(chan struct{}, 1)

	locations.EXPECT().
		ExpireStaleLocations(gomock.Any(), time.Minute).
		DoAndReturn(func(context.Context, time.Duration) (int64, error) {
			select {
			case done <- struct{}{}:
			default:
			}
			return 0, nil
		}).
		MinTimes(1)

	job := NewLocationSweepJob(locations, "@every 1s", time.Minute, newTestLogger())
	require.NoError(t, job.Start())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep did not run")
	}
	job.Stop()
}
