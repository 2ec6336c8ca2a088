package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/service"
	"github.com/shenikar/transfusion_coordinator/internal/service/mocks"
	"github.com/shenikar/transfusion_coordinator/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLocationService(t *testing.T) (service.LocationService, *mocks.MockLocationRepository, *fakeClock) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLocationRepository(ctrl)
	clock := newFakeClock()

	svc := service.NewLocationService(repo, webhook.NopPublisher{}, clock, newTestLogger())
	return svc, repo, clock
}

func TestUpsertLocation_Success(t *testing.T) {
	svc, repo, clock := newTestLocationService(t)
	ctx := context.Background()

	repo.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, l *models.ParticipantLocation) error {
			assert.Equal(t, "runner-1", l.ParticipantID)
			assert.Equal(t, "51.5007", l.Latitude)
			assert.Equal(t, clock.Now(), l.LastUpdated)
			assert.True(t, l.IsActive)
			return nil
		}).
		Times(1)

	location, err := svc.UpsertLocation(ctx, service.UpsertLocationInput{
		ParticipantID: "runner-1",
		UserType:      "runner",
		Latitude:      " 51.5007 ",
		Longitude:     "-0.1246",
	})

	require.NoError(t, err)
	assert.Equal(t, "-0.1246", location.Longitude)
}

func TestUpsertLocation_ValidationError(t *testing.T) {
	svc, repo, _ := newTestLocationService(t)
	negative := -1.0

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	base := service.UpsertLocationInput{ParticipantID: "p", UserType: "runner", Latitude: "10", Longitude: "20"}
	cases := []struct {
		name   string
		mutate func(in *service.UpsertLocationInput)
		field  string
	}{
		{"blank participant", func(in *service.UpsertLocationInput) { in.ParticipantID = "" }, "participant_id"},
		{"blank user type", func(in *service.UpsertLocationInput) { in.UserType = " " }, "user_type"},
		{"latitude not a number", func(in *service.UpsertLocationInput) { in.Latitude = "north" }, "latitude"},
		{"latitude out of range", func(in *service.UpsertLocationInput) { in.Latitude = "90.5" }, "latitude"},
		{"latitude NaN", func(in *service.UpsertLocationInput) { in.Latitude = "NaN" }, "latitude"},
		{"longitude out of range", func(in *service.UpsertLocationInput) { in.Longitude = "-180.01" }, "longitude"},
		{"negative accuracy", func(in *service.UpsertLocationInput) { in.Accuracy = &negative }, "accuracy"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)

			_, err := svc.UpsertLocation(context.Background(), input)

			require.ErrorIs(t, err, models.ErrValidation)
			var vErr *models.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestEstimateArrival_MalformedStoredLocation(t *testing.T) {
	svc, repo, _ := newTestLocationService(t)
	ctx := context.Background()

	repo.EXPECT().
		Get(ctx, "runner-1").
		Return(&models.ParticipantLocation{ParticipantID: "runner-1", Latitude: "bad", Longitude: "0"}, nil).
		Times(1)

	_, err := svc.EstimateArrival(ctx, "runner-1", 0, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "service: could not estimate arrival")
}

func TestGetLocation_RepositoryError(t *testing.T) {
	svc, repo, _ := newTestLocationService(t)
	dbErr := errors.New("connection reset")

	repo.EXPECT().Get(gomock.Any(), "runner-1").Return(nil, dbErr).Times(1)

	_, err := svc.GetLocation(context.Background(), "runner-1")

	assert.ErrorIs(t, err, dbErr)
}

func TestExpireStaleLocations_UsesCutoff(t *testing.T) {
	svc, repo, clock := newTestLocationService(t)
	ctx := context.Background()

	repo.EXPECT().MarkInactiveBefore(ctx, clock.Now().Add(-15*time.Minute)).Return(int64(3), nil).Times(1)

	count, err := svc.ExpireStaleLocations(ctx, 15*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
