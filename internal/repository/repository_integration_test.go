//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/repository"
	"github.com/shenikar/transfusion_coordinator/internal/service"
	pgclient "github.com/shenikar/transfusion_coordinator/pkg/postgres"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RepositoryIntegrationTestSuite проверяет postgres-хранилище на реальной базе в контейнере
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *pgxpool.Pool
	events    service.EventRepository
	packs     service.PackRepository
	locations service.LocationRepository
}

func TestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}

func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("coordinator"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Require().NoError(pgclient.Migrate(dsn, "file://../../migrations"))

	db, err := pgclient.NewPostgresDB(ctx, dsn)
	s.Require().NoError(err)
	s.db = db

	s.events = repository.NewEventRepository(db)
	s.packs = repository.NewPackRepository(db)
	s.locations = repository.NewLocationRepository(db)
}

func (s *RepositoryIntegrationTestSuite) SetupTest() {
	_, err := s.db.Exec(context.Background(), "TRUNCATE TABLE packs, events, participant_locations")
	s.Require().NoError(err)
}

func (s *RepositoryIntegrationTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

// базовое время с точностью до микросекунд, как хранит timestamptz
var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func (s *RepositoryIntegrationTestSuite) createEvent(activatedAt time.Time, active bool) *models.Event {
	event := &models.Event{
		ID:               uuid.New(),
		ActivationTime:   activatedAt,
		LabType:          "Main lab",
		Location:         "ED Resus 1",
		PatientMRN:       "MRN-1",
		OriginalLocation: "ED Resus 1",
		IsActive:         active,
	}
	s.Require().NoError(s.events.Create(context.Background(), event))
	return event
}

func (s *RepositoryIntegrationTestSuite) createPack(eventID uuid.UUID, createdAt time.Time) *models.Pack {
	pack := &models.Pack{
		ID:          uuid.New(),
		EventID:     eventID,
		Name:        "Pack",
		Composition: "4 RBC",
		FFP:         4,
		CreatedAt:   createdAt,
	}
	pack.EnterStage(models.StageOrderReceived, createdAt)
	s.Require().NoError(s.packs.Create(context.Background(), pack))
	return pack
}

func (s *RepositoryIntegrationTestSuite) TestEvent_CreateAndGet() {
	ctx := context.Background()
	event := s.createEvent(t0, true)

	got, err := s.events.GetByID(ctx, event.ID)
	s.Require().NoError(err)
	s.Equal(event.LabType, got.LabType)
	s.True(event.ActivationTime.Equal(got.ActivationTime))
	s.NotNil(got.LocationHistory)
	s.Empty(got.LocationHistory)
	s.Nil(got.AssignedRunnerID)

	_, err = s.events.GetByID(ctx, uuid.New())
	s.ErrorIs(err, models.ErrNotFound)
}

func (s *RepositoryIntegrationTestSuite) TestEvent_ListOrdering() {
	ctx := context.Background()
	late := s.createEvent(t0.Add(time.Hour), true)
	inactive := s.createEvent(t0.Add(30*time.Minute), false)
	early := s.createEvent(t0, true)

	active, err := s.events.ListActive(ctx)
	s.Require().NoError(err)
	s.Require().Len(active, 2)
	s.Equal(early.ID, active[0].ID)
	s.Equal(late.ID, active[1].ID)

	all, err := s.events.ListAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(inactive.ID, all[1].ID)
}

func (s *RepositoryIntegrationTestSuite) TestEvent_UpdateLocationAppendsHistory() {
	ctx := context.Background()
	event := s.createEvent(t0, true)

	moved, err := s.events.UpdateLocation(ctx, event.ID, "OR 3", t0.Add(time.Minute))
	s.Require().NoError(err)
	moved, err = s.events.UpdateLocation(ctx, event.ID, "ICU 2", t0.Add(2*time.Minute))
	s.Require().NoError(err)

	s.Equal("ICU 2", moved.Location)
	s.Equal("ED Resus 1", moved.OriginalLocation)
	s.Require().Len(moved.LocationHistory, 2)
	s.Equal("ED Resus 1", moved.LocationHistory[0].FromLocation)
	s.Equal("OR 3", moved.LocationHistory[0].ToLocation)
	s.True(t0.Add(time.Minute).Equal(moved.LocationHistory[0].Timestamp))
	s.Equal("OR 3", moved.LocationHistory[1].FromLocation)

	_, err = s.events.UpdateLocation(ctx, uuid.New(), "OR 3", t0)
	s.ErrorIs(err, models.ErrNotFound)
}

func (s *RepositoryIntegrationTestSuite) TestEvent_AssignAndDeactivateDoNotTouchLocation() {
	ctx := context.Background()
	event := s.createEvent(t0, true)

	_, err := s.events.UpdateLocation(ctx, event.ID, "OR 3", t0.Add(time.Minute))
	s.Require().NoError(err)

	deactivated := t0.Add(time.Hour)
	s.Require().NoError(s.events.Deactivate(ctx, event.ID, deactivated))
	s.Require().NoError(s.events.Assign(ctx, event.ID, models.RoleRunner, "runner-1"))

	got, err := s.events.GetByID(ctx, event.ID)
	s.Require().NoError(err)
	s.Equal("OR 3", got.Location)
	s.Len(got.LocationHistory, 1)
	s.Equal("runner-1", *got.AssignedRunnerID)
	s.Nil(got.AssignedClinicianID)
	s.False(got.IsActive)
	s.True(deactivated.Equal(*got.DeactivationTime))

	s.ErrorIs(s.events.Assign(ctx, uuid.New(), models.RoleClinician, "clin-1"), models.ErrNotFound)
	s.ErrorIs(s.events.Deactivate(ctx, uuid.New(), t0), models.ErrNotFound)
	s.ErrorIs(s.events.Assign(ctx, event.ID, "surgeon", "x"), models.ErrValidation)
}

func (s *RepositoryIntegrationTestSuite) TestEvent_DeleteCascadesPacks() {
	ctx := context.Background()
	event := s.createEvent(t0, true)
	other := s.createEvent(t0, true)
	pack := s.createPack(event.ID, t0)
	foreign := s.createPack(other.ID, t0)

	s.Require().NoError(s.events.Delete(ctx, event.ID))

	_, err := s.events.GetByID(ctx, event.ID)
	s.ErrorIs(err, models.ErrNotFound)
	_, err = s.packs.GetByID(ctx, pack.ID)
	s.ErrorIs(err, models.ErrNotFound)
	_, err = s.packs.GetByID(ctx, foreign.ID)
	s.NoError(err)

	// повторное удаление безопасно
	s.NoError(s.events.Delete(ctx, event.ID))
}

func (s *RepositoryIntegrationTestSuite) TestPack_CreateWithoutEvent() {
	pack := &models.Pack{ID: uuid.New(), EventID: uuid.New(), Name: "Orphan", CurrentStage: models.StageOrderReceived, CreatedAt: t0}

	err := s.packs.Create(context.Background(), pack)

	s.ErrorIs(err, models.ErrNotFound)
}

func (s *RepositoryIntegrationTestSuite) TestPack_FieldWritesAndList() {
	ctx := context.Background()
	event := s.createEvent(t0, true)
	second := s.createPack(event.ID, t0.Add(time.Minute))
	first := s.createPack(event.ID, t0)

	ready := t0.Add(20 * time.Minute)
	_, err := s.packs.SetEstimate(ctx, second.ID, &ready)
	s.Require().NoError(err)
	_, err = s.packs.SetStage(ctx, second.ID, models.StageEnRouteToClinical, t0.Add(5*time.Minute))
	s.Require().NoError(err)
	updated, err := s.packs.SetRunnerETA(ctx, second.ID, models.StageEnRouteToClinical, t0.Add(9*time.Minute))
	s.Require().NoError(err)
	s.True(t0.Add(9 * time.Minute).Equal(*updated.RunnerETAToClinical))
	s.Nil(updated.RunnerETAToLab)

	list, err := s.packs.ListByEvent(ctx, event.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(first.ID, list[0].ID)
	s.Equal(second.ID, list[1].ID)
	s.Equal(models.StageEnRouteToClinical, list[1].CurrentStage)
	s.True(t0.Add(5 * time.Minute).Equal(*list[1].EnRouteToClinicalAt))
	s.True(ready.Equal(*list[1].EstimatedReadyTime))
	s.True(t0.Add(time.Minute).Equal(*list[1].OrderReceivedAt))

	grouped, err := s.packs.ListByEvents(ctx, []uuid.UUID{event.ID, uuid.New()})
	s.Require().NoError(err)
	s.Len(grouped[event.ID], 2)

	_, err = s.packs.SetStage(ctx, uuid.New(), models.StageCollected, t0)
	s.ErrorIs(err, models.ErrNotFound)
	_, err = s.packs.SetEstimate(ctx, uuid.New(), nil)
	s.ErrorIs(err, models.ErrNotFound)
	_, err = s.packs.SetRunnerETA(ctx, second.ID, models.StageCollected, t0)
	s.ErrorIs(err, models.ErrValidation)
}

func (s *RepositoryIntegrationTestSuite) TestPack_Delete() {
	ctx := context.Background()
	event := s.createEvent(t0, true)
	pack := s.createPack(event.ID, t0)

	s.Require().NoError(s.packs.Delete(ctx, pack.ID))
	s.ErrorIs(s.packs.Delete(ctx, pack.ID), models.ErrNotFound)
}

func (s *RepositoryIntegrationTestSuite) TestLocation_UpsertAndExpire() {
	ctx := context.Background()
	accuracy := 5.5

	s.Require().NoError(s.locations.Upsert(ctx, &models.ParticipantLocation{
		ParticipantID: "runner-1", UserType: "runner", Latitude: "51.5", Longitude: "-0.12",
		LastUpdated: t0, IsActive: true,
	}))
	s.Require().NoError(s.locations.Upsert(ctx, &models.ParticipantLocation{
		ParticipantID: "runner-1", UserType: "runner", Latitude: "51.6", Longitude: "-0.13",
		Accuracy: &accuracy, LastUpdated: t0.Add(time.Minute), IsActive: true,
	}))
	s.Require().NoError(s.locations.Upsert(ctx, &models.ParticipantLocation{
		ParticipantID: "clin-1", UserType: "clinician", Latitude: "0", Longitude: "0",
		LastUpdated: t0.Add(time.Hour), IsActive: true,
	}))

	got, err := s.locations.Get(ctx, "runner-1")
	s.Require().NoError(err)
	s.Equal("51.6", got.Latitude)
	s.Require().NotNil(got.Accuracy)
	s.Equal(accuracy, *got.Accuracy)

	count, err := s.locations.MarkInactiveBefore(ctx, t0.Add(30*time.Minute))
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	got, err = s.locations.Get(ctx, "runner-1")
	s.Require().NoError(err)
	s.False(got.IsActive)

	_, err = s.locations.Get(ctx, "nobody")
	s.ErrorIs(err, models.ErrNotFound)
}
