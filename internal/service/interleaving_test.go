package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/repository/memory"
	"github.com/shenikar/transfusion_coordinator/internal/service"
	"github.com/shenikar/transfusion_coordinator/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interleavedEvents выполняет hook один раз перед первым обращением сервиса к хранилищу,
// имитируя конкурирующий запрос между чтением и записью
type interleavedEvents struct {
	service.EventRepository
	hook func()
}

func (r *interleavedEvents) fire() {
	if r.hook != nil {
		hook := r.hook
		r.hook = nil
		hook()
	}
}

func (r *interleavedEvents) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := r.EventRepository.GetByID(ctx, id)
	r.fire()
	return event, err
}

func (r *interleavedEvents) Assign(ctx context.Context, id uuid.UUID, role, participantID string) error {
	r.fire()
	return r.EventRepository.Assign(ctx, id, role, participantID)
}

func (r *interleavedEvents) Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.fire()
	return r.EventRepository.Deactivate(ctx, id, at)
}

type interleavedPacks struct {
	service.PackRepository
	hook func()
}

func (r *interleavedPacks) fire() {
	if r.hook != nil {
		hook := r.hook
		r.hook = nil
		hook()
	}
}

func (r *interleavedPacks) GetByID(ctx context.Context, id uuid.UUID) (*models.Pack, error) {
	pack, err := r.PackRepository.GetByID(ctx, id)
	r.fire()
	return pack, err
}

func (r *interleavedPacks) SetStage(ctx context.Context, id uuid.UUID, stage models.Stage, at time.Time) (*models.Pack, error) {
	r.fire()
	return r.PackRepository.SetStage(ctx, id, stage, at)
}

func (r *interleavedPacks) SetEstimate(ctx context.Context, id uuid.UUID, readyAt *time.Time) (*models.Pack, error) {
	r.fire()
	return r.PackRepository.SetEstimate(ctx, id, readyAt)
}

func (r *interleavedPacks) SetRunnerETA(ctx context.Context, id uuid.UUID, stage models.Stage, arrival time.Time) (*models.Pack, error) {
	r.fire()
	return r.PackRepository.SetRunnerETA(ctx, id, stage, arrival)
}

// interleavedServices - сервисы, чьи хранилища вызывают hook, и "соседние" сервисы
// поверх того же хранилища без перехвата
type interleavedServices struct {
	*testServices
	other  *testServices
	events *interleavedEvents
	packs  *interleavedPacks
}

func newInterleavedServices(t *testing.T) *interleavedServices {
	t.Helper()

	store := memory.NewStore()
	clock := newFakeClock()
	logger := newTestLogger()
	publisher := webhook.NopPublisher{}

	eventRepo := memory.NewEventRepository(store)
	packRepo := memory.NewPackRepository(store)
	locations := service.NewLocationService(memory.NewLocationRepository(store), publisher, clock, logger)

	events := &interleavedEvents{EventRepository: eventRepo}
	packs := &interleavedPacks{PackRepository: packRepo}

	return &interleavedServices{
		testServices: &testServices{
			events:    service.NewEventService(events, packs, publisher, clock, logger),
			packs:     service.NewPackService(packs, events, locations, publisher, clock, logger),
			locations: locations,
			clock:     clock,
		},
		other: &testServices{
			events:    service.NewEventService(eventRepo, packRepo, publisher, clock, logger),
			packs:     service.NewPackService(packRepo, eventRepo, locations, publisher, clock, logger),
			locations: locations,
			clock:     clock,
		},
		events: events,
		packs:  packs,
	}
}

func auditEvent(t *testing.T, s *testServices, id uuid.UUID) *models.Event {
	t.Helper()
	events, err := s.events.ListEventsForAudit(context.Background())
	require.NoError(t, err)
	for _, e := range events {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("event %s not found in audit listing", id)
	return nil
}

func TestAssignParticipant_ConcurrentDeactivationSurvives(t *testing.T) {
	// Подготовка
	s := newInterleavedServices(t)
	ctx := context.Background()
	event := createTestEvent(t, s.other)
	s.clock.Advance(5 * time.Minute)
	deactivatedAt := s.clock.Now()

	s.events.hook = func() {
		require.NoError(t, s.other.events.DeactivateEvent(ctx, event.ID))
	}

	// Действие
	require.NoError(t, s.testServices.events.AssignParticipant(ctx, event.ID, models.RoleRunner, "runner-1"))

	// Проверки
	stored := auditEvent(t, s.other, event.ID)
	assert.False(t, stored.IsActive)
	require.NotNil(t, stored.DeactivationTime)
	assert.Equal(t, deactivatedAt, *stored.DeactivationTime)
	require.NotNil(t, stored.AssignedRunnerID)
	assert.Equal(t, "runner-1", *stored.AssignedRunnerID)
}

func TestDeactivateEvent_ConcurrentAssignmentSurvives(t *testing.T) {
	s := newInterleavedServices(t)
	ctx := context.Background()
	event := createTestEvent(t, s.other)

	s.events.hook = func() {
		require.NoError(t, s.other.events.AssignParticipant(ctx, event.ID, models.RoleClinician, "clin-1"))
	}

	require.NoError(t, s.testServices.events.DeactivateEvent(ctx, event.ID))

	stored := auditEvent(t, s.other, event.ID)
	assert.False(t, stored.IsActive)
	require.NotNil(t, stored.AssignedClinicianID)
	assert.Equal(t, "clin-1", *stored.AssignedClinicianID)
}

func TestSetPackEstimate_ConcurrentStageChangeSurvives(t *testing.T) {
	s := newInterleavedServices(t)
	ctx := context.Background()
	event := createTestEvent(t, s.other)
	pack := createTestPack(t, s.other, event.ID)

	s.packs.hook = func() {
		_, err := s.other.packs.SetPackStage(ctx, pack.ID, int(models.StageCollected))
		require.NoError(t, err)
	}

	_, err := s.testServices.packs.SetPackEstimate(ctx, pack.ID, intPtr(30))
	require.NoError(t, err)

	stored, err := s.other.packs.GetPack(ctx, pack.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageCollected, stored.CurrentStage)
	require.NotNil(t, stored.CollectedAt)
	require.NotNil(t, stored.EstimatedReadyTime)
	assert.Equal(t, s.clock.Now().Add(30*time.Minute), *stored.EstimatedReadyTime)
}

func TestSetPackStage_ConcurrentEstimateSurvives(t *testing.T) {
	s := newInterleavedServices(t)
	ctx := context.Background()
	event := createTestEvent(t, s.other)
	pack := createTestPack(t, s.other, event.ID)

	s.packs.hook = func() {
		_, err := s.other.packs.SetPackEstimate(ctx, pack.ID, intPtr(20))
		require.NoError(t, err)
	}

	_, err := s.testServices.packs.SetPackStage(ctx, pack.ID, int(models.StageReadyForCollection))
	require.NoError(t, err)

	stored, err := s.other.packs.GetPack(ctx, pack.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageReadyForCollection, stored.CurrentStage)
	require.NotNil(t, stored.EstimatedReadyTime)
}

func TestRefreshRunnerETA_ConcurrentEstimateSurvives(t *testing.T) {
	s := newInterleavedServices(t)
	ctx := context.Background()
	event := createTestEvent(t, s.other)
	pack := createTestPack(t, s.other, event.ID)
	require.NoError(t, s.other.events.AssignParticipant(ctx, event.ID, models.RoleRunner, "runner-1"))
	_, err := s.other.locations.UpsertLocation(ctx, service.UpsertLocationInput{
		ParticipantID: "runner-1", UserType: "runner", Latitude: "0", Longitude: "0",
	})
	require.NoError(t, err)
	_, err = s.other.packs.SetPackStage(ctx, pack.ID, int(models.StageEnRouteToLab))
	require.NoError(t, err)

	s.packs.hook = func() {
		_, err := s.other.packs.SetPackEstimate(ctx, pack.ID, intPtr(15))
		require.NoError(t, err)
	}

	_, minutes, err := s.testServices.packs.RefreshRunnerETA(ctx, pack.ID, 0, 0.0899322)
	require.NoError(t, err)
	require.NotNil(t, minutes)

	stored, err := s.other.packs.GetPack(ctx, pack.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RunnerETAToLab)
	require.NotNil(t, stored.EstimatedReadyTime)
	assert.Equal(t, models.StageEnRouteToLab, stored.CurrentStage)
}
