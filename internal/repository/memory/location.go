package memory

import (
	"context"
	"time"

	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/service"
)

type LocationRepository struct {
	store *Store
}

func NewLocationRepository(store *Store) service.LocationRepository {
	return &LocationRepository{store: store}
}

func (r *LocationRepository) Upsert(_ context.Context, location *models.ParticipantLocation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.locations[location.ParticipantID] = cloneLocation(location)
	return nil
}

func (r *LocationRepository) Get(_ context.Context, participantID string) (*models.ParticipantLocation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	location, ok := r.store.locations[participantID]
	if !ok {
		return nil, models.NewNotFoundError("participant location", participantID)
	}
	return cloneLocation(location), nil
}

func (r *LocationRepository) MarkInactiveBefore(_ context.Context, before time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, location := range r.store.locations {
		if location.IsActive && location.LastUpdated.Before(before) {
			location.IsActive = false
			count++
		}
	}
	return count, nil
}

func cloneLocation(l *models.ParticipantLocation) *models.ParticipantLocation {
	c := *l
	if l.Accuracy != nil {
		a := *l.Accuracy
		c.Accuracy = &a
	}
	return &c
}
