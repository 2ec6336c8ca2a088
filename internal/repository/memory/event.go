package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/service"
)

type EventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) service.EventRepository {
	return &EventRepository{store: store}
}

// Create сохраняет копию события
func (r *EventRepository) Create(_ context.Context, event *models.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := event.Clone()
	stored.Packs = nil
	r.store.events[event.ID] = stored
	return nil
}

func (r *EventRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	event, ok := r.store.events[id]
	if !ok {
		return nil, models.NewNotFoundError("event", id)
	}
	return event.Clone(), nil
}

// ListActive возвращает активные события по возрастанию времени активации
func (r *EventRepository) ListActive(_ context.Context) ([]*models.Event, error) {
	return r.list(func(e *models.Event) bool { return e.IsActive }), nil
}

// ListAll возвращает все события по возрастанию времени активации
func (r *EventRepository) ListAll(_ context.Context) ([]*models.Event, error) {
	return r.list(func(*models.Event) bool { return true }), nil
}

// Assign перезаписывает только поле назначения для роли
func (r *EventRepository) Assign(_ context.Context, id uuid.UUID, role, participantID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	event, ok := r.store.events[id]
	if !ok {
		return models.NewNotFoundError("event", id)
	}
	assignee := participantID
	switch role {
	case models.RoleRunner:
		event.AssignedRunnerID = &assignee
	case models.RoleClinician:
		event.AssignedClinicianID = &assignee
	default:
		return models.NewValidationError("role", "must be one of runner, clinician")
	}
	return nil
}

func (r *EventRepository) Deactivate(_ context.Context, id uuid.UUID, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	event, ok := r.store.events[id]
	if !ok {
		return models.NewNotFoundError("event", id)
	}
	event.IsActive = false
	event.DeactivationTime = &at
	return nil
}

func (r *EventRepository) UpdateLocation(_ context.Context, id uuid.UUID, newLocation string, at time.Time) (*models.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	event, ok := r.store.events[id]
	if !ok {
		return nil, models.NewNotFoundError("event", id)
	}
	event.LocationHistory = append(event.LocationHistory, models.LocationChange{
		Timestamp:    at,
		FromLocation: event.Location,
		ToLocation:   newLocation,
	})
	event.Location = newLocation
	return event.Clone(), nil
}

// Delete удаляет паки события и само событие. Отсутствие события не ошибка.
func (r *EventRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for packID, pack := range r.store.packs {
		if pack.EventID == id {
			delete(r.store.packs, packID)
		}
	}
	delete(r.store.events, id)
	return nil
}

func (r *EventRepository) list(match func(*models.Event) bool) []*models.Event {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := make([]*models.Event, 0, len(r.store.events))
	for _, e := range r.store.events {
		if match(e) {
			events = append(events, e.Clone())
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].ActivationTime.Equal(events[j].ActivationTime) {
			return events[i].ID.String() < events[j].ID.String()
		}
		return events[i].ActivationTime.Before(events[j].ActivationTime)
	})
	return events
}
