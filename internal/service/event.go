package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=event.go -destination=mocks/event_mock.go -package=mocks

// EventRepository определяет контракт хранилища событий
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListActive(ctx context.Context) ([]*models.Event, error)
	ListAll(ctx context.Context) ([]*models.Event, error)
	// Assign меняет только поле назначения для роли. ErrNotFound, если события нет.
	Assign(ctx context.Context, id uuid.UUID, role, participantID string) error
	// Deactivate снимает флаг активности и ставит время деактивации, не трогая остальные поля
	Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error
	// UpdateLocation атомарно дописывает запись в историю и меняет текущую локацию
	UpdateLocation(ctx context.Context, id uuid.UUID, newLocation string, at time.Time) (*models.Event, error)
	// Delete удаляет паки события и само событие одной операцией
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventService определяет контракт реестра событий
type EventService interface {
	CreateEvent(ctx context.Context, labType, location, patientMRN string) (*models.Event, error)
	ListActiveEvents(ctx context.Context) ([]*models.Event, error)
	GetActiveEvent(ctx context.Context) (*models.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListEventsForAudit(ctx context.Context) ([]*models.Event, error)
	AssignParticipant(ctx context.Context, id uuid.UUID, role, participantID string) error
	UpdateEventLocation(ctx context.Context, id uuid.UUID, newLocation string) (*models.Event, error)
	DeactivateEvent(ctx context.Context, id uuid.UUID) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type eventService struct {
	events    EventRepository
	packs     PackRepository
	publisher webhook.Publisher
	clock     Clock
	logger    *logrus.Logger
}

func NewEventService(events EventRepository, packs PackRepository, publisher webhook.Publisher, clock Clock, logger *logrus.Logger) EventService {
	return &eventService{
		events:    events,
		packs:     packs,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// CreateEvent создает новое активное событие
func (s *eventService) CreateEvent(ctx context.Context, labType, location, patientMRN string) (*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "CreateEvent",
		"lab_type": labType,
	})
	log.Info("Attempting to create a new event")

	required := []struct{ field, value string }{
		{"lab_type", labType},
		{"location", location},
		{"patient_mrn", patientMRN},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			err := models.NewValidationError(r.field, "is required")
			log.WithError(err).Warn("Rejected event creation")
			return nil, err
		}
	}

	event := &models.Event{
		ID:               uuid.New(),
		ActivationTime:   s.clock.Now(),
		LabType:          labType,
		Location:         location,
		PatientMRN:       patientMRN,
		OriginalLocation: location,
		LocationHistory:  []models.LocationChange{},
		IsActive:         true,
	}
	if err := s.events.Create(ctx, event); err != nil {
		log.WithError(err).Error("Failed to create event in repository")
		return nil, fmt.Errorf("service: could not create event: %w", err)
	}

	log.WithField("event_id", event.ID).Info("Event created successfully")
	s.notify(ctx, log, webhook.ChangeEvent{Type: webhook.EventCreated, EventID: &event.ID})
	return event, nil
}

// ListActiveEvents возвращает активные события вместе с паками
func (s *eventService) ListActiveEvents(ctx context.Context) ([]*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "event",
		"method":  "ListActiveEvents",
	})

	events, err := s.events.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active events from repository")
		return nil, fmt.Errorf("service: could not list active events: %w", err)
	}
	if err := s.attachPacks(ctx, events); err != nil {
		log.WithError(err).Error("Failed to load packs for active events")
		return nil, err
	}

	log.WithField("count", len(events)).Debug("Active events listed successfully")
	return events, nil
}

// GetActiveEvent возвращает последнее активированное событие или nil.
// Паки подгружаются только для него.
func (s *eventService) GetActiveEvent(ctx context.Context) (*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "event",
		"method":  "GetActiveEvent",
	})

	events, err := s.events.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active events from repository")
		return nil, fmt.Errorf("service: could not get active event: %w", err)
	}
	if len(events) == 0 {
		log.Debug("No active event")
		return nil, nil
	}

	// список упорядочен по времени активации
	latest := events[len(events)-1]
	if err := s.attachPacks(ctx, []*models.Event{latest}); err != nil {
		log.WithError(err).Error("Failed to load packs for active event")
		return nil, err
	}
	return latest, nil
}

// GetEvent возвращает событие по ID. Неактивное событие считается отсутствующим.
func (s *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "GetEvent",
		"event_id": id,
	})

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil
		}
		log.WithError(err).Error("Failed to get event in repository")
		return nil, fmt.Errorf("service: could not get event: %w", err)
	}
	if !event.IsActive {
		log.Debug("Event is inactive, hiding it")
		return nil, nil
	}
	if err := s.attachPacks(ctx, []*models.Event{event}); err != nil {
		log.WithError(err).Error("Failed to load packs for event")
		return nil, err
	}
	return event, nil
}

// ListEventsForAudit возвращает все события, включая неактивные
func (s *eventService) ListEventsForAudit(ctx context.Context) ([]*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "event",
		"method":  "ListEventsForAudit",
	})
	log.Info("Listing events for audit")

	events, err := s.events.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list events from repository")
		return nil, fmt.Errorf("service: could not list events: %w", err)
	}
	if err := s.attachPacks(ctx, events); err != nil {
		log.WithError(err).Error("Failed to load packs for audit")
		return nil, err
	}

	log.WithField("count", len(events)).Info("Events listed successfully")
	return events, nil
}

// AssignParticipant перезаписывает назначенного бегуна или клинициста.
// Отсутствующее событие не является ошибкой.
func (s *eventService) AssignParticipant(ctx context.Context, id uuid.UUID, role, participantID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "event",
		"method":         "AssignParticipant",
		"event_id":       id,
		"role":           role,
		"participant_id": participantID,
	})
	log.Info("Attempting to assign participant")

	if role != models.RoleRunner && role != models.RoleClinician {
		return models.NewValidationError("role", "must be one of runner, clinician")
	}
	if strings.TrimSpace(participantID) == "" {
		return models.NewValidationError("participant_id", "is required")
	}

	if err := s.events.Assign(ctx, id, role, participantID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Event not found, assignment ignored")
			return nil
		}
		log.WithError(err).Error("Failed to assign participant in repository")
		return fmt.Errorf("service: could not assign participant: %w", err)
	}

	log.Info("Participant assigned successfully")
	s.notify(ctx, log, webhook.ChangeEvent{Type: webhook.EventAssigned, EventID: &id, ParticipantID: participantID})
	return nil
}

// UpdateEventLocation переносит событие и фиксирует переход в истории
func (s *eventService) UpdateEventLocation(ctx context.Context, id uuid.UUID, newLocation string) (*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "event",
		"method":       "UpdateEventLocation",
		"event_id":     id,
		"new_location": newLocation,
	})
	log.Info("Attempting to update event location")

	if strings.TrimSpace(newLocation) == "" {
		return nil, models.NewValidationError("location", "is required")
	}

	event, err := s.events.UpdateLocation(ctx, id, newLocation, s.clock.Now())
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Warn("Attempted to move a non-existent event")
			return nil, err
		}
		log.WithError(err).Error("Failed to update event location in repository")
		return nil, fmt.Errorf("service: could not update event location: %w", err)
	}
	if err := s.attachPacks(ctx, []*models.Event{event}); err != nil {
		log.WithError(err).Error("Failed to load packs for event")
		return nil, err
	}

	log.Info("Event location updated successfully")
	s.notify(ctx, log, webhook.ChangeEvent{Type: webhook.EventLocationChanged, EventID: &id})
	return event, nil
}

// DeactivateEvent деактивирует событие. Повторный вызов обновляет время деактивации.
func (s *eventService) DeactivateEvent(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "DeactivateEvent",
		"event_id": id,
	})
	log.Info("Attempting to deactivate event")

	if err := s.events.Deactivate(ctx, id, s.clock.Now()); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Event not found, deactivation ignored")
			return nil
		}
		log.WithError(err).Error("Failed to deactivate event in repository")
		return fmt.Errorf("service: could not deactivate event: %w", err)
	}

	log.Info("Event deactivated successfully")
	s.notify(ctx, log, webhook.ChangeEvent{Type: webhook.EventDeactivated, EventID: &id})
	return nil
}

// DeleteEvent безвозвратно удаляет событие вместе с его паками
func (s *eventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "DeleteEvent",
		"event_id": id,
	})
	log.Info("Attempting to delete event")

	if err := s.events.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete event in repository")
		return fmt.Errorf("service: could not delete event: %w", err)
	}

	log.Info("Event deleted successfully")
	s.notify(ctx, log, webhook.ChangeEvent{Type: webhook.EventDeleted, EventID: &id})
	return nil
}

// attachPacks подгружает паки для списка событий одним запросом
func (s *eventService) attachPacks(ctx context.Context, events []*models.Event) error {
	if len(events) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}

	byEvent, err := s.packs.ListByEvents(ctx, ids)
	if err != nil {
		return fmt.Errorf("service: could not load packs: %w", err)
	}
	for _, e := range events {
		e.Packs = byEvent[e.ID]
		if e.Packs == nil {
			e.Packs = []*models.Pack{}
		}
	}
	return nil
}

func (s *eventService) notify(ctx context.Context, log *logrus.Entry, change webhook.ChangeEvent) {
	publish(ctx, s.publisher, s.clock, log, change)
}

// publish отправляет уведомление об изменении. Ошибка доставки не отменяет уже выполненную операцию.
func publish(ctx context.Context, publisher webhook.Publisher, clock Clock, log *logrus.Entry, change webhook.ChangeEvent) {
	change.Timestamp = clock.Now()
	if err := publisher.Publish(ctx, change); err != nil {
		log.WithError(err).WithField("change_type", change.Type).Warn("Failed to publish change event")
	}
}
