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

//go:generate mockgen -source=pack.go -destination=mocks/pack_mock.go -package=mocks

const (
	MinEstimateMinutes = 1
	MaxEstimateMinutes = 120
)

// PackRepository определяет контракт хранилища паков
type PackRepository interface {
	// Create возвращает ErrNotFound, если родительского события нет
	Create(ctx context.Context, pack *models.Pack) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Pack, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Pack, error)
	ListByEvents(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID][]*models.Pack, error)
	// Set* меняют только свои поля одной операцией и возвращают пак после изменения
	SetStage(ctx context.Context, id uuid.UUID, stage models.Stage, at time.Time) (*models.Pack, error)
	SetEstimate(ctx context.Context, id uuid.UUID, readyAt *time.Time) (*models.Pack, error)
	// SetRunnerETA пишет RunnerETAToLab для этапа 3 и RunnerETAToClinical для этапа 5
	SetRunnerETA(ctx context.Context, id uuid.UUID, stage models.Stage, arrival time.Time) (*models.Pack, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ArrivalEstimator считает время прибытия участника к точке
type ArrivalEstimator interface {
	EstimateArrival(ctx context.Context, participantID string, toLat, toLng float64) (*int, error)
}

// CreatePackInput - данные для создания пака
type CreatePackInput struct {
	Name        string
	Composition string
	FFP         int
	Cryo        int
	Platelets   int
}

// PackService определяет контракт трекера паков
type PackService interface {
	CreatePack(ctx context.Context, eventID uuid.UUID, input CreatePackInput) (*models.Pack, error)
	GetPack(ctx context.Context, id uuid.UUID) (*models.Pack, error)
	ListPacks(ctx context.Context, eventID uuid.UUID) ([]*models.Pack, error)
	SetPackStage(ctx context.Context, id uuid.UUID, stage int) (*models.Pack, error)
	SetPackEstimate(ctx context.Context, id uuid.UUID, minutes *int) (*models.Pack, error)
	RefreshRunnerETA(ctx context.Context, id uuid.UUID, toLat, toLng float64) (*models.Pack, *int, error)
	DeletePack(ctx context.Context, id uuid.UUID) error
}

type packService struct {
	packs     PackRepository
	events    EventRepository
	eta       ArrivalEstimator
	publisher webhook.Publisher
	clock     Clock
	logger    *logrus.Logger
}

func NewPackService(packs PackRepository, events EventRepository, eta ArrivalEstimator, publisher webhook.Publisher, clock Clock, logger *logrus.Logger) PackService {
	return &packService{
		packs:     packs,
		events:    events,
		eta:       eta,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// CreatePack создает пак на первом этапе. Активность события не проверяется.
func (s *packService) CreatePack(ctx context.Context, eventID uuid.UUID, input CreatePackInput) (*models.Pack, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "pack",
		"method":   "CreatePack",
		"event_id": eventID,
		"name":     input.Name,
	})
	log.Info("Attempting to create a new pack")

	if err := validatePackInput(input); err != nil {
		log.WithError(err).Warn("Rejected pack creation")
		return nil, err
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Warn("Parent event not found")
			return nil, err
		}
		log.WithError(err).Error("Failed to get parent event in repository")
		return nil, fmt.Errorf("service: could not create pack: %w", err)
	}

	now := s.clock.Now()
	pack := &models.Pack{
		ID:          uuid.New(),
		EventID:     eventID,
		Name:        input.Name,
		Composition: input.Composition,
		FFP:         input.FFP,
		Cryo:        input.Cryo,
		Platelets:   input.Platelets,
		CreatedAt:   now,
	}
	pack.EnterStage(models.StageOrderReceived, now)

	if err := s.packs.Create(ctx, pack); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Warn("Parent event removed before pack was stored")
			return nil, err
		}
		log.WithError(err).Error("Failed to create pack in repository")
		return nil, fmt.Errorf("service: could not create pack: %w", err)
	}

	log.WithField("pack_id", pack.ID).Info("Pack created successfully")
	s.notify(ctx, log, webhook.ChangeEvent{Type: webhook.PackCreated, EventID: &eventID, PackID: &pack.ID, Stage: int(pack.CurrentStage)})
	return pack, nil
}

// GetPack возвращает пак по ID
func (s *packService) GetPack(ctx context.Context, id uuid.UUID) (*models.Pack, error) {
	pack, err := s.packs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not get pack: %w", err)
	}
	return pack, nil
}

// ListPacks возвращает паки события в порядке создания
func (s *packService) ListPacks(ctx context.Context, eventID uuid.UUID) ([]*models.Pack, error) {
	packs, err := s.packs.ListByEvent(ctx, eventID)
	if err != nil {
		s.logger.WithError(err).WithField("event_id", eventID).Error("Failed to list packs from repository")
		return nil, fmt.Errorf("service: could not list packs: %w", err)
	}
	return packs, nil
}

// SetPackStage переводит пак на любой этап 1..6, в том числе назад.
// Отметки времени других этапов сохраняются.
func (s *packService) SetPackStage(ctx context.Context, id uuid.UUID, stage int) (*models.Pack, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "pack",
		"method":  "SetPackStage",
		"pack_id": id,
		"stage":   stage,
	})
	log.Info("Attempting to set pack stage")

	target := models.Stage(stage)
	if !target.Valid() {
		err := models.NewRangeError("stage", stage, int(models.MinStage), int(models.MaxStage))
		log.WithError(err).Warn("Rejected stage change")
		return nil, err
	}

	pack, err := s.packs.SetStage(ctx, id, target, s.clock.Now())
	if err != nil {
		return nil, s.writeFailed(log, "stage", err)
	}

	log.WithField("to_stage", target.String()).Info("Pack stage updated successfully")
	s.notify(ctx, log, webhook.ChangeEvent{Type: webhook.PackStageChanged, EventID: &pack.EventID, PackID: &pack.ID, Stage: stage})
	return pack, nil
}

// SetPackEstimate задает расчетное время готовности; nil очищает его
func (s *packService) SetPackEstimate(ctx context.Context, id uuid.UUID, minutes *int) (*models.Pack, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "pack",
		"method":  "SetPackEstimate",
		"pack_id": id,
	})
	if minutes != nil {
		log = log.WithField("minutes", *minutes)
	}
	log.Info("Attempting to set pack estimate")

	if minutes != nil && (*minutes < MinEstimateMinutes || *minutes > MaxEstimateMinutes) {
		err := models.NewRangeError("minutes", *minutes, MinEstimateMinutes, MaxEstimateMinutes)
		log.WithError(err).Warn("Rejected estimate")
		return nil, err
	}

	var readyAt *time.Time
	if minutes != nil {
		ready := s.clock.Now().Add(time.Duration(*minutes) * time.Minute)
		readyAt = &ready
	}

	pack, err := s.packs.SetEstimate(ctx, id, readyAt)
	if err != nil {
		return nil, s.writeFailed(log, "estimate", err)
	}

	log.Info("Pack estimate updated successfully")
	s.notify(ctx, log, webhook.ChangeEvent{Type: webhook.PackEstimateChanged, EventID: &pack.EventID, PackID: &pack.ID})
	return pack, nil
}

// RefreshRunnerETA пересчитывает время прибытия назначенного бегуна.
// На этапе 3 результат пишется в RunnerETAToLab, на этапе 5 - в RunnerETAToClinical.
// На остальных этапах, без бегуна или без его координат пак не меняется и минуты равны nil.
func (s *packService) RefreshRunnerETA(ctx context.Context, id uuid.UUID, toLat, toLng float64) (*models.Pack, *int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "pack",
		"method":  "RefreshRunnerETA",
		"pack_id": id,
	})

	pack, err := s.load(ctx, log, id)
	if err != nil {
		return nil, nil, err
	}
	if pack.CurrentStage != models.StageEnRouteToLab && pack.CurrentStage != models.StageEnRouteToClinical {
		log.WithField("stage", pack.CurrentStage.String()).Debug("Runner is not en route, nothing to estimate")
		return pack, nil, nil
	}

	event, err := s.events.GetByID(ctx, pack.EventID)
	if err != nil {
		log.WithError(err).Error("Failed to get parent event in repository")
		return nil, nil, fmt.Errorf("service: could not refresh runner eta: %w", err)
	}
	if event.AssignedRunnerID == nil {
		log.Debug("No runner assigned")
		return pack, nil, nil
	}

	minutes, err := s.eta.EstimateArrival(ctx, *event.AssignedRunnerID, toLat, toLng)
	if err != nil {
		log.WithError(err).Error("Failed to estimate runner arrival")
		return nil, nil, fmt.Errorf("service: could not refresh runner eta: %w", err)
	}
	if minutes == nil {
		log.WithField("runner_id", *event.AssignedRunnerID).Debug("Runner location unknown")
		return pack, nil, nil
	}

	arrival := s.clock.Now().Add(time.Duration(*minutes) * time.Minute)
	updated, err := s.packs.SetRunnerETA(ctx, id, pack.CurrentStage, arrival)
	if err != nil {
		return nil, nil, s.writeFailed(log, "runner eta", err)
	}
	pack = updated

	log.WithField("minutes", *minutes).Info("Runner ETA updated successfully")
	s.notify(ctx, log, webhook.ChangeEvent{Type: webhook.PackRunnerETAChanged, EventID: &pack.EventID, PackID: &pack.ID, Stage: int(pack.CurrentStage)})
	return pack, minutes, nil
}

// DeletePack удаляет пак
func (s *packService) DeletePack(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "pack",
		"method":  "DeletePack",
		"pack_id": id,
	})
	log.Info("Attempting to delete pack")

	pack, err := s.load(ctx, log, id)
	if err != nil {
		return err
	}
	if err := s.packs.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Warn("Attempted to delete a non-existent pack")
			return err
		}
		log.WithError(err).Error("Failed to delete pack in repository")
		return fmt.Errorf("service: could not delete pack: %w", err)
	}

	log.Info("Pack deleted successfully")
	s.notify(ctx, log, webhook.ChangeEvent{Type: webhook.PackDeleted, EventID: &pack.EventID, PackID: &id})
	return nil
}

func (s *packService) load(ctx context.Context, log *logrus.Entry, id uuid.UUID) (*models.Pack, error) {
	pack, err := s.packs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Warn("Pack not found")
			return nil, err
		}
		log.WithError(err).Error("Failed to get pack in repository")
		return nil, fmt.Errorf("service: could not get pack: %w", err)
	}
	return pack, nil
}

// writeFailed логирует ошибку записи поля пака и оборачивает ее
func (s *packService) writeFailed(log *logrus.Entry, field string, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		log.WithError(err).Warn("Pack not found")
		return err
	}
	log.WithError(err).Errorf("Failed to update pack %s in repository", field)
	return fmt.Errorf("service: could not update pack %s: %w", field, err)
}

func (s *packService) notify(ctx context.Context, log *logrus.Entry, change webhook.ChangeEvent) {
	publish(ctx, s.publisher, s.clock, log, change)
}

func validatePackInput(input CreatePackInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return models.NewValidationError("name", "is required")
	}
	counts := []struct {
		field string
		value int
	}{
		{"ffp", input.FFP},
		{"cryo", input.Cryo},
		{"platelets", input.Platelets},
	}
	for _, c := range counts {
		if c.value < 0 {
			return models.NewValidationError(c.field, "must not be negative")
		}
	}
	return nil
}
