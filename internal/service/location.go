package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=location.go -destination=mocks/location_mock.go -package=mocks

// LocationRepository определяет контракт хранилища позиций участников
type LocationRepository interface {
	// Upsert создает запись при первом обращении и перезаписывает ее в остальных случаях
	Upsert(ctx context.Context, location *models.ParticipantLocation) error
	Get(ctx context.Context, participantID string) (*models.ParticipantLocation, error)
	// MarkInactiveBefore снимает флаг активности с позиций, не обновлявшихся с момента before
	MarkInactiveBefore(ctx context.Context, before time.Time) (int64, error)
}

// UpsertLocationInput - данные о позиции участника
type UpsertLocationInput struct {
	ParticipantID string
	UserType      string
	Latitude      string
	Longitude     string
	Accuracy      *float64
}

// LocationService определяет контракт реестра позиций и расчета ETA
type LocationService interface {
	UpsertLocation(ctx context.Context, input UpsertLocationInput) (*models.ParticipantLocation, error)
	GetLocation(ctx context.Context, participantID string) (*models.ParticipantLocation, error)
	EstimateArrival(ctx context.Context, participantID string, toLat, toLng float64) (*int, error)
	ExpireStaleLocations(ctx context.Context, staleAfter time.Duration) (int64, error)
}

type locationService struct {
	repo      LocationRepository
	publisher webhook.Publisher
	clock     Clock
	logger    *logrus.Logger
}

func NewLocationService(repo LocationRepository, publisher webhook.Publisher, clock Clock, logger *logrus.Logger) LocationService {
	return &locationService{
		repo:      repo,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// UpsertLocation сохраняет текущую позицию участника
func (s *locationService) UpsertLocation(ctx context.Context, input UpsertLocationInput) (*models.ParticipantLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "location",
		"method":         "UpsertLocation",
		"participant_id": input.ParticipantID,
		"user_type":      input.UserType,
	})
	log.Debug("Updating participant location")

	if err := validateLocationInput(input); err != nil {
		log.WithError(err).Warn("Rejected location update")
		return nil, err
	}

	location := &models.ParticipantLocation{
		ParticipantID: input.ParticipantID,
		UserType:      input.UserType,
		Latitude:      strings.TrimSpace(input.Latitude),
		Longitude:     strings.TrimSpace(input.Longitude),
		Accuracy:      input.Accuracy,
		LastUpdated:   s.clock.Now(),
		IsActive:      true,
	}
	if err := s.repo.Upsert(ctx, location); err != nil {
		log.WithError(err).Error("Failed to upsert location in repository")
		return nil, fmt.Errorf("service: could not upsert location: %w", err)
	}

	log.Debug("Participant location updated successfully")
	publish(ctx, s.publisher, s.clock, log, webhook.ChangeEvent{Type: webhook.LocationUpdated, ParticipantID: input.ParticipantID})
	return location, nil
}

// GetLocation возвращает позицию участника или nil, если она неизвестна
func (s *locationService) GetLocation(ctx context.Context, participantID string) (*models.ParticipantLocation, error) {
	location, err := s.repo.Get(ctx, participantID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil
		}
		s.logger.WithError(err).WithField("participant_id", participantID).Error("Failed to get location in repository")
		return nil, fmt.Errorf("service: could not get location: %w", err)
	}
	return location, nil
}

// EstimateArrival считает минуты пути участника до точки.
// Возвращает nil, если позиция участника неизвестна. Результат не кешируется.
func (s *locationService) EstimateArrival(ctx context.Context, participantID string, toLat, toLng float64) (*int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "location",
		"method":         "EstimateArrival",
		"participant_id": participantID,
	})

	location, err := s.GetLocation(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		log.Debug("No stored location for participant")
		return nil, nil
	}

	fromLat, fromLng, err := parseCoordinates(location.Latitude, location.Longitude)
	if err != nil {
		log.WithError(err).Error("Stored location is malformed")
		return nil, fmt.Errorf("service: could not estimate arrival: %w", err)
	}

	minutes := TravelMinutes(HaversineKm(fromLat, fromLng, toLat, toLng))
	log.WithField("minutes", minutes).Debug("Arrival estimated")
	return &minutes, nil
}

// ExpireStaleLocations помечает неактивными позиции, которые давно не обновлялись
func (s *locationService) ExpireStaleLocations(ctx context.Context, staleAfter time.Duration) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "ExpireStaleLocations",
		"stale_after": staleAfter.String(),
	})

	count, err := s.repo.MarkInactiveBefore(ctx, s.clock.Now().Add(-staleAfter))
	if err != nil {
		log.WithError(err).Error("Failed to expire stale locations")
		return 0, fmt.Errorf("service: could not expire stale locations: %w", err)
	}
	if count > 0 {
		log.WithField("count", count).Info("Stale participant locations marked inactive")
	}
	return count, nil
}

func validateLocationInput(input UpsertLocationInput) error {
	if strings.TrimSpace(input.ParticipantID) == "" {
		return models.NewValidationError("participant_id", "is required")
	}
	if strings.TrimSpace(input.UserType) == "" {
		return models.NewValidationError("user_type", "is required")
	}
	if input.Accuracy != nil && *input.Accuracy < 0 {
		return models.NewValidationError("accuracy", "must not be negative")
	}
	_, _, err := parseCoordinates(input.Latitude, input.Longitude)
	return err
}

// parseCoordinates разбирает координаты в десятичных градусах
func parseCoordinates(latStr, lngStr string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
		return 0, 0, models.NewValidationError("latitude", "must be a decimal degree in -90..90")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil || math.IsNaN(lng) || lng < -180 || lng > 180 {
		return 0, 0, models.NewValidationError("longitude", "must be a decimal degree in -180..180")
	}
	return lat, lng, nil
}
