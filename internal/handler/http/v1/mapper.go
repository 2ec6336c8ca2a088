package v1

import (
	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/service"
)

// DTOToPackInput преобразует DTO создания пака во входные данные сервиса
func DTOToPackInput(dto CreatePackRequest) service.CreatePackInput {
	return service.CreatePackInput{
		Name:        dto.Name,
		Composition: dto.Composition,
		FFP:         dto.FFP,
		Cryo:        dto.Cryo,
		Platelets:   dto.Platelets,
	}
}

// DTOToLocationInput преобразует DTO позиции во входные данные сервиса
func DTOToLocationInput(participantID string, dto UpsertLocationRequest) service.UpsertLocationInput {
	return service.UpsertLocationInput{
		ParticipantID: participantID,
		UserType:      dto.UserType,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		Accuracy:      dto.Accuracy,
	}
}

// ModelToEventResponse преобразует доменную модель в DTO для ответа
func ModelToEventResponse(model *models.Event) *EventResponse {
	history := make([]LocationChangeResponse, len(model.LocationHistory))
	for i, h := range model.LocationHistory {
		history[i] = LocationChangeResponse{
			Timestamp:    h.Timestamp,
			FromLocation: h.FromLocation,
			ToLocation:   h.ToLocation,
		}
	}
	return &EventResponse{
		ID:                  model.ID,
		ActivationTime:      model.ActivationTime,
		LabType:             model.LabType,
		Location:            model.Location,
		PatientMRN:          model.PatientMRN,
		OriginalLocation:    model.OriginalLocation,
		LocationHistory:     history,
		AssignedRunnerID:    model.AssignedRunnerID,
		AssignedClinicianID: model.AssignedClinicianID,
		IsActive:            model.IsActive,
		DeactivationTime:    model.DeactivationTime,
		Packs:               ModelsToPackResponses(model.Packs),
	}
}

// ModelsToEventResponses преобразует слайс моделей в слайс DTO
func ModelsToEventResponses(models []*models.Event) []*EventResponse {
	responses := make([]*EventResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToEventResponse(model)
	}
	return responses
}

func ModelToPackResponse(model *models.Pack) *PackResponse {
	return &PackResponse{
		ID:                   model.ID,
		EventID:              model.EventID,
		Name:                 model.Name,
		Composition:          model.Composition,
		FFP:                  model.FFP,
		Cryo:                 model.Cryo,
		Platelets:            model.Platelets,
		CurrentStage:         int(model.CurrentStage),
		StageName:            model.CurrentStage.String(),
		EstimatedReadyTime:   model.EstimatedReadyTime,
		OrderReceivedAt:      model.OrderReceivedAt,
		ReadyForCollectionAt: model.ReadyForCollectionAt,
		EnRouteToLabAt:       model.EnRouteToLabAt,
		CollectedAt:          model.CollectedAt,
		EnRouteToClinicalAt:  model.EnRouteToClinicalAt,
		ArrivedAt:            model.ArrivedAt,
		RunnerETAToLab:       model.RunnerETAToLab,
		RunnerETAToClinical:  model.RunnerETAToClinical,
	}
}

func ModelsToPackResponses(models []*models.Pack) []*PackResponse {
	responses := make([]*PackResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToPackResponse(model)
	}
	return responses
}

func ModelToLocationResponse(model *models.ParticipantLocation) *LocationResponse {
	return &LocationResponse{
		ParticipantID: model.ParticipantID,
		UserType:      model.UserType,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		Accuracy:      model.Accuracy,
		LastUpdated:   model.LastUpdated,
		IsActive:      model.IsActive,
	}
}
