package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateEventRequest DTO для активации события
// @Description DTO для активации события
type CreateEventRequest struct {
	LabType    string `json:"lab_type" validate:"required,max=64"`
	Location   string `json:"location" validate:"required,max=255"`
	PatientMRN string `json:"patient_mrn" validate:"required,max=64"`
}

// AssignParticipantRequest DTO для назначения участника
// @Description DTO для назначения участника
type AssignParticipantRequest struct {
	Role          string `json:"role" validate:"required,oneof=runner clinician"`
	ParticipantID string `json:"participant_id" validate:"required"`
}

// UpdateEventLocationRequest DTO для переноса события
// @Description DTO для переноса события
type UpdateEventLocationRequest struct {
	Location string `json:"location" validate:"required,max=255"`
}

// LocationChangeResponse DTO записи истории перемещений
type LocationChangeResponse struct {
	Timestamp    time.Time `json:"timestamp"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
}

// EventResponse DTO для ответа с информацией о событии
// @Description DTO для ответа с информацией о событии
type EventResponse struct {
	ID                  uuid.UUID                `json:"id"`
	ActivationTime      time.Time                `json:"activation_time"`
	LabType             string                   `json:"lab_type"`
	Location            string                   `json:"location"`
	PatientMRN          string                   `json:"patient_mrn"`
	OriginalLocation    string                   `json:"original_location"`
	LocationHistory     []LocationChangeResponse `json:"location_history"`
	AssignedRunnerID    *string                  `json:"assigned_runner_id"`
	AssignedClinicianID *string                  `json:"assigned_clinician_id"`
	IsActive            bool                     `json:"is_active"`
	DeactivationTime    *time.Time               `json:"deactivation_time"`
	Packs               []*PackResponse          `json:"packs"`
}

// CreatePackRequest DTO для создания пака
// @Description DTO для создания пака
type CreatePackRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Composition string `json:"composition,omitempty"`
	FFP         int    `json:"ffp" validate:"gte=0"`
	Cryo        int    `json:"cryo" validate:"gte=0"`
	Platelets   int    `json:"platelets" validate:"gte=0"`
}

// SetPackStageRequest DTO для смены этапа. Диапазон проверяется сервисом.
// @Description DTO для смены этапа
type SetPackStageRequest struct {
	Stage *int `json:"stage" validate:"required"`
}

// SetPackEstimateRequest DTO для расчетного времени готовности; null очищает значение
// @Description DTO для расчетного времени готовности
type SetPackEstimateRequest struct {
	Minutes *int `json:"minutes"`
}

// CoordinatesRequest DTO с координатами цели
// @Description DTO с координатами цели
type CoordinatesRequest struct {
	Latitude  *float64 `json:"latitude" form:"lat" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" form:"lng" validate:"required,longitude"`
}

// PackResponse DTO для ответа с информацией о паке
// @Description DTO для ответа с информацией о паке
type PackResponse struct {
	ID                   uuid.UUID  `json:"id"`
	EventID              uuid.UUID  `json:"event_id"`
	Name                 string     `json:"name"`
	Composition          string     `json:"composition"`
	FFP                  int        `json:"ffp"`
	Cryo                 int        `json:"cryo"`
	Platelets            int        `json:"platelets"`
	CurrentStage         int        `json:"current_stage"`
	StageName            string     `json:"stage_name"`
	EstimatedReadyTime   *time.Time `json:"estimated_ready_time"`
	OrderReceivedAt      *time.Time `json:"order_received_at"`
	ReadyForCollectionAt *time.Time `json:"ready_for_collection_at"`
	EnRouteToLabAt       *time.Time `json:"en_route_to_lab_at"`
	CollectedAt          *time.Time `json:"collected_at"`
	EnRouteToClinicalAt  *time.Time `json:"en_route_to_clinical_at"`
	ArrivedAt            *time.Time `json:"arrived_at"`
	RunnerETAToLab       *time.Time `json:"runner_eta_to_lab"`
	RunnerETAToClinical  *time.Time `json:"runner_eta_to_clinical"`
}

// RunnerETAResponse DTO для ответа с пересчитанным ETA бегуна
// @Description DTO для ответа с пересчитанным ETA бегуна
type RunnerETAResponse struct {
	Minutes *int          `json:"minutes"`
	Pack    *PackResponse `json:"pack"`
}

// UpsertLocationRequest DTO для обновления позиции участника
// @Description DTO для обновления позиции участника
type UpsertLocationRequest struct {
	UserType  string   `json:"user_type" validate:"required"`
	Latitude  string   `json:"latitude" validate:"required,latitude"`
	Longitude string   `json:"longitude" validate:"required,longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
}

// LocationResponse DTO для ответа с позицией участника
// @Description DTO для ответа с позицией участника
type LocationResponse struct {
	ParticipantID string    `json:"participant_id"`
	UserType      string    `json:"user_type"`
	Latitude      string    `json:"latitude"`
	Longitude     string    `json:"longitude"`
	Accuracy      *float64  `json:"accuracy,omitempty"`
	LastUpdated   time.Time `json:"last_updated"`
	IsActive      bool      `json:"is_active"`
}

// ETAResponse DTO для ответа с оценкой времени прибытия; minutes = null, если позиция неизвестна
// @Description DTO для ответа с оценкой времени прибытия
type ETAResponse struct {
	Minutes *int `json:"minutes"`
}
