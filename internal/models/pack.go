package models

import (
	"time"

	"github.com/google/uuid"
)

// Stage - этап обработки пака. Допустимые значения 1..6.
type Stage int

const (
	StageOrderReceived Stage = iota + 1
	StageReadyForCollection
	StageEnRouteToLab
	StageCollected
	StageEnRouteToClinical
	StageArrived
)

const (
	MinStage = StageOrderReceived
	MaxStage = StageArrived
)

var stageNames = map[Stage]string{
	StageOrderReceived:      "Order received",
	StageReadyForCollection: "Ready for collection",
	StageEnRouteToLab:       "Courier en route to source",
	StageCollected:          "Order collected",
	StageEnRouteToClinical:  "Courier en route to destination",
	StageArrived:            "Product arrived",
}

// Valid сообщает, входит ли значение в диапазон 1..6
func (s Stage) Valid() bool {
	return s >= MinStage && s <= MaxStage
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Pack - контейнер с компонентами крови, принадлежащий событию
type Pack struct {
	ID                   uuid.UUID  `json:"id"`
	EventID              uuid.UUID  `json:"event_id"`
	Name                 string     `json:"name"`
	Composition          string     `json:"composition"`
	FFP                  int        `json:"ffp"`
	Cryo                 int        `json:"cryo"`
	Platelets            int        `json:"platelets"`
	CurrentStage         Stage      `json:"current_stage"`
	EstimatedReadyTime   *time.Time `json:"estimated_ready_time,omitempty"`
	OrderReceivedAt      *time.Time `json:"order_received_at,omitempty"`
	ReadyForCollectionAt *time.Time `json:"ready_for_collection_at,omitempty"`
	EnRouteToLabAt       *time.Time `json:"en_route_to_lab_at,omitempty"`
	CollectedAt          *time.Time `json:"collected_at,omitempty"`
	EnRouteToClinicalAt  *time.Time `json:"en_route_to_clinical_at,omitempty"`
	ArrivedAt            *time.Time `json:"arrived_at,omitempty"`
	RunnerETAToLab       *time.Time `json:"runner_eta_to_lab,omitempty"`
	RunnerETAToClinical  *time.Time `json:"runner_eta_to_clinical,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// EnterStage переводит пак на этап s и перезаписывает отметку времени этого этапа.
// Отметки остальных этапов не трогаются, в том числе более поздних.
func (p *Pack) EnterStage(s Stage, at time.Time) {
	p.CurrentStage = s
	t := at
	switch s {
	case StageOrderReceived:
		p.OrderReceivedAt = &t
	case StageReadyForCollection:
		p.ReadyForCollectionAt = &t
	case StageEnRouteToLab:
		p.EnRouteToLabAt = &t
	case StageCollected:
		p.CollectedAt = &t
	case StageEnRouteToClinical:
		p.EnRouteToClinicalAt = &t
	case StageArrived:
		p.ArrivedAt = &t
	}
}

// StageTime возвращает отметку времени этапа s или nil
func (p *Pack) StageTime(s Stage) *time.Time {
	switch s {
	case StageOrderReceived:
		return p.OrderReceivedAt
	case StageReadyForCollection:
		return p.ReadyForCollectionAt
	case StageEnRouteToLab:
		return p.EnRouteToLabAt
	case StageCollected:
		return p.CollectedAt
	case StageEnRouteToClinical:
		return p.EnRouteToClinicalAt
	case StageArrived:
		return p.ArrivedAt
	}
	return nil
}

// Clone возвращает глубокую копию пака
func (p *Pack) Clone() *Pack {
	if p == nil {
		return nil
	}
	c := *p
	c.EstimatedReadyTime = cloneTime(p.EstimatedReadyTime)
	c.OrderReceivedAt = cloneTime(p.OrderReceivedAt)
	c.ReadyForCollectionAt = cloneTime(p.ReadyForCollectionAt)
	c.EnRouteToLabAt = cloneTime(p.EnRouteToLabAt)
	c.CollectedAt = cloneTime(p.CollectedAt)
	c.EnRouteToClinicalAt = cloneTime(p.EnRouteToClinicalAt)
	c.ArrivedAt = cloneTime(p.ArrivedAt)
	c.RunnerETAToLab = cloneTime(p.RunnerETAToLab)
	c.RunnerETAToClinical = cloneTime(p.RunnerETAToClinical)
	return &c
}
