package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли, которые можно назначить на событие
const (
	RoleRunner    = "runner"
	RoleClinician = "clinician"
)

// Event - активация протокола массивной трансфузии
type Event struct {
	ID                  uuid.UUID        `json:"id"`
	ActivationTime      time.Time        `json:"activation_time"`
	LabType             string           `json:"lab_type"`
	Location            string           `json:"location"`
	PatientMRN          string           `json:"patient_mrn"`
	OriginalLocation    string           `json:"original_location"`
	LocationHistory     []LocationChange `json:"location_history"`
	AssignedRunnerID    *string          `json:"assigned_runner_id,omitempty"`
	AssignedClinicianID *string          `json:"assigned_clinician_id,omitempty"`
	IsActive            bool             `json:"is_active"`
	DeactivationTime    *time.Time       `json:"deactivation_time,omitempty"`
	Packs               []*Pack          `json:"packs,omitempty"`
}

// LocationChange - запись в истории перемещений события
type LocationChange struct {
	Timestamp    time.Time `json:"timestamp"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
}

// Clone возвращает глубокую копию события вместе с паками
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	c.LocationHistory = append([]LocationChange(nil), e.LocationHistory...)
	c.AssignedRunnerID = cloneString(e.AssignedRunnerID)
	c.AssignedClinicianID = cloneString(e.AssignedClinicianID)
	c.DeactivationTime = cloneTime(e.DeactivationTime)
	if e.Packs != nil {
		c.Packs = make([]*Pack, len(e.Packs))
		for i, p := range e.Packs {
			c.Packs[i] = p.Clone()
		}
	}
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
