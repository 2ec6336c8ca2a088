package models

import (
	"time"
)

// ParticipantLocation - последняя известная позиция участника. Одна запись на участника.
type ParticipantLocation struct {
	ParticipantID string    `json:"participant_id"`
	UserType      string    `json:"user_type"`
	Latitude      string    `json:"latitude"`
	Longitude     string    `json:"longitude"`
	Accuracy      *float64  `json:"accuracy,omitempty"`
	LastUpdated   time.Time `json:"last_updated"`
	IsActive      bool      `json:"is_active"`
}
