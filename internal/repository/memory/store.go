// Package memory - хранилище в памяти процесса. Используется по умолчанию и в тестах.
package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/transfusion_coordinator/internal/models"
)

// Store - общее состояние для репозиториев событий, паков и позиций.
// Все репозитории работают под одним мьютексом, поэтому каскадные операции атомарны.
type Store struct {
	mu        sync.RWMutex
	events    map[uuid.UUID]*models.Event
	packs     map[uuid.UUID]*models.Pack
	locations map[string]*models.ParticipantLocation
}

func NewStore() *Store {
	return &Store{
		events:    make(map[uuid.UUID]*models.Event),
		packs:     make(map[uuid.UUID]*models.Pack),
		locations: make(map[string]*models.ParticipantLocation),
	}
}
