package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/service"
)

type PackRepository struct {
	store *Store
}

func NewPackRepository(store *Store) service.PackRepository {
	return &PackRepository{store: store}
}

// Create сохраняет пак, если родительское событие существует
func (r *PackRepository) Create(_ context.Context, pack *models.Pack) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[pack.EventID]; !ok {
		return models.NewNotFoundError("event", pack.EventID)
	}
	r.store.packs[pack.ID] = pack.Clone()
	return nil
}

func (r *PackRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Pack, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	pack, ok := r.store.packs[id]
	if !ok {
		return nil, models.NewNotFoundError("pack", id)
	}
	return pack.Clone(), nil
}

func (r *PackRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Pack, error) {
	byEvent, err := r.ListByEvents(ctx, []uuid.UUID{eventID})
	if err != nil {
		return nil, err
	}
	packs := byEvent[eventID]
	if packs == nil {
		packs = []*models.Pack{}
	}
	return packs, nil
}

// ListByEvents группирует паки по событиям, внутри события - в порядке создания
func (r *PackRepository) ListByEvents(_ context.Context, eventIDs []uuid.UUID) (map[uuid.UUID][]*models.Pack, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[uuid.UUID]struct{}, len(eventIDs))
	for _, id := range eventIDs {
		wanted[id] = struct{}{}
	}

	result := make(map[uuid.UUID][]*models.Pack, len(eventIDs))
	for _, p := range r.store.packs {
		if _, ok := wanted[p.EventID]; ok {
			result[p.EventID] = append(result[p.EventID], p.Clone())
		}
	}
	for _, packs := range result {
		sortPacks(packs)
	}
	return result, nil
}

func (r *PackRepository) SetStage(_ context.Context, id uuid.UUID, stage models.Stage, at time.Time) (*models.Pack, error) {
	if !stage.Valid() {
		return nil, models.NewRangeError("stage", int(stage), int(models.MinStage), int(models.MaxStage))
	}
	return r.modify(id, func(p *models.Pack) {
		p.EnterStage(stage, at)
	})
}

func (r *PackRepository) SetEstimate(_ context.Context, id uuid.UUID, readyAt *time.Time) (*models.Pack, error) {
	return r.modify(id, func(p *models.Pack) {
		p.EstimatedReadyTime = nil
		if readyAt != nil {
			ready := *readyAt
			p.EstimatedReadyTime = &ready
		}
	})
}

func (r *PackRepository) SetRunnerETA(_ context.Context, id uuid.UUID, stage models.Stage, arrival time.Time) (*models.Pack, error) {
	if stage != models.StageEnRouteToLab && stage != models.StageEnRouteToClinical {
		return nil, models.NewValidationError("stage", "runner eta applies only to stages 3 and 5")
	}
	return r.modify(id, func(p *models.Pack) {
		if stage == models.StageEnRouteToLab {
			p.RunnerETAToLab = &arrival
		} else {
			p.RunnerETAToClinical = &arrival
		}
	})
}

// modify меняет сохраненный пак под блокировкой и возвращает его копию
func (r *PackRepository) modify(id uuid.UUID, change func(*models.Pack)) (*models.Pack, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	pack, ok := r.store.packs[id]
	if !ok {
		return nil, models.NewNotFoundError("pack", id)
	}
	change(pack)
	return pack.Clone(), nil
}

func (r *PackRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.packs[id]; !ok {
		return models.NewNotFoundError("pack", id)
	}
	delete(r.store.packs, id)
	return nil
}

func sortPacks(packs []*models.Pack) {
	sort.SliceStable(packs, func(i, j int) bool {
		if packs[i].CreatedAt.Equal(packs[j].CreatedAt) {
			return packs[i].ID.String() < packs[j].ID.String()
		}
		return packs[i].CreatedAt.Before(packs[j].CreatedAt)
	})
}
