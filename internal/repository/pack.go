package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/service"
)

const packColumns = `
	id,
	event_id,
	name,
	composition,
	ffp,
	cryo,
	platelets,
	current_stage,
	estimated_ready_time,
	order_received_at,
	ready_for_collection_at,
	en_route_to_lab_at,
	collected_at,
	en_route_to_clinical_at,
	arrived_at,
	runner_eta_to_lab,
	runner_eta_to_clinical,
	created_at`

type PackRepository struct {
	db *pgxpool.Pool
}

func NewPackRepository(db *pgxpool.Pool) service.PackRepository {
	return &PackRepository{
		db: db,
	}
}

// Create создает запись о паке. Нарушение внешнего ключа означает, что события нет.
func (r *PackRepository) Create(ctx context.Context, pack *models.Pack) error {
	query := `
		INSERT INTO packs (` + packColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.db.Exec(ctx, query,
		pack.ID,
		pack.EventID,
		pack.Name,
		pack.Composition,
		pack.FFP,
		pack.Cryo,
		pack.Platelets,
		int(pack.CurrentStage),
		pack.EstimatedReadyTime,
		pack.OrderReceivedAt,
		pack.ReadyForCollectionAt,
		pack.EnRouteToLabAt,
		pack.CollectedAt,
		pack.EnRouteToClinicalAt,
		pack.ArrivedAt,
		pack.RunnerETAToLab,
		pack.RunnerETAToClinical,
		pack.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return models.NewNotFoundError("event", pack.EventID)
		}
		return fmt.Errorf("failed to create pack: %w", err)
	}
	return nil
}

// GetByID возвращает пак по его UUID
func (r *PackRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Pack, error) {
	query := `SELECT` + packColumns + `
		FROM packs
		WHERE id = $1;
	`
	pack, err := scanPack(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFoundError("pack", id)
		}
		return nil, fmt.Errorf("failed to get pack by id: %w", err)
	}
	return pack, nil
}

// ListByEvent возвращает паки события в порядке создания
func (r *PackRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Pack, error) {
	query := `SELECT` + packColumns + `
		FROM packs
		WHERE event_id = $1
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list packs: %w", err)
	}
	defer rows.Close()

	packs := make([]*models.Pack, 0)
	for rows.Next() {
		pack, err := scanPack(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pack row: %w", err)
		}
		packs = append(packs, pack)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return packs, nil
}

// ListByEvents возвращает паки нескольких событий, сгруппированные по event_id
func (r *PackRepository) ListByEvents(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID][]*models.Pack, error) {
	result := make(map[uuid.UUID][]*models.Pack, len(eventIDs))
	if len(eventIDs) == 0 {
		return result, nil
	}

	query := `SELECT` + packColumns + `
		FROM packs
		WHERE event_id = ANY($1)
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list packs for events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		pack, err := scanPack(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pack row: %w", err)
		}
		result[pack.EventID] = append(result[pack.EventID], pack)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return result, nil
}

// stageColumns - колонка отметки времени для каждого этапа
var stageColumns = map[models.Stage]string{
	models.StageOrderReceived:      "order_received_at",
	models.StageReadyForCollection: "ready_for_collection_at",
	models.StageEnRouteToLab:       "en_route_to_lab_at",
	models.StageCollected:          "collected_at",
	models.StageEnRouteToClinical:  "en_route_to_clinical_at",
	models.StageArrived:            "arrived_at",
}

// SetStage меняет текущий этап и отметку этого этапа. Прочие отметки остаются.
func (r *PackRepository) SetStage(ctx context.Context, id uuid.UUID, stage models.Stage, at time.Time) (*models.Pack, error) {
	column, ok := stageColumns[stage]
	if !ok {
		return nil, models.NewRangeError("stage", int(stage), int(models.MinStage), int(models.MaxStage))
	}
	query := fmt.Sprintf(`UPDATE packs SET current_stage = $2, %s = $3 WHERE id = $1 RETURNING`+packColumns+`;`, column)
	return r.updateReturning(ctx, id, "stage", query, id, int(stage), at)
}

// SetEstimate задает или очищает расчетное время готовности
func (r *PackRepository) SetEstimate(ctx context.Context, id uuid.UUID, readyAt *time.Time) (*models.Pack, error) {
	query := `UPDATE packs SET estimated_ready_time = $2 WHERE id = $1 RETURNING` + packColumns + `;`
	return r.updateReturning(ctx, id, "estimate", query, id, readyAt)
}

func (r *PackRepository) SetRunnerETA(ctx context.Context, id uuid.UUID, stage models.Stage, arrival time.Time) (*models.Pack, error) {
	var column string
	switch stage {
	case models.StageEnRouteToLab:
		column = "runner_eta_to_lab"
	case models.StageEnRouteToClinical:
		column = "runner_eta_to_clinical"
	default:
		return nil, models.NewValidationError("stage", "runner eta applies only to stages 3 and 5")
	}
	query := fmt.Sprintf(`UPDATE packs SET %s = $2 WHERE id = $1 RETURNING`+packColumns+`;`, column)
	return r.updateReturning(ctx, id, "runner eta", query, id, arrival)
}

func (r *PackRepository) updateReturning(ctx context.Context, id uuid.UUID, field, query string, args ...any) (*models.Pack, error) {
	pack, err := scanPack(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFoundError("pack", id)
		}
		return nil, fmt.Errorf("failed to update pack %s: %w", field, err)
	}
	return pack, nil
}

// Delete удаляет пак
func (r *PackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM packs WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pack: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.NewNotFoundError("pack", id)
	}
	return nil
}

func scanPack(row pgx.Row) (*models.Pack, error) {
	pack := &models.Pack{}
	var stage int
	err := row.Scan(
		&pack.ID,
		&pack.EventID,
		&pack.Name,
		&pack.Composition,
		&pack.FFP,
		&pack.Cryo,
		&pack.Platelets,
		&stage,
		&pack.EstimatedReadyTime,
		&pack.OrderReceivedAt,
		&pack.ReadyForCollectionAt,
		&pack.EnRouteToLabAt,
		&pack.CollectedAt,
		&pack.EnRouteToClinicalAt,
		&pack.ArrivedAt,
		&pack.RunnerETAToLab,
		&pack.RunnerETAToClinical,
		&pack.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	pack.CurrentStage = models.Stage(stage)
	return pack, nil
}
