package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"
	// канал грубой инвалидации: подписчики перечитывают всё состояние
	InvalidateChannel = "state_invalidated"
)

// Типы изменений
const (
	EventCreated         = "event.created"
	EventAssigned        = "event.assigned"
	EventLocationChanged = "event.location_changed"
	EventDeactivated     = "event.deactivated"
	EventDeleted         = "event.deleted"
	PackCreated          = "pack.created"
	PackStageChanged     = "pack.stage_changed"
	PackEstimateChanged  = "pack.estimate_changed"
	PackRunnerETAChanged = "pack.runner_eta_changed"
	PackDeleted          = "pack.deleted"
	LocationUpdated      = "location.updated"
)

// ChangeEvent - структура для данных вебхука об изменении состояния
type ChangeEvent struct {
	Type          string     `json:"type"`
	EventID       *uuid.UUID `json:"event_id,omitempty"`
	PackID        *uuid.UUID `json:"pack_id,omitempty"`
	ParticipantID string     `json:"participant_id,omitempty"`
	Stage         int        `json:"stage,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
}

// Publisher - интерфейс для публикации изменений
type Publisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь вебхуков и рассылает сигнал инвалидации
func (p *RedisPublisher) Publish(ctx context.Context, event ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	// LPUSH в очередь и PUBLISH в канал одним пайплайном
	_, err = p.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, webhookQueueKey, payload)
		pipe.Publish(ctx, InvalidateChannel, event.Type)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish change event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда уведомления отключены
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ChangeEvent) error {
	return nil
}
