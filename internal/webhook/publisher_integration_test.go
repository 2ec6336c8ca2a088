//go:build integration

package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/transfusion_coordinator/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisPublisher_QueuesAndBroadcasts(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, InvalidateChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	eventID := uuid.New()
	change := ChangeEvent{Type: EventCreated, EventID: &eventID, Timestamp: time.Now().UTC()}

	require.NoError(t, NewRedisPublisher(client).Publish(ctx, change))

	raw, err := client.RPop(ctx, webhookQueueKey).Result()
	require.NoError(t, err)
	var queued ChangeEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &queued))
	assert.Equal(t, EventCreated, queued.Type)
	assert.Equal(t, eventID, *queued.EventID)

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, EventCreated, msg.Payload)
	case <-time.After(5 * time.Second):
		t.Fatal("invalidation message was not broadcast")
	}
}

func TestWorker_DeliversQueuedEvents(t *testing.T) {
	client := startRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan ChangeEvent, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var change ChangeEvent
		_ = json.NewDecoder(r.Body).Decode(&change)
		received <- change
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 1,
		WebhookBaseDelay:  time.Millisecond,
	}
	NewWorker(client, logger, cfg).Start(ctx)

	require.NoError(t, NewRedisPublisher(client).Publish(ctx, ChangeEvent{Type: PackDeleted, Timestamp: time.Now().UTC()}))

	select {
	case change := <-received:
		assert.Equal(t, PackDeleted, change.Type)
	case <-time.After(10 * time.Second):
		t.Fatal("webhook was not delivered")
	}
}
