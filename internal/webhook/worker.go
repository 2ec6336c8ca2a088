package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/transfusion_coordinator/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader  = "X-Webhook-Signature"
	changeTypeHeader = "X-Change-Type"
)

// deliveryError - неуспешная попытка доставки. permanent означает, что повтор не поможет.
type deliveryError struct {
	status    int
	permanent bool
	err       error
}

func (e *deliveryError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("receiver responded with status %d", e.status)
}

func (e *deliveryError) Unwrap() error {
	return e.err
}

// Worker разбирает очередь изменений и пересылает их получателю
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(time.Duration)
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: time.Sleep,
	}
}

// Start запускает горутину, которая читает очередь до отмены ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.WithField("queue", webhookQueueKey).Info("Starting webhook worker...")
	go func() {
		for ctx.Err() == nil {
			change, payload, err := w.next(ctx)
			switch {
			case err == nil:
				w.deliver(ctx, change, payload)
			case errors.Is(err, context.Canceled):
			case errors.As(err, new(*json.SyntaxError)), errors.As(err, new(*json.UnmarshalTypeError)):
				// битую запись пропускаем, иначе она заблокирует очередь
				w.logger.WithError(err).WithField("payload", payload).Error("Failed to decode change event from Redis")
			default:
				w.logger.WithError(err).Error("Failed to pop change event from Redis")
				w.sleep(w.cfg.WebhookTimeout)
			}
		}
		w.logger.Info("Stopping webhook worker.")
	}()
}

// next блокируется до появления записи в очереди и декодирует ее
func (w *Worker) next(ctx context.Context) (ChangeEvent, string, error) {
	var change ChangeEvent
	// BRPOP с нулевым таймаутом ждет бесконечно; result[0] - ключ, result[1] - значение
	result, err := w.redisClient.BRPop(ctx, 0, webhookQueueKey).Result()
	if err != nil {
		return change, "", err
	}
	payload := result[1]
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		return change, payload, err
	}
	return change, payload, nil
}

// deliver отправляет запись на WEBHOOK_URL, удваивая паузу после каждой неудачи.
// Ответ 4xx (кроме 408 и 429) считается окончательным отказом.
func (w *Worker) deliver(ctx context.Context, change ChangeEvent, payload string) bool {
	log := changeLogger(w.logger, change)
	log.Debug("Processing change event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return false
	}

	delay := w.cfg.WebhookBaseDelay
	for attempt := 1; attempt <= w.cfg.WebhookMaxRetries; attempt++ {
		err := w.post(ctx, change.Type, payload)
		if err == nil {
			log.WithField("attempt", attempt).Info("Webhook delivered successfully.")
			return true
		}

		var failure *deliveryError
		if errors.As(err, &failure) && failure.permanent {
			log.WithError(err).Errorf("Webhook rejected by receiver with status %d, dropping change event.", failure.status)
			return false
		}
		if attempt == w.cfg.WebhookMaxRetries {
			log.WithError(err).Warn("Webhook attempt failed.")
			break
		}
		log.WithError(err).WithField("attempt", attempt).Warnf("Webhook attempt failed. Retrying in %v.", delay)
		w.sleep(delay)
		delay *= 2
	}

	log.Errorf("Failed to deliver webhook after %d attempts.", w.cfg.WebhookMaxRetries)
	return false
}

// post выполняет одну попытку доставки
func (w *Worker) post(ctx context.Context, changeType, payload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(payload))
	if err != nil {
		return &deliveryError{permanent: true, err: fmt.Errorf("failed to create webhook request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(changeTypeHeader, changeType)
	// HMAC подпись только при заданном WEBHOOK_SECRET
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return &deliveryError{err: err}
	}
	resp.Body.Close()

	switch code := resp.StatusCode; {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests:
		return &deliveryError{status: code}
	case code >= 400 && code < 500:
		return &deliveryError{status: code, permanent: true}
	default:
		return &deliveryError{status: code}
	}
}

// changeLogger добавляет к записи лога идентификаторы из события изменения
func changeLogger(logger *logrus.Logger, change ChangeEvent) *logrus.Entry {
	fields := logrus.Fields{"change_type": change.Type}
	if change.EventID != nil {
		fields["event_id"] = *change.EventID
	}
	if change.PackID != nil {
		fields["pack_id"] = *change.PackID
	}
	if change.Stage != 0 {
		fields["stage"] = change.Stage
	}
	if change.ParticipantID != "" {
		fields["participant_id"] = change.ParticipantID
	}
	return logger.WithFields(fields)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
