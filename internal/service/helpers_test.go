package service_test

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/transfusion_coordinator/internal/repository/memory"
	"github.com/shenikar/transfusion_coordinator/internal/service"
	"github.com/shenikar/transfusion_coordinator/internal/webhook"
	"github.com/sirupsen/logrus"
)

// fakeClock - управляемые часы для тестов
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard) // Отключаем вывод логов в тестах
	return logger
}

// testServices - сервисы поверх in-memory хранилища
type testServices struct {
	events    service.EventService
	packs     service.PackService
	locations service.LocationService
	clock     *fakeClock
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	store := memory.NewStore()
	clock := newFakeClock()
	logger := newTestLogger()
	publisher := webhook.NopPublisher{}

	eventRepo := memory.NewEventRepository(store)
	packRepo := memory.NewPackRepository(store)
	locations := service.NewLocationService(memory.NewLocationRepository(store), publisher, clock, logger)

	return &testServices{
		events:    service.NewEventService(eventRepo, packRepo, publisher, clock, logger),
		packs:     service.NewPackService(packRepo, eventRepo, locations, publisher, clock, logger),
		locations: locations,
		clock:     clock,
	}
}

func intPtr(v int) *int {
	return &v
}
